package main

import (
	"log"
	"os"

	"github.com/db47h/bitvec"
)

// Sums Verilog literals given on the command line as 128-bit vectors.
func main() {
	log.SetFlags(0)

	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"128'hdeadbeef_01234567_89abcdef_00112233", "16'd42", "12'o7777"}
	}

	const width = 128
	words := bitvec.Words(width)
	acc := bitvec.Zero(width, make([]bitvec.Word, words))
	v := make([]bitvec.Word, words)
	for _, a := range args {
		if _, err := bitvec.ParseW(width, v, a); err != nil {
			log.Fatal(err)
		}
		log.Printf("%-48s = %s", a, bitvec.HexW(width, v))
		bitvec.CleanInPlace(width, bitvec.AddW(words, acc, acc, v))
	}
	log.Printf("%-48s = %s", "sum", bitvec.HexW(width, acc))
	log.Print("set bits      : ", bitvec.CountOnesW(words, acc))
	log.Print("clog2         : ", bitvec.CeilLog2W(words, acc))
	log.Print("top bit plus 1: ", bitvec.MostSetBitP1W(words, acc))
}
