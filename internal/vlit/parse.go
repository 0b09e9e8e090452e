// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vlit scans Verilog-style sized literals such as 8'hFF, 13'sd42
// or 12'b1010_0011. Only two-state literals are accepted: x and z digits
// are errors.
package vlit

import "github.com/pkg/errors"

// Base is a literal's radix.
type Base int

// Supported radixes.
const (
	Bin Base = 2
	Oct Base = 8
	Dec Base = 10
	Hex Base = 16
)

// Literal is a scanned literal. Digits holds the digit values, most
// significant first, with separators removed.
//
type Literal struct {
	Width  int // declared bit width, 0 when unsized
	Signed bool
	Base   Base
	Digits []byte
}

// Parse scans the literal s.
//
func Parse(s string) (*Literal, error) {
	lit := &Literal{Base: Dec}
	pos := 0

	// optional size prefix, then the base designator
	start := pos
	for pos < len(s) && isDecimal(s[pos]) {
		lit.Width = lit.Width*10 + int(s[pos]-'0')
		pos++
	}
	if pos == len(s) {
		if pos == start {
			return nil, parseError(s, pos, "empty literal")
		}
		// plain unsized decimal: the size prefix was the value
		lit.Width = 0
		lit.Digits = digits(s[start:pos])
		return lit, nil
	}
	if s[pos] != '\'' {
		return nil, parseError(s, pos, "expected ' after literal size")
	}
	pos++
	if pos < len(s) && (s[pos] == 's' || s[pos] == 'S') {
		lit.Signed = true
		pos++
	}
	if pos == len(s) {
		return nil, parseError(s, pos, "missing base designator")
	}
	switch s[pos] {
	case 'b', 'B':
		lit.Base = Bin
	case 'o', 'O':
		lit.Base = Oct
	case 'd', 'D':
		lit.Base = Dec
	case 'h', 'H':
		lit.Base = Hex
	default:
		return nil, parseError(s, pos, "invalid base designator")
	}
	pos++

	start = pos
	for ; pos < len(s); pos++ {
		c := s[pos]
		if c == '_' {
			if pos == start {
				return nil, parseError(s, pos, "literal cannot start with _")
			}
			continue
		}
		if c == 'x' || c == 'X' || c == 'z' || c == 'Z' || c == '?' {
			return nil, parseError(s, pos, "four-state digit in two-state literal")
		}
		if digitVal(c) < 0 || digitVal(c) >= int(lit.Base) {
			return nil, parseError(s, pos, "invalid digit")
		}
	}
	if start == pos {
		return nil, parseError(s, pos, "missing digits")
	}
	lit.Digits = digits(s[start:pos])
	return lit, nil
}

func digits(s string) []byte {
	d := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			continue
		}
		d = append(d, byte(digitVal(s[i])))
	}
	return d
}

func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func isDecimal(c byte) bool { return '0' <= c && c <= '9' }

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
