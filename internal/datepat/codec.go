// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package datepat

import (
	"fmt"
	"strconv"
	"strings"
)

// Widths of fixed-size fields in decoded text.
const (
	fullYearLen = 4
	shortLen    = 2 // short year, numeric month and day
	nameLen     = 3 // short month and weekday names
)

// Decode reads a date from suffix following p from left to right.
//
// Fixed-width tokens consume their width, literals consume one byte whatever
// it is, and full month or weekday names are searched for anywhere in the
// rest of suffix. Decode never fails: fields it cannot read are left absent,
// so callers check [Date.Complete] before encoding.
func Decode(suffix string, p Pattern) Date {
	var (
		d   Date
		cur int
	)
	for _, tok := range p.tokens {
		switch tok.Kind {
		case FullYear:
			if v, ok := number(suffix, cur, fullYearLen); ok {
				d = d.With(Year, v)
			}
			cur += fullYearLen
		case ShortYear:
			if v, ok := number(suffix, cur, shortLen); ok {
				d = d.With(Year, expandYear(v))
			}
			cur += shortLen
		case FullMonth:
			if i, name := search(suffix, cur, longMonths[:]); i > 0 {
				d = d.With(Month, i)
				cur += len(name)
			}
		case ShortMonth:
			d = d.With(Month, lookup(take(suffix, cur, nameLen), shortMonths[:], longMonths[:]))
			cur += nameLen
		case NumMonth:
			if v, ok := number(suffix, cur, shortLen); ok {
				d = d.With(Month, v)
			}
			cur += shortLen
		case FullWeekday:
			if i, name := search(suffix, cur, longWeekdays[:]); i > 0 {
				d = d.With(Weekday, i)
				cur += len(name)
			}
		case ShortWeekday:
			d = d.With(Weekday, lookup(take(suffix, cur, nameLen), shortWeekdays[:], longWeekdays[:]))
			cur += nameLen
		case NumDay:
			if v, ok := number(suffix, cur, shortLen); ok {
				d = d.With(Day, v)
			}
			cur += shortLen
		default:
			cur++
		}
	}
	return d
}

// Encode renders d with p, appending the result to prefix. When capitalize
// is set, the first letter of every substituted token is upper-cased.
//
// d must be complete for p; if it is not, Encode returns an error wrapping
// ErrIncomplete.
func Encode(d Date, p Pattern, prefix string, capitalize bool) (string, error) {
	if !d.Complete(p.fields) {
		return "", fmt.Errorf("%w: %q needs %s, have %s", ErrIncomplete, p.src, p.fields, d.Fields())
	}

	var sb strings.Builder
	sb.Grow(len(prefix) + 2*len(p.src))
	sb.WriteString(prefix)
	for _, tok := range p.tokens {
		if tok.Kind == Literal {
			sb.WriteByte(tok.Char)
			continue
		}
		s := render(d, tok.Kind)
		if capitalize {
			s = strings.ToUpper(s[:1]) + s[1:]
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func render(d Date, k Kind) string {
	switch k {
	case FullYear:
		return fmt.Sprintf("%04d", d.year)
	case ShortYear:
		y := d.year - lowCentury
		if d.year >= highCentury {
			y = d.year - highCentury
		}
		return fmt.Sprintf("%02d", y)
	case FullMonth:
		return longMonths[d.month-1]
	case ShortMonth:
		return shortMonths[d.month-1]
	case NumMonth:
		return fmt.Sprintf("%02d", d.month)
	case FullWeekday:
		return longWeekdays[d.weekday-1]
	case ShortWeekday:
		return shortWeekdays[d.weekday-1]
	case NumDay:
		return fmt.Sprintf("%02d", d.day)
	}
	panic("unreachable")
}

// expandYear maps a two-digit year onto a full one using CenturyBreak.
func expandYear(v int) int {
	if v > CenturyBreak {
		return v + lowCentury
	}
	return v + highCentury
}

// take returns n bytes of s starting at i, or an empty string if s is too
// short.
func take(s string, i, n int) string {
	if i < 0 || i+n > len(s) {
		return ""
	}
	return s[i : i+n]
}

// number parses exactly n decimal digits of s starting at i. Signs, spaces
// and short input are rejected.
func number(s string, i, n int) (int, bool) {
	digits := take(s, i, n)
	if digits == "" {
		return 0, false
	}
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return v, true
}

// lookup returns the one-based index of s in either table, ignoring case,
// or zero.
func lookup(s string, short, long []string) int {
	if s == "" {
		return 0
	}
	for i := range short {
		if strings.EqualFold(s, short[i]) || strings.EqualFold(s, long[i]) {
			return i + 1
		}
	}
	return 0
}

// search looks for the first name of names contained anywhere in s after
// offset i, ignoring case. It returns the one-based index and the name, or
// zero.
func search(s string, i int, names []string) (int, string) {
	if i > len(s) {
		return 0, ""
	}
	rest := strings.ToLower(s[i:])
	for j, name := range names {
		if strings.Contains(rest, name) {
			return j + 1, name
		}
	}
	return 0, ""
}
