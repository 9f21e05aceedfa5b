// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package datepat

import "fmt"

// Kind is the kind of a pattern token.
type Kind uint8

// Token kinds.
const (
	Literal Kind = iota
	FullYear
	ShortYear
	FullMonth
	ShortMonth
	NumMonth
	FullWeekday
	ShortWeekday
	NumDay
)

var kindChars = map[byte]Kind{
	'Y': FullYear,
	'y': ShortYear,
	'M': FullMonth,
	'm': ShortMonth,
	'n': NumMonth,
	'D': FullWeekday,
	'd': ShortWeekday,
	't': NumDay,
}

// Field returns the field class a token of kind k captures, or zero for
// literals.
func (k Kind) Field() Fields {
	switch k {
	case FullYear, ShortYear:
		return Year
	case FullMonth, ShortMonth, NumMonth:
		return Month
	case FullWeekday, ShortWeekday:
		return Weekday
	case NumDay:
		return Day
	}
	return 0
}

// Token is a single pattern element.
type Token struct {
	Kind Kind
	Char byte // source character
}

// Pattern is a parsed, valid date pattern. The zero Pattern has no tokens.
type Pattern struct {
	src    string
	tokens []Token
	fields Fields
}

// String returns the source text of p.
func (p Pattern) String() string { return p.src }

// Tokens returns the tokens of p in order.
func (p Pattern) Tokens() []Token { return p.tokens }

// Fields returns the field classes p references.
func (p Pattern) Fields() Fields { return p.fields }

// Validate checks that s is a usable pattern: non-empty, at most
// MaxPatternLen bytes, and with no field class used twice. Characters that
// are not tokens are literals and always accepted.
func Validate(s string) error {
	if s == "" {
		return ErrEmptyPattern
	}
	if len(s) > MaxPatternLen {
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrPatternTooLong, s, MaxPatternLen)
	}
	var seen Fields
	for i := 0; i < len(s); i++ {
		f := kindChars[s[i]].Field()
		if f == 0 {
			continue
		}
		if seen.Has(f) {
			return fmt.Errorf("%w: %s repeated at %q in %q", ErrDuplicateField, f, s[i], s)
		}
		seen |= f
	}
	return nil
}

// Parse validates s and splits it into tokens.
func Parse(s string) (Pattern, error) {
	if err := Validate(s); err != nil {
		return Pattern{}, err
	}
	p := Pattern{src: s, tokens: make([]Token, 0, len(s))}
	for i := 0; i < len(s); i++ {
		k := kindChars[s[i]]
		p.tokens = append(p.tokens, Token{Kind: k, Char: s[i]})
		p.fields |= k.Field()
	}
	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Compatible reports an error if out needs a field class that in never
// captures.
func Compatible(in, out Pattern) error {
	if missing := out.fields &^ in.fields; missing != 0 {
		return fmt.Errorf("%w: %q needs %s, %q does not have it", ErrThinAir, out.src, missing, in.src)
	}
	return nil
}
