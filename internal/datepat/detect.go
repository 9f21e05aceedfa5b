// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package datepat

import "fmt"

// Candidates are the input patterns tried by [Autodetect], in order.
// Full-year forms go before their short-year twins: "Mon26Dec2016" read as
// "dtmy" would otherwise become 2020.
var Candidates = []Pattern{
	MustParse("tmY"),
	MustParse("tmy"),
	MustParse("dtmY"),
	MustParse("dtmy"),
	MustParse("Ynt"),
	MustParse("Y-n-t"),
	MustParse("Y/n/t"),
	MustParse("t/n/Y"),
	MustParse("t/n/y"),
}

// Autodetect finds an input pattern for suffix among [Candidates]. See
// [AutodetectFrom].
func Autodetect(suffix string, out Pattern) (Pattern, Date, error) {
	return AutodetectFrom(suffix, out, Candidates)
}

// AutodetectFrom decodes suffix with each candidate in turn and returns the
// first one that yields a date complete for out, together with that date.
// If none does, it returns an error wrapping ErrNoPattern.
func AutodetectFrom(suffix string, out Pattern, candidates []Pattern) (Pattern, Date, error) {
	for _, p := range candidates {
		if d := Decode(suffix, p); d.Complete(out.fields) {
			return p, d, nil
		}
	}
	return Pattern{}, Date{}, fmt.Errorf("%w: %q has no %s among %d candidates", ErrNoPattern, suffix, out.fields, len(candidates))
}
