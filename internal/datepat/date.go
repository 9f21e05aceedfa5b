// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package datepat

import (
	"fmt"
	"strings"
)

// Fields is a set of date field classes. Each class constant below is a
// single-element set. A pattern holds at most one token per class.
type Fields uint8

// Field classes.
const (
	Year Fields = 1 << iota
	Month
	Weekday
	Day
)

var fieldNames = []struct {
	f    Fields
	name string
}{
	{Year, "year"},
	{Month, "month"},
	{Weekday, "weekday"},
	{Day, "day"},
}

// Has reports whether all classes in o are in f.
func (f Fields) Has(o Fields) bool { return f&o == o }

// String implements the fmt.Stringer interface.
func (f Fields) String() string {
	var names []string
	for _, fn := range fieldNames {
		if f&fn.f != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// valid reports whether v is an acceptable value for a single field class.
func (f Fields) valid(v int) bool {
	switch f {
	case Year:
		return v >= MinYear && v <= MaxYear
	case Month:
		return v >= 1 && v <= 12
	case Weekday:
		return v >= 1 && v <= 7
	case Day:
		return v >= 1 && v <= 31
	}
	return false
}

// Date is a partially known calendar date. Each field is either present
// with an in-range value or absent. Weekday and day are not cross-checked.
//
// The zero Date has no fields.
type Date struct {
	year, month, weekday, day int
	present                   Fields
}

// With returns a copy of d with the single field class f set to v. Out of
// range values leave the field absent.
func (d Date) With(f Fields, v int) Date {
	ok := f.valid(v)
	if !ok {
		v = 0
	}
	switch f {
	case Year:
		d.year = v
	case Month:
		d.month = v
	case Weekday:
		d.weekday = v
	case Day:
		d.day = v
	default:
		return d
	}
	if ok {
		d.present |= f
	} else {
		d.present &^= f
	}
	return d
}

// Get returns the value of field f and whether it is present.
func (d Date) Get(f Fields) (int, bool) {
	if !d.present.Has(f) {
		return 0, false
	}
	switch f {
	case Year:
		return d.year, true
	case Month:
		return d.month, true
	case Weekday:
		return d.weekday, true
	case Day:
		return d.day, true
	}
	return 0, false
}

// Fields returns the set of present fields.
func (d Date) Fields() Fields { return d.present }

// Complete reports whether every field class in need is present.
func (d Date) Complete(need Fields) bool { return d.present.Has(need) }

// String implements the fmt.Stringer interface.
func (d Date) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, fn := range fieldNames {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fn.name + ":")
		if v, ok := d.Get(fn.f); ok {
			fmt.Fprint(&sb, v)
		} else {
			sb.WriteString("-")
		}
	}
	sb.WriteString("}")
	return sb.String()
}
