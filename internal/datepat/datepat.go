// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package datepat implements a tiny pattern language for dates embedded in
// filenames.
//
// A pattern is a short string where each reserved character stands for one
// date component and every other character is a literal:
//
//	Y  full year (1999)        y  short year (99)
//	M  full month (march)      m  short month (mar)    n  numeric month (03)
//	D  full weekday (monday)   d  short weekday (mon)
//	t  numeric day of month (15)
//
// [Decode] extracts a [Date] from text using a pattern and [Encode] renders a
// Date back using another one, so "15mar1999" read with "tmY" and written
// with "Y-n-t" becomes "1999-03-15".
package datepat

import "errors"

const (
	// CenturyBreak is the two-digit year window: values above it are
	// in the 1900s, the rest in the 2000s.
	CenturyBreak = 60
	// MinYear and MaxYear bound a year that counts as present.
	MinYear = 1900
	MaxYear = 2099
	// MaxPatternLen is the longest accepted pattern, in bytes.
	MaxPatternLen = 16

	lowCentury  = 1900
	highCentury = 2000
)

// Errors returned by this package. They are usually wrapped, so check them
// with errors.Is.
var (
	ErrEmptyPattern   = errors.New("empty pattern")
	ErrPatternTooLong = errors.New("pattern too long")
	ErrDuplicateField = errors.New("field used more than once")
	ErrThinAir        = errors.New("cannot create data from thin air")
	ErrIncomplete     = errors.New("date is missing fields")
	ErrNoPattern      = errors.New("no matching pattern")
)

// Names are lower case and ordered so that index+1 is the month or weekday
// number. Weeks start on Monday.
var (
	shortMonths = [12]string{
		"jan", "feb", "mar", "apr",
		"may", "jun", "jul", "aug",
		"sep", "oct", "nov", "dec",
	}
	longMonths = [12]string{
		"january", "february", "march", "april",
		"may", "june", "july", "august",
		"september", "october", "november", "december",
	}
	shortWeekdays = [7]string{
		"mon", "tue", "wed", "thu",
		"fri", "sat", "sun",
	}
	longWeekdays = [7]string{
		"monday", "tuesday", "wednesday", "thursday",
		"friday", "saturday", "sunday",
	}
)
