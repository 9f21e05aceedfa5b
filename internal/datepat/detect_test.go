// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package datepat

import (
	"errors"
	"testing"

	"go.astrophena.name/mvlf/internal/testutil"
)

func TestAutodetect(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		suffix      string
		out         string
		wantPattern string
		wantDate    Date
	}{
		"default input": {
			suffix:      "15mar1999",
			out:         "Y-n-t",
			wantPattern: "tmY",
			wantDate:    date(1999, 3, 0, 15),
		},
		"short year": {
			suffix:      "15mar99",
			out:         "Y-n-t",
			wantPattern: "tmy",
			wantDate:    date(1999, 3, 0, 15),
		},
		"weekday and full year": {
			suffix:      "Mon26Dec2016",
			out:         "Y-n-t",
			wantPattern: "dtmY",
			wantDate:    date(2016, 12, 1, 26),
		},
		"weekday and short year": {
			suffix:      "Mon26Dec16",
			out:         "Y-n-t",
			wantPattern: "dtmy",
			wantDate:    date(2016, 12, 1, 26),
		},
		"compact numeric": {
			suffix:      "20161226",
			out:         "Y-n-t",
			wantPattern: "Ynt",
			wantDate:    date(2016, 12, 0, 26),
		},
		"dashes": {
			suffix:      "2016-12-26",
			out:         "Y-n-t",
			wantPattern: "Y-n-t",
			wantDate:    date(2016, 12, 0, 26),
		},
		"day first, full year": {
			suffix:      "26/12/2016",
			out:         "Y-n-t",
			wantPattern: "t/n/Y",
			wantDate:    date(2016, 12, 0, 26),
		},
		"day first, short year": {
			suffix:      "26/12/16",
			out:         "Y-n-t",
			wantPattern: "t/n/y",
			wantDate:    date(2016, 12, 0, 26),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, d, err := Autodetect(tc.suffix, MustParse(tc.out))
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, p.String(), tc.wantPattern)
			testutil.AssertEqual(t, d, tc.wantDate, allowDate)
		})
	}
}

func TestAutodetectFails(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		suffix string
		out    string
	}{
		"garbage":       {suffix: "garbage", out: "Y-n-t"},
		"empty":         {suffix: "", out: "Y"},
		"no weekday":    {suffix: "15mar1999", out: "D"},
		"unknown month": {suffix: "15xyz1999", out: "Y-n-t"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := Autodetect(tc.suffix, MustParse(tc.out)); !errors.Is(err, ErrNoPattern) {
				t.Fatalf("Autodetect(%q) = %v, want %v", tc.suffix, err, ErrNoPattern)
			}
		})
	}
}

func TestAutodetectFromOrder(t *testing.T) {
	t.Parallel()

	// Both candidates can read the suffix; the first one wins.
	candidates := []Pattern{MustParse("tmy"), MustParse("tmY")}
	p, d, err := AutodetectFrom("15mar2016", MustParse("Y"), candidates)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, p.String(), "tmy")
	testutil.AssertEqual(t, d, date(2020, 3, 0, 15), allowDate)
}
