// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Mvlf renames log files whose names end in a date, rewriting that date from
one format to another.

# Usage

	$ mvlf [flags...] [src] [dst]

src is a directory to scan or a single file, and defaults to the current
directory. dst is the directory renamed files are moved to, and defaults to
the directory of src.

Only files whose names start with the -prefix are touched. The prefix is
stripped, the rest of the name is decoded with the input pattern and the
date is written back with the output pattern after the -out-prefix.

# Patterns

A pattern is up to 16 characters long. These characters stand for parts of
a date, all others are separators that match any single character:

	Y  year, four digits (2016)
	y  year, two digits (16); above 60 means 19xx
	M  month name (december)
	m  month name, three letters (dec)
	n  month number (12)
	D  weekday name (monday)
	d  weekday name, three letters (mon)
	t  day of month (26)

A pattern can use only one character for each of year, month, weekday and
day. The output pattern can't ask for anything the input pattern doesn't
have.

With -auto, mvlf tries these input patterns in order for every file and
takes the first one that gives everything the output pattern needs:

	tmY tmy dtmY dtmy Ynt Y-n-t Y/n/t t/n/Y t/n/y

# Keep rule

The -keep flag takes a Starlark expression. Files for which it is false are
left alone. It can use name (the file name) and year, month, weekday and day
(numbers, or None if the input pattern doesn't have them). Monday is 1:

	$ mvlf -prefix access.log. -keep 'year >= 2015 and weekday != 7' /var/log/www

# Environment

MVLF_IN and MVLF_OUT set the input and output patterns when the flags are
not given.

# Examples

Turn access.log.26dec2016 into access.log.2016-12-26:

	$ mvlf -prefix access.log. /var/log/www

Show what would happen to files named like ljusdal.log.Mon26Dec16, moving
them to /srv/archive as ljusdal-20161226:

	$ mvlf -dry -in dtmy -out Ynt -prefix ljusdal.log. -out-prefix ljusdal- /var/log /srv/archive

Files that already exist are never overwritten.

With -q, mvlf prints nothing at all, not even fatal errors. Check its exit
status instead.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/mvlf/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
