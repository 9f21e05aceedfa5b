// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package rule implements keep rules: Starlark expressions that decide
// whether a file should be renamed, given the date decoded from its name.
//
// The expression sees these predeclared names:
//
//	name     file name (string)
//	year     full year, or None
//	month    month number (1-12), or None
//	weekday  weekday number (1-7, Monday is 1), or None
//	day      day of month (1-31), or None
//
// For example:
//
//	year >= 2015 and month in (6, 7, 8)
//
// The expression must evaluate to a bool.
package rule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"go.astrophena.name/mvlf/internal/datepat"
	"go.astrophena.name/mvlf/internal/logger"
)

// ErrNotBool is returned when a rule evaluates to something other than a
// bool.
var ErrNotBool = errors.New("rule returned non-boolean value")

const filename = "keep"

// Rule is a compiled keep rule.
type Rule struct {
	src  string
	opts *syntax.FileOptions
	expr syntax.Expr
}

// Compile parses src as a Starlark expression.
func Compile(src string) (*Rule, error) {
	opts := &syntax.FileOptions{}
	expr, err := opts.ParseExpr(filename, src, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing keep rule: %w", err)
	}
	return &Rule{src: src, opts: opts, expr: expr}, nil
}

// String returns the source of r.
func (r *Rule) String() string { return r.src }

// Keep evaluates r for a file called name whose decoded date is d.
func (r *Rule) Keep(ctx context.Context, name string, d datepat.Date) (bool, error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			logger.Debug(ctx, msg, slog.String("file", name))
		},
	}
	val, err := starlark.EvalExprOptions(r.opts, thread, r.expr, predeclared(name, d))
	if err != nil {
		return false, fmt.Errorf("applying keep rule: %w", err)
	}
	ret, ok := val.(starlark.Bool)
	if !ok {
		return false, fmt.Errorf("%w: got %s", ErrNotBool, val.Type())
	}
	return bool(ret), nil
}

func predeclared(name string, d datepat.Date) starlark.StringDict {
	field := func(f datepat.Fields) starlark.Value {
		if v, ok := d.Get(f); ok {
			return starlark.MakeInt(v)
		}
		return starlark.None
	}
	return starlark.StringDict{
		"name":    starlark.String(name),
		"year":    field(datepat.Year),
		"month":   field(datepat.Month),
		"weekday": field(datepat.Weekday),
		"day":     field(datepat.Day),
	}
}
