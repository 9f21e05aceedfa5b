// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/landlock-lsm/go-landlock/landlock"
	"github.com/spf13/afero"

	"go.astrophena.name/mvlf/internal/cli"
	"go.astrophena.name/mvlf/internal/cli/restrict"
	"go.astrophena.name/mvlf/internal/datepat"
	"go.astrophena.name/mvlf/internal/logger"
	"go.astrophena.name/mvlf/internal/rename"
	"go.astrophena.name/mvlf/internal/rule"
)

func main() { cli.Main(new(app)) }

const (
	defaultIn  = "tmY"
	defaultOut = "Y-n-t"
)

var errIdentical = errors.New("input and output are an exact match")

type app struct {
	in, out           string
	prefix, outPrefix string
	auto              bool
	capitalize        bool
	dry               bool
	keep              string
	verbosity         int

	// fs is the filesystem files are renamed on. Nil means the OS one.
	fs afero.Fs
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.in, "in", "", "Input `pattern`. Defaults to $MVLF_IN or "+defaultIn+".")
	fs.StringVar(&a.out, "out", "", "Output `pattern`. Defaults to $MVLF_OUT or "+defaultOut+".")
	fs.StringVar(&a.prefix, "prefix", "", "Rename only files starting with `prefix`.")
	fs.StringVar(&a.outPrefix, "out-prefix", "", "Start new names with `prefix` instead of -prefix.")
	fs.BoolVar(&a.auto, "auto", false, "Detect the input pattern of every file.")
	fs.BoolVar(&a.capitalize, "cap", false, "Capitalize the first letter of every date part in new names.")
	fs.BoolVar(&a.dry, "dry", false, "Print what would be done, but don't rename files.")
	fs.StringVar(&a.keep, "keep", "", "Rename only files for which Starlark `expression` is true.")
	fs.Var(&counter{v: &a.verbosity, step: 1}, "v", "Print renames and debug logs. Can be repeated.")
	fs.Var(&counter{v: &a.verbosity, step: -1}, "q", "Print nothing, not even errors. The exit status still reports failure.")
}

func (a *app) Run(ctx context.Context) (err error) {
	env := cli.GetEnv(ctx)
	logger.Get(ctx).SetVerbosity(a.verbosity)
	if a.verbosity < 0 {
		defer func() { err = cli.Silent(err) }()
	}

	if len(env.Args) > 2 {
		return fmt.Errorf("%w: too many arguments, want at most [src] [dst]", cli.ErrInvalidArgs)
	}
	src, dst := ".", ""
	if len(env.Args) > 0 {
		src = env.Args[0]
	}
	if len(env.Args) > 1 {
		dst = env.Args[1]
	}
	if realsrc, err := filepath.EvalSymlinks(src); err == nil {
		src = realsrc
	}

	a.in = cmp.Or(a.in, env.Getenv("MVLF_IN"), defaultIn)
	a.out = cmp.Or(a.out, env.Getenv("MVLF_OUT"), defaultOut)
	in, err := datepat.Parse(a.in)
	if err != nil {
		return fmt.Errorf("%w: input pattern: %w", cli.ErrInvalidArgs, err)
	}
	out, err := datepat.Parse(a.out)
	if err != nil {
		return fmt.Errorf("%w: output pattern: %w", cli.ErrInvalidArgs, err)
	}

	outPrefix := cmp.Or(a.outPrefix, a.prefix)
	if !a.auto {
		if err := datepat.Compatible(in, out); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
		}
		if !a.capitalize && a.prefix == outPrefix && in.String() == out.String() && sameDir(src, dst) {
			return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, errIdentical)
		}
	}

	var keep *rule.Rule
	if a.keep != "" {
		keep, err = rule.Compile(a.keep)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
		}
	}

	// Drop privileges if not in tests.
	restrict.DoUnlessTesting(ctx, landlock.RWDirs(sandboxDirs(src, dst)...))

	fsys := a.fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	stats, err := rename.New(fsys, rename.Options{
		Src:        src,
		Dst:        dst,
		InPrefix:   a.prefix,
		OutPrefix:  outPrefix,
		In:         in,
		Out:        out,
		Autodetect: a.auto,
		Capitalize: a.capitalize,
		Dry:        a.dry,
		Verbose:    a.verbosity > 0,
		Keep:       keep,
	}, env.Stdout).Run(ctx)
	if err != nil {
		return err
	}

	if a.verbosity >= 0 {
		if a.dry {
			env.Logf("Dry run: %s", stats)
		} else {
			env.Logf("%s", stats)
		}
	}
	return nil
}

// sameDir reports whether files would stay in the directory they are in.
func sameDir(src, dst string) bool {
	if dst == "" {
		return true
	}
	a, err := filepath.Abs(src)
	if err != nil {
		return false
	}
	b, err := filepath.Abs(dst)
	if err != nil {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// sandboxDirs returns the directories mvlf needs to write to.
func sandboxDirs(src, dst string) []string {
	dir := src
	if fi, err := os.Stat(src); err == nil && !fi.IsDir() {
		dir = filepath.Dir(src)
	}
	if dst == "" || dst == dir {
		return []string{dir}
	}
	return []string{dir, dst}
}

// counter is a boolean flag that adds step to v each time it is set.
type counter struct {
	v    *int
	step int
}

func (c *counter) String() string {
	if c == nil || c.v == nil {
		return "0"
	}
	return strconv.Itoa(*c.v)
}

func (c *counter) Set(s string) error {
	ok, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if ok {
		*c.v += c.step
	}
	return nil
}

func (c *counter) IsBoolFlag() bool { return true }
