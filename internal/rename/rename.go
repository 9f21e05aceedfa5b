// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package rename plans and performs date-pattern renames of files in a
// directory.
package rename

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"go.astrophena.name/mvlf/internal/datepat"
	"go.astrophena.name/mvlf/internal/logger"
	"go.astrophena.name/mvlf/internal/rule"
)

// Errors returned by [Renamer.Plan] before any file is touched.
var (
	ErrSource      = errors.New("could not read source")
	ErrDestination = errors.New("could not open output directory")
)

// Options configure a [Renamer].
type Options struct {
	// Src is a directory to scan, or a single file to rename.
	Src string
	// Dst is the directory renamed files go to. Empty means the directory
	// of Src.
	Dst string
	// InPrefix selects files and is stripped before decoding. OutPrefix is
	// prepended to every new name.
	InPrefix, OutPrefix string
	// In is the input pattern. It is ignored when Autodetect is set.
	In datepat.Pattern
	// Out is the output pattern.
	Out datepat.Pattern
	// Autodetect picks an input pattern per file from datepat.Candidates.
	Autodetect bool
	// Capitalize upper-cases the first letter of every substituted token.
	Capitalize bool
	// Dry prints renames without performing them.
	Dry bool
	// Verbose prints renames as they are performed.
	Verbose bool
	// Keep, if set, must accept a file for it to be renamed.
	Keep *rule.Rule
}

// Move is a single planned rename.
type Move struct {
	From, To string
}

// Stats summarize a run.
type Stats struct {
	Processed int // files with the input prefix
	Renamed   int // renamed, or would be in dry run
	Existing  int // destination already exists
	Skipped   int // unchanged name or rejected by keep rule
	Failed    int // could not decode, encode or rename
}

// String implements the fmt.Stringer interface.
func (s Stats) String() string {
	return fmt.Sprintf("%d processed: %d renamed, %d existing, %d skipped, %d failed.",
		s.Processed, s.Renamed, s.Existing, s.Skipped, s.Failed)
}

// Renamer renames files on a filesystem according to its Options.
type Renamer struct {
	fs     afero.Fs
	opts   Options
	stdout io.Writer
}

// New returns a Renamer working on fsys that prints renames to stdout.
func New(fsys afero.Fs, opts Options, stdout io.Writer) *Renamer {
	if opts.OutPrefix == "" {
		opts.OutPrefix = opts.InPrefix
	}
	return &Renamer{fs: fsys, opts: opts, stdout: stdout}
}

// Plan lists the source and works out the new name of every matching file.
//
// Unreadable sources and destinations are reported as errors. Files that
// can't be renamed are logged, counted in the returned Stats and left out
// of the plan.
func (r *Renamer) Plan(ctx context.Context) ([]Move, Stats, error) {
	var stats Stats

	srcDir, names, err := r.list()
	if err != nil {
		return nil, stats, err
	}
	dstDir := r.opts.Dst
	if dstDir == "" {
		dstDir = srcDir
	}
	if fi, err := r.fs.Stat(dstDir); err != nil {
		return nil, stats, fmt.Errorf("%w: %w", ErrDestination, err)
	} else if !fi.IsDir() {
		return nil, stats, fmt.Errorf("%w: %s is not a directory", ErrDestination, dstDir)
	}

	var moves []Move
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		if !strings.HasPrefix(name, r.opts.InPrefix) {
			continue
		}
		stats.Processed++

		newname, keep, err := r.newName(ctx, name)
		switch {
		case err != nil:
			stats.Failed++
			logger.Warn(ctx, "could not rename", slog.String("file", filepath.Join(srcDir, name)), slog.Any("err", err))
			continue
		case !keep:
			stats.Skipped++
			logger.Debug(ctx, "skipped by keep rule", slog.String("file", name))
			continue
		}

		moves = append(moves, Move{
			From: filepath.Join(srcDir, name),
			To:   filepath.Join(dstDir, newname),
		})
	}
	return moves, stats, nil
}

// list returns the directory to work in and the names of candidate files,
// sorted.
func (r *Renamer) list() (dir string, names []string, err error) {
	fi, err := r.fs.Stat(r.opts.Src)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	if !fi.IsDir() {
		return filepath.Dir(r.opts.Src), []string{fi.Name()}, nil
	}

	infos, err := afero.ReadDir(r.fs, r.opts.Src)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		names = append(names, fi.Name())
	}
	return r.opts.Src, names, nil
}

// newName decodes the date in name and encodes it with the output pattern.
// keep is false when the keep rule rejects the file.
func (r *Renamer) newName(ctx context.Context, name string) (newname string, keep bool, err error) {
	suffix := strings.TrimPrefix(name, r.opts.InPrefix)

	var (
		in   = r.opts.In
		date datepat.Date
	)
	if r.opts.Autodetect {
		in, date, err = datepat.Autodetect(suffix, r.opts.Out)
		if err != nil {
			return "", false, err
		}
	} else {
		date = datepat.Decode(suffix, in)
	}
	logger.Debug(ctx, "decoded",
		slog.String("file", name),
		slog.String("pattern", in.String()),
		slog.String("date", date.String()),
	)

	if r.opts.Keep != nil {
		ok, err := r.opts.Keep.Keep(ctx, name, date)
		if err != nil || !ok {
			return "", false, err
		}
	}

	newname, err = datepat.Encode(date, r.opts.Out, r.opts.OutPrefix, r.opts.Capitalize)
	if err != nil {
		return "", false, err
	}
	return newname, true, nil
}

// Run plans the renames and performs them, or only prints them in dry run
// mode. Renames done before a failure are not undone.
func (r *Renamer) Run(ctx context.Context) (Stats, error) {
	moves, stats, err := r.Plan(ctx)
	if err != nil {
		return stats, err
	}

	// Destinations taken by earlier moves. A dry run doesn't create them,
	// so Stat alone would miss collisions.
	taken := make(map[string]bool)
	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if m.From == m.To {
			stats.Skipped++
			logger.Debug(ctx, "name unchanged, skipping", slog.String("file", m.From))
			continue
		}

		if taken[m.To] {
			stats.Existing++
			logger.Warn(ctx, "file already exists, skipping", slog.String("path", m.To))
			continue
		}
		_, err := r.fs.Stat(m.To)
		switch {
		case err == nil:
			stats.Existing++
			logger.Warn(ctx, "file already exists, skipping", slog.String("path", m.To))
			continue
		case !errors.Is(err, fs.ErrNotExist):
			stats.Failed++
			logger.Warn(ctx, "could not check destination", slog.String("path", m.To), slog.Any("err", err))
			continue
		}

		if r.opts.Dry || r.opts.Verbose {
			fmt.Fprintf(r.stdout, "%s -> %s\n", m.From, m.To)
		}
		if !r.opts.Dry {
			if err := r.fs.Rename(m.From, m.To); err != nil {
				stats.Failed++
				logger.Warn(ctx, "could not rename", slog.String("file", m.From), slog.Any("err", unwrapLink(err)))
				continue
			}
		}
		taken[m.To] = true
		stats.Renamed++
	}

	return stats, nil
}

// unwrapLink strips the *os.LinkError wrapper, whose message repeats both
// paths.
func unwrapLink(err error) error {
	var le *os.LinkError
	if errors.As(err, &le) {
		return le.Err
	}
	return err
}
