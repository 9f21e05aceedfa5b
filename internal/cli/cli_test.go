// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"testing"

	"go.astrophena.name/mvlf/internal/logger"
	"go.astrophena.name/mvlf/internal/testutil"
)

func TestParseComment(t *testing.T) {
	t.Parallel()

	src := []byte(`// Header.

/*
Tool does things.

# Usage

	$ tool [flags...]
*/
package main

/*
Ignored.
*/
`)
	testutil.AssertEqual(t, parseComment(src), "Tool does things.\n\n# Usage\n\n\t$ tool [flags...]\n")
}

type flagApp struct {
	name string
	args []string
}

func (a *flagApp) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.name, "name", "", "Name.")
}

func (a *flagApp) Run(ctx context.Context) error {
	a.args = GetEnv(ctx).Args
	logger.Info(ctx, "running")
	return nil
}

func TestRun(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	env := &Env{
		Args:   []string{"-name", "x", "a", "b"},
		Getenv: func(string) string { return "" },
		Stdout: new(bytes.Buffer),
		Stderr: &stderr,
	}
	app := new(flagApp)
	if err := Run(WithEnv(context.Background(), env), app); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, app.name, "x")
	testutil.AssertEqual(t, app.args, []string{"a", "b"})
	if !strings.Contains(stderr.String(), "msg=running") {
		t.Errorf("logger must write to env stderr, got: %q", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		args         []string
		app          App
		wantErr      error
		printable    bool
		wantInStderr string
	}{
		"version": {
			args:    []string{"-version"},
			app:     AppFunc(func(context.Context) error { return nil }),
			wantErr: ErrExitVersion,
		},
		"unknown flag": {
			args:         []string{"-nope"},
			app:          AppFunc(func(context.Context) error { return nil }),
			wantInStderr: "flag provided but not defined",
		},
		"silenced": {
			app: AppFunc(func(context.Context) error {
				return Silent(fmt.Errorf("%w: too many", ErrInvalidArgs))
			}),
			wantErr: ErrInvalidArgs,
		},
		"invalid args": {
			app: AppFunc(func(context.Context) error {
				return fmt.Errorf("%w: too many", ErrInvalidArgs)
			}),
			wantErr:   ErrInvalidArgs,
			printable: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var stderr bytes.Buffer
			env := &Env{Args: tc.args, Stderr: &stderr, Stdout: new(bytes.Buffer)}
			err := Run(WithEnv(context.Background(), env), tc.app)
			if err == nil {
				t.Fatal("must fail")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error: %v", err)
			}
			testutil.AssertEqual(t, isPrintableError(err), tc.printable)
			if tc.wantInStderr != "" && !strings.Contains(stderr.String(), tc.wantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.wantInStderr, stderr.String())
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  error
		want string
	}{
		"nil":      {err: nil, want: ""},
		"printed":  {err: ErrInvalidArgs, want: ": invalid arguments\n"},
		"silenced": {err: Silent(ErrInvalidArgs), want: ""},
		"help":     {err: &unprintableError{flag.ErrHelp}, want: ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			PrintError(&buf, tc.err)
			if tc.want == "" {
				testutil.AssertEqual(t, buf.String(), "")
				return
			}
			if !strings.HasSuffix(buf.String(), tc.want) {
				t.Fatalf("PrintError() wrote %q, want suffix %q", buf.String(), tc.want)
			}
		})
	}
}
