// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/mvlf/internal/testutil"
)

func TestLogfWriter(t *testing.T) {
	t.Parallel()

	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, logged, true)
	testutil.AssertEqual(t, message, "hello")
}

func TestVerbosity(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		verbosity int
		want      []string
		dontWant  []string
	}{
		"quiet": {
			verbosity: -1,
			dontWant:  []string{"msg=warn", "msg=info", "msg=debug"},
		},
		"normal": {
			verbosity: 0,
			want:      []string{"msg=warn", "msg=info"},
			dontWant:  []string{"msg=debug"},
		},
		"verbose": {
			verbosity: 2,
			want:      []string{"msg=warn", "msg=info", "level=DEBUG msg=debug"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := New(&buf)
			l.SetVerbosity(tc.verbosity)
			ctx := Put(context.Background(), l)

			Debug(ctx, "debug")
			Info(ctx, "info", slog.String("file", "a.log"))
			Warn(ctx, "warn")

			got := buf.String()
			if strings.Contains(got, "time=") {
				t.Errorf("timestamps must be omitted, got: %q", got)
			}
			for _, s := range tc.want {
				if !strings.Contains(got, s) {
					t.Errorf("log must contain %q, got: %q", s, got)
				}
			}
			for _, s := range tc.dontWant {
				if strings.Contains(got, s) {
					t.Errorf("log must not contain %q, got: %q", s, got)
				}
			}
		})
	}
}

func TestGetDefault(t *testing.T) {
	t.Parallel()
	if Get(context.Background()) != defaultLogger {
		t.Fatal("Get must fall back to the default logger")
	}
}
