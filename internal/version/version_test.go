// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"errors"
	"runtime"
	"runtime/debug"
	"testing"

	"go.astrophena.name/mvlf/internal/testutil"
)

func TestLoadInfo(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		bi   *debug.BuildInfo
		exe  string
		want string
	}{
		"no build info": {
			want: "mvlf devel (" + runtime.Version() + ", " + runtime.GOOS + "/" + runtime.GOARCH + ")\n",
		},
		"release": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.2.0"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
				},
			},
			exe:  "/usr/local/bin/mvlf",
			want: "mvlf v1.2.0 (" + runtime.Version() + ", " + runtime.GOOS + "/" + runtime.GOARCH + ")\ncommit abc123\nbuilt at 2024-05-01T10:00:00Z\n",
		},
		"dirty devel": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "def456"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			exe:  "/tmp/go-build/renlog",
			want: "renlog devel (" + runtime.Version() + ", " + runtime.GOOS + "/" + runtime.GOARCH + ")\ncommit def456 (dirty)\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			readBuildInfo := func() (*debug.BuildInfo, bool) { return tc.bi, tc.bi != nil }
			executable := func() (string, error) {
				if tc.exe == "" {
					return "", errors.New("unknown")
				}
				return tc.exe, nil
			}
			testutil.AssertEqual(t, loadInfo(readBuildInfo, executable).String(), tc.want)
		})
	}
}
