// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides the version and build information.
package version

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Info is the version and build information of the current binary.
type Info struct {
	Name    string
	Version string
	Commit  string // BuildInfo's vcs.revision
	BuiltAt string // BuildInfo's vcs.time
	Dirty   bool   // BuildInfo's vcs.modified
	Go      string // runtime.Version()
	OS      string // runtime.GOOS
	Arch    string // runtime.GOARCH
}

// String implements the fmt.Stringer interface.
func (i Info) String() string {
	var sb strings.Builder

	sb.WriteString(i.Name + " " + i.Version + " (" + i.Go + ", " + i.OS + "/" + i.Arch + ")\n")
	if i.Commit != "" {
		sb.WriteString("commit " + i.Commit)
		if i.Dirty {
			sb.WriteString(" (dirty)")
		}
		sb.WriteString("\n")
	}
	if i.BuiltAt != "" {
		sb.WriteString("built at " + i.BuiltAt + "\n")
	}

	return sb.String()
}

// defaultName is used when the executable path can't be determined.
const defaultName = "mvlf"

var info = sync.OnceValue(func() Info { return loadInfo(debug.ReadBuildInfo, os.Executable) })

// CmdName returns the base name of the current binary.
func CmdName() string { return info().Name }

// Version returns the version and build information of the current binary.
func Version() Info { return info() }

func loadInfo(readBuildInfo func() (*debug.BuildInfo, bool), executable func() (string, error)) Info {
	i := Info{
		Name:    defaultName,
		Version: "devel",
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}

	if exe, err := executable(); err == nil {
		i.Name = strings.TrimSuffix(filepath.Base(exe), ".exe")
	}

	bi, ok := readBuildInfo()
	if !ok {
		return i
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.time":
			i.BuiltAt = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}
