// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package mvlf

import (
	"bytes"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestGofmt(t *testing.T) {
	var w bytes.Buffer
	run(t, &w, "gofmt", "-l", "cmd", "internal")
	if files := w.String(); files != "" {
		t.Fatalf("run gofmt on these files:\n%v", files)
	}
}

const copyrightHeader = "// © "

func TestCopyright(t *testing.T) {
	for _, root := range []string{".", "cmd", "internal"} {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if root == "." && path != "." {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".go" {
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if !bytes.HasPrefix(content, []byte(copyrightHeader)) {
				t.Errorf("%s: missing copyright header", path)
			}
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func run(t *testing.T, buf *bytes.Buffer, cmd string, args ...string) {
	buf.Reset()
	c := exec.Command(cmd, args...)
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		t.Fatalf("%s failed: %v:\n%v", cmd, err, buf.String())
	}
}
