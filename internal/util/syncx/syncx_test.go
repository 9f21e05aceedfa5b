// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"sync"
	"sync/atomic"
	"testing"

	"go.astrophena.name/mvlf/internal/testutil"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[string]
		calls atomic.Int32
		wg    sync.WaitGroup
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := l.Get(func() string {
				calls.Add(1)
				return "usage"
			})
			if got != "usage" {
				t.Errorf("Get() = %q, want %q", got, "usage")
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, calls.Load(), int32(1))
}
