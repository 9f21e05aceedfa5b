// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

//go:build linux && !android

package restrict

import (
	"context"
	"log/slog"

	"github.com/landlock-lsm/go-landlock/landlock"

	"go.astrophena.name/mvlf/internal/logger"
)

// Do restricts all goroutines of this program to [landlock.Rule]s.
//
// If sandboxing fails, a warning is logged and the program continues.
func Do(ctx context.Context, rules ...landlock.Rule) {
	if err := landlock.V5.BestEffort().RestrictPaths(rules...); err != nil {
		logger.Warn(ctx, "sandboxing failed", slog.Any("err", err))
	}
}
