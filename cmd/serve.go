// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"context"

	"github.com/zimsendapi/docs/internal/server"
)

// RunServe starts the preview server and blocks until ctx is cancelled.
func RunServe(ctx context.Context, opts server.Options) error {
	srv, err := server.New(opts)
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}
