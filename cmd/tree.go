// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"context"

	"github.com/zimsendapi/docs/internal/logging"
	"github.com/zimsendapi/docs/internal/tui"
)

// TreeOptions configures RunTree.
type TreeOptions struct {
	ConfigPath string
	Sidebar    string
	ShowIDs    bool
	Logger     *logging.Logger
}

// RunTree prints the built navigation as a terminal tree.
func RunTree(ctx context.Context, opts TreeOptions) error {
	_, res, err := loadAndBuild(ctx, opts.ConfigPath, opts.Logger)
	if err != nil {
		return err
	}
	out, err := tui.RenderTree(res.Tree, tui.TreeOptions{Sidebar: opts.Sidebar, ShowIDs: opts.ShowIDs})
	if err != nil {
		return err
	}
	Printer.Print(out)
	return nil
}
