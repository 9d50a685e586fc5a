// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zimsendapi/docs/internal/logging"
	"github.com/zimsendapi/docs/internal/nav"
	"github.com/zimsendapi/docs/internal/tui"
)

// RunBrowse opens the interactive sidebar browser. Pressing r rebuilds the
// navigation from disk.
func RunBrowse(ctx context.Context, configPath string) error {
	p := tea.NewProgram(tui.NewModel(browseLoader(ctx, configPath)), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// browseLoader builds without logging, log lines would corrupt the screen.
func browseLoader(ctx context.Context, configPath string) tui.Loader {
	return func() (*nav.Tree, error) {
		_, res, err := loadAndBuild(ctx, configPath, logging.Discard())
		if err != nil {
			return nil, err
		}
		return res.Tree, nil
	}
}
