// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/zimsendapi/docs/internal/build"
	"github.com/zimsendapi/docs/internal/config"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/logging"
	"github.com/zimsendapi/docs/internal/render"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// GenerateOptions configures RunGenerate and RunCheck.
type GenerateOptions struct {
	ConfigPath string
	// Output overrides the project file's output path.
	Output string
	// Format overrides the project file's format.
	Format string
	Logger *logging.Logger
}

// RunGenerate builds the navigation and writes the sidebar file.
func RunGenerate(ctx context.Context, opts GenerateOptions) error {
	cfg, res, err := loadAndBuild(ctx, opts.ConfigPath, opts.Logger)
	if err != nil {
		return err
	}
	path, format, err := outputTarget(cfg, opts)
	if err != nil {
		return err
	}

	data, err := render.Encode(render.FromTree(res.Tree), format)
	if err != nil {
		return err
	}
	return writeOutput(path, data)
}

// loadAndBuild loads the project file and runs one build.
func loadAndBuild(ctx context.Context, configPath string, logger *logging.Logger) (*config.Config, *build.Result, error) {
	if configPath == "" {
		configPath = config.DefaultFile
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, err
	}
	res, err := build.Run(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return cfg, res, nil
}

func outputTarget(cfg *config.Config, opts GenerateOptions) (string, render.Format, error) {
	name := cfg.Format
	if opts.Format != "" {
		name = opts.Format
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return "", "", err
	}
	path := cfg.Output
	if opts.Output != "" {
		path = opts.Output
	}
	return path, format, nil
}

// writeOutput writes data to path, or to the printer when path is "-".
func writeOutput(path string, data []byte) error {
	if path == StdoutPath {
		Printer.Print(string(data))
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.KindInternal, "create directory %s", dir)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.KindInternal, "write %s", path)
	}
	Printer.Printf("Generated %s\n", path)
	return nil
}
