// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cmd

import (
	"context"
	"io/fs"
	"os"

	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/render"
)

// ErrDrift is returned by RunCheck when the committed sidebar file differs
// from a fresh build.
var ErrDrift = errors.New(errors.KindValidation, "sidebar file is out of date, run `navgen generate`")

// RunCheck rebuilds the navigation and compares it with the committed
// sidebar file. The unified diff is printed on drift.
func RunCheck(ctx context.Context, opts GenerateOptions) error {
	cfg, res, err := loadAndBuild(ctx, opts.ConfigPath, opts.Logger)
	if err != nil {
		return err
	}
	path, format, err := outputTarget(cfg, opts)
	if err != nil {
		return err
	}
	if path == StdoutPath {
		return errors.New(errors.KindValidation, "check needs a file to compare against")
	}

	generated, err := render.Encode(render.FromTree(res.Tree), format)
	if err != nil {
		return err
	}
	committed, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, errors.KindInternal, "read %s", path)
	}

	if diff := render.Diff(committed, generated, path); diff != "" {
		Printer.Print(diff)
		return ErrDrift
	}
	Printer.Printf("%s is up to date\n", path)
	return nil
}
