// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// navgen builds the docs site sidebars from the OpenAPI document and the
// hand-written navigation in navgen.hcl.
//
// Usage:
//
//	go run ./cmd/navgen init
//	go run ./cmd/navgen generate -config=site/navgen.hcl
//	go run ./cmd/navgen check -config=site/navgen.hcl
//	go run ./cmd/navgen tree -sidebar=apisidebar
//	go run ./cmd/navgen browse
//	go run ./cmd/navgen schema -output=docs/sidebars.schema.json
//	go run ./cmd/navgen gen-api-docs
//	go run ./cmd/navgen config-docs -output=docs/navgen-reference.md
//	go run ./cmd/navgen serve -listen=127.0.0.1:8089
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/zimsendapi/docs/cmd"
	"github.com/zimsendapi/docs/internal/config"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/logging"
	"github.com/zimsendapi/docs/internal/server"
)

const usage = `Usage: navgen [-v] [-log-json] <command> [flags]

Commands:
  init           write a starter navgen.hcl
  generate       build the navigation and write the sidebar file
  check          fail when the committed sidebar file is out of date
  tree           print the navigation as a tree
  browse         explore the navigation interactively
  schema         print the JSON Schema of the sidebar file
  gen-api-docs   write the API overview and operation pages
  config-docs    write the navgen.hcl reference page
  serve          run the preview server

Run "navgen <command> -h" for command flags.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	global := flag.NewFlagSet("navgen", flag.ContinueOnError)
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	verbose := global.Bool("v", false, "Enable debug logging")
	logJSON := global.Bool("log-json", false, "Write logs as JSON")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		global.Usage()
		return 2
	}

	logCfg := logging.DefaultConfig()
	logCfg.JSON = *logJSON
	if *verbose {
		logCfg.Level = logging.LevelDebug
	}
	logger := logging.New(logCfg)
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	name, rest := global.Arg(0), global.Args()[1:]
	fs := flag.NewFlagSet("navgen "+name, flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultFile, "Project file")

	var runCmd func() error
	switch name {
	case "init":
		force := fs.Bool("force", false, "Overwrite an existing project file")
		yes := fs.Bool("yes", false, "Accept the defaults without asking")
		runCmd = func() error {
			return cmd.RunInit(cmd.InitOptions{Path: *configPath, Interactive: !*yes, Force: *force})
		}

	case "generate", "check":
		output := fs.String("output", "", "Sidebar file (default: output from the project file, - for stdout)")
		format := fs.String("format", "", "Sidebar format: json, yaml, ts (default: format from the project file)")
		runCmd = func() error {
			opts := cmd.GenerateOptions{ConfigPath: *configPath, Output: *output, Format: *format, Logger: logger}
			if name == "check" {
				return cmd.RunCheck(ctx, opts)
			}
			return cmd.RunGenerate(ctx, opts)
		}

	case "tree":
		sidebar := fs.String("sidebar", "", "Only print this sidebar")
		ids := fs.Bool("ids", false, "Show document ids")
		runCmd = func() error {
			return cmd.RunTree(ctx, cmd.TreeOptions{ConfigPath: *configPath, Sidebar: *sidebar, ShowIDs: *ids, Logger: logger})
		}

	case "browse":
		runCmd = func() error { return cmd.RunBrowse(ctx, *configPath) }

	case "schema":
		output := fs.String("output", "", "Output file (default: stdout)")
		runCmd = func() error { return cmd.RunSchema(*output) }

	case "gen-api-docs":
		outputDir := fs.String("output-dir", "", "Page directory (default: api_docs_dir from the project file)")
		runCmd = func() error {
			return cmd.RunGenAPIDocs(cmd.APIDocsOptions{ConfigPath: *configPath, OutputDir: *outputDir, Logger: logger})
		}

	case "config-docs":
		sourceDir := fs.String("config-dir", cmd.DefaultConfigSourceDir, "Directory containing the config Go files")
		output := fs.String("output", "", "Output file (default: stdout)")
		runCmd = func() error { return cmd.RunConfigDocs(*sourceDir, *output) }

	case "serve":
		listen := fs.String("listen", server.DefaultListen, "Listen address")
		origins := fs.String("allow-origin", "", "Comma-separated origins allowed to fetch sidebars (CORS)")
		runCmd = func() error {
			var allowed []string
			if *origins != "" {
				allowed = strings.Split(*origins, ",")
			}
			return cmd.RunServe(ctx, server.Options{
				ConfigPath:     *configPath,
				Listen:         *listen,
				AllowedOrigins: allowed,
				Logger:         logger,
			})
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		global.Usage()
		return 2
	}

	if err := fs.Parse(rest); err != nil {
		return 2
	}
	if err := runCmd(); err != nil {
		if errors.Is(err, cmd.ErrDrift) {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		logger.Debug("command failed", "command", name, "kind", errors.GetKind(err).String(), "attributes", errors.GetAttributes(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
