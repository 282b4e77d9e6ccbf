// Copyright (c) 2024  The Go-Enjin Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/go-enjin/wink/pkg/globals"
	"github.com/go-enjin/wink/pkg/log"
	"github.com/go-enjin/wink/pkg/scenario"
)

func newApp() (app *cli.App) {
	app = &cli.App{
		Name:    globals.BinName,
		Usage:   globals.Summary,
		Version: globals.BuildVersion(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "quiet",
				Usage:    "set log level to WARN",
				Aliases:  []string{"q"},
				EnvVars:  globals.MakeEnvKeys("QUIET"),
				Category: "general",
			},
			&cli.BoolFlag{
				Name:     "debug",
				Usage:    "enable verbose logging for debugging purposes",
				EnvVars:  globals.MakeEnvKeys("DEBUG"),
				Category: "general",
			},
			&cli.StringFlag{
				Name:     "log-level",
				Usage:    "set logging level: error, warn, info, debug or trace",
				EnvVars:  globals.MakeEnvKeys("LOG_LEVEL"),
				Category: "logging",
			},
			&cli.StringFlag{
				Name:     "log-format",
				Usage:    "set logging format: pretty, text or json",
				Value:    log.FormatPretty.String(),
				EnvVars:  globals.MakeEnvKeys("LOG_FORMAT"),
				Category: "logging",
			},
			&cli.StringFlag{
				Name:     "log-file",
				Usage:    "append log output to the given file instead of stderr",
				EnvVars:  globals.MakeEnvKeys("LOG_FILE"),
				Category: "logging",
			},
			&cli.StringFlag{
				Name:     "papertrail-host",
				Usage:    "custom papertrail hostname",
				EnvVars:  globals.MakeEnvKeys("PAPERTRAIL_HOST"),
				Category: "logging",
			},
			&cli.IntFlag{
				Name:     "papertrail-port",
				Usage:    "custom papertrail port",
				EnvVars:  globals.MakeEnvKeys("PAPERTRAIL_PORT"),
				Value:    -1,
				Category: "logging",
			},
		},
		Before: setupLogging,
		Commands: cli.Commands{
			{
				Name:      "run",
				Usage:     "run scenario files and print the receivers invoked",
				ArgsUsage: "<scenario.{toml,yaml,json}> [...]",
				Action:    runScenarios,
			},
		},
	}
	return
}

func setupLogging(ctx *cli.Context) (err error) {
	config := *log.Config
	config.AppName = globals.BinName

	if format, ok := log.ParseFormat(ctx.String("log-format")); ok {
		config.LoggingFormat = format
	} else {
		return fmt.Errorf("invalid log-format: %v", ctx.String("log-format"))
	}

	lvl := strings.ToLower(ctx.String("log-level"))
	if level, ok := log.ParseLevel(lvl); ok {
		config.LogLevel = level
	} else if lvl != "" {
		return fmt.Errorf("invalid log-level: %v", lvl)
	} else if ctx.Bool("debug") {
		config.LogLevel = log.LevelDebug
	} else if ctx.Bool("quiet") {
		config.LogLevel = log.LevelWarn
	}

	config.LogFile = ctx.String("log-file")

	if host, port := ctx.String("papertrail-host"), ctx.Int("papertrail-port"); host != "" && port > 0 {
		config.LogHook = "papertrail"
		config.PapertrailHost = host
		config.PapertrailPort = port
		config.PapertrailTag = globals.BinName
	}

	if err = config.Apply(); err != nil {
		return
	}
	*log.Config = config
	log.DebugF("logging configured: level=%v format=%v hook=%v", config.LogLevel, config.LoggingFormat, config.LogHook)
	return
}

func runScenarios(ctx *cli.Context) (err error) {
	if ctx.NArg() == 0 {
		err = fmt.Errorf("at least one scenario file is required")
		return
	}
	out := ctx.App.Writer
	for _, path := range ctx.Args().Slice() {
		var s *scenario.Scenario
		if s, err = scenario.Load(path); err != nil {
			return
		}
		log.DebugF("running scenario %q from %v (%d steps)", s.Name, path, len(s.Steps))
		trace, ee := s.Run()
		_, _ = fmt.Fprintf(out, "# %s\n", s.Name)
		for _, call := range trace {
			_, _ = fmt.Fprintln(out, call.String())
		}
		if ee != nil {
			err = fmt.Errorf("%v: %w", s.Name, ee)
			return
		}
		_, _ = fmt.Fprintf(out, "# %s: ok (%d calls)\n", s.Name, len(trace))
	}
	return
}
