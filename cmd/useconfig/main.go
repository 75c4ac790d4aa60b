// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command useconfig prints the configuration variant selected by its
// arguments, optionally reprinting it whenever the file changes.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/nilswg/use-config/internal/config"
	"github.com/nilswg/use-config/internal/diagnostic"
	"github.com/nilswg/use-config/internal/loader"
	"github.com/nilswg/use-config/internal/logger"
	"github.com/nilswg/use-config/internal/store"
	"github.com/nilswg/use-config/internal/watch"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.ParseFlags("useconfig", args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "useconfig: %v\n", err)
		return 2
	}

	if cfg.Version {
		printBuildInfo(stdout)
		return 0
	}

	log, err := logger.New(stderr, "useconfig").AtLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "useconfig: %v\n", err)
		return 2
	}

	l := loader.New(store.OS(), log, diagnostic.New(stderr))
	out := &printer{w: stdout, format: cfg.Output}

	if !cfg.Watch {
		if err := loadAndPrint(l, cfg.Options, out); err != nil {
			return 1
		}
		return 0
	}

	res, err := l.Resolve(cfg.Options)
	if err != nil {
		return 1
	}
	_ = loadAndPrint(l, res.Options, out)

	w, err := watch.New(watch.DefaultDebounce)
	if err != nil {
		log.Error().Err(err).Msg("error creating watcher")
		return 1
	}
	defer w.Close()

	prefix := "config." + res.Name + "."
	match := func(name string) bool {
		return strings.HasPrefix(filepath.Base(name), prefix)
	}
	reload := func() {
		if err := loadAndPrint(l, res.Options, out); err != nil {
			log.Warn().Err(err).Msg("reload failed, still watching")
		}
	}

	if err := w.Watch(log.WithContext(ctx), filepath.Dir(res.Path), match, reload); err != nil {
		log.Error().Err(err).Msg("error watching config directory")
		return 1
	}
	return 0
}

func loadAndPrint(l loader.ConfigLoader, opts config.Options, out *printer) error {
	obj, err := l.Load(opts)
	if err != nil {
		return err
	}
	return out.print(obj)
}

// printer writes a config object in the selected output format.
type printer struct {
	w      io.Writer
	format string
}

func (p *printer) print(obj map[string]any) error {
	var (
		data []byte
		err  error
	)
	switch p.format {
	case config.OutputYAML:
		data, err = yaml.Marshal(obj)
	default:
		data, err = json.MarshalIndent(obj, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("error encoding config as %s: %w", p.format, err)
	}

	_, err = p.w.Write(data)
	return err
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
