// SPDX-License-Identifier: MIT

// Command campusnav answers shortest-route and nearest-location questions
// over a campus map, either from a numbered menu or as one-shot commands.
//
//	campusnav                          # interactive menu
//	campusnav route PunchGate Gate     # one route
//	campusnav -map demo nearest Ground # closest locations on the demo map
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/navigator"
	"github.com/katalvlaran/campusnav/route"
)

var version = "dev"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "campusnav: .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

// run is main without process globals, returning the exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errW io.Writer, getenv func(string) string) int {
	cfg, err := parseConfig(args, getenv, errW)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case err != nil:
		fmt.Fprintf(errW, "campusnav: %v\n", err)
		return exitUsage
	}
	if cfg.version {
		fmt.Fprintf(out, "campusnav %s\n", version)
		return exitOK
	}

	log := newLogger(errW, cfg.logLevel, cfg.noColor)

	g, source, err := loadGraph(cfg)
	if err != nil {
		log.Error().Err(err).Msg("cannot load map")
		return exitFailure
	}
	report := campusmap.Summarize(g)
	log.Info().
		Str("map", source).
		Int("locations", report.Locations).
		Int("corridors", report.Corridors).
		Msg("map loaded")
	if !report.Connected() {
		names := make([]string, 0, len(report.Isolated()))
		for _, i := range report.Isolated() {
			names = append(names, g.Name(i))
		}
		log.Warn().
			Int("components", len(report.Components)).
			Strs("unreachable_from_first", names).
			Msg("map is disconnected")
	}

	opts := []navigator.Option{
		navigator.WithLogger(log),
		navigator.WithK(cfg.k),
		navigator.WithPrompts(isTerminal(in)),
	}
	if cfg.noColor || !isTerminal(out) {
		opts = append(opts, navigator.WithColorProfile(termenv.Ascii))
	}
	s := navigator.NewSession(g, in, out, opts...)

	if len(cfg.args) == 0 {
		return interactive(ctx, s, in, log)
	}

	return oneShot(s, cfg.args, errW)
}

func loadGraph(cfg config) (*core.Graph, string, error) {
	if cfg.mapFile != "" {
		m, err := campusmap.LoadFile(cfg.mapFile)
		if err != nil {
			return nil, cfg.mapFile, err
		}
		g, err := m.Build()
		return g, cfg.mapFile, err
	}
	g, err := campusmap.BuildGraph(cfg.mapName)

	return g, cfg.mapName, err
}

// interactive runs the menu until it ends or ctx is cancelled. Run only
// checks ctx between lines, so on cancellation it may still be blocked in a
// read; in is closed when it can be, and otherwise the goroutine is left to
// the process exit.
func interactive(ctx context.Context, s *navigator.Session, in io.Reader, log zerolog.Logger) int {
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("session failed")
			return exitFailure
		}
	case <-ctx.Done():
		log.Debug().Msg("interrupted")
		if c, ok := in.(io.Closer); ok {
			_ = c.Close()
		}
	}

	return exitOK
}

func oneShot(s *navigator.Session, args []string, errW io.Writer) int {
	want := map[string]int{"locations": 1, "route": 3, "nearest": 2}
	n, known := want[args[0]]
	if !known || len(args) != n {
		fmt.Fprintf(errW, "campusnav: unknown command or wrong arguments: %q\n", args)
		return exitUsage
	}

	ids := make([]int, 0, 2)
	for _, name := range args[1:] {
		i, err := s.Resolver().Lookup(name)
		if err != nil {
			fmt.Fprintf(errW, "campusnav: %v\n", err)
			return exitFailure
		}
		ids = append(ids, i)
	}

	var err error
	switch args[0] {
	case "locations":
		s.ShowLocations()
	case "route":
		err = s.ShowRoute(ids[0], ids[1])
	case "nearest":
		err = s.ShowNearest(ids[0])
	}
	switch {
	case errors.Is(err, route.ErrUnreachable):
		return exitFailure
	case err != nil:
		fmt.Fprintf(errW, "campusnav: %v\n", err)
		return exitFailure
	}

	return exitOK
}

func newLogger(w io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.NoColor = noColor || !isTerminal(w)
		cw.TimeFormat = time.TimeOnly
	})).Level(level).With().Timestamp().Logger()
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
