// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/campusnav/campusmap"
	"github.com/katalvlaran/campusnav/nearest"
)

// Environment variables consulted when the matching flag is not given.
const (
	envMap      = "CAMPUSNAV_MAP"
	envMapFile  = "CAMPUSNAV_MAP_FILE"
	envK        = "CAMPUSNAV_K"
	envLogLevel = "CAMPUSNAV_LOG_LEVEL"
)

var errUsage = errors.New("usage error")

// config is the resolved process configuration.
type config struct {
	mapName  string
	mapFile  string
	k        int
	logLevel zerolog.Level
	noColor  bool
	version  bool
	args     []string
}

// parseConfig reads flags from args, falling back to getenv and then to
// built-in defaults. Flags win over the environment.
func parseConfig(args []string, getenv func(string) string, errW io.Writer) (config, error) {
	cfg := config{
		mapName:  campusmap.DefaultMap,
		k:        nearest.DefaultK,
		logLevel: zerolog.WarnLevel,
	}
	if v := getenv(envMap); v != "" {
		cfg.mapName = v
	}
	cfg.mapFile = getenv(envMapFile)
	if v := getenv(envK); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q is not an integer", errUsage, envK, v)
		}
		cfg.k = k
	}
	level := getenv(envLogLevel)
	if level == "" {
		level = cfg.logLevel.String()
	}

	flags := flag.NewFlagSet("campusnav", flag.ContinueOnError)
	flags.SetOutput(errW)
	flags.Usage = func() { usage(flags, errW) }
	flags.StringVar(&cfg.mapName, "map", cfg.mapName, "built-in map `name` ("+joinNames()+")")
	flags.StringVar(&cfg.mapFile, "map-file", cfg.mapFile, "load the map from a YAML `file` instead of a built-in one")
	flags.IntVar(&cfg.k, "k", cfg.k, "number of closest locations to list")
	flags.StringVar(&level, "log-level", level, "log `level` (trace, debug, info, warn, error, disabled)")
	flags.BoolVar(&cfg.noColor, "no-color", false, "disable coloured output")
	flags.BoolVar(&cfg.version, "version", false, "print the version and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}
	cfg.args = flags.Args()

	// -map-file beats -map only when both come from the same layer; an
	// explicit -map overrides a map file taken from the environment.
	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["map"] && !set["map-file"] {
		cfg.mapFile = ""
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return cfg, fmt.Errorf("%w: log level: %w", errUsage, err)
	}
	cfg.logLevel = lvl
	if cfg.k < 1 {
		return cfg, fmt.Errorf("%w: k must be at least 1, got %d", errUsage, cfg.k)
	}

	return cfg, nil
}

func joinNames() string {
	return strings.Join(campusmap.BuiltinNames(), ", ")
}

func usage(flags *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: campusnav [flags] [command]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  locations              list every location\n")
	fmt.Fprintf(w, "  route <from> <to>      print the shortest route\n")
	fmt.Fprintf(w, "  nearest <location>     list the closest locations\n")
	fmt.Fprintf(w, "  (none)                 start the interactive menu\n\n")
	fmt.Fprintf(w, "Flags:\n")
	flags.PrintDefaults()
}
