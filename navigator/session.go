// SPDX-License-Identifier: MIT
package navigator

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/nearest"
	"github.com/katalvlaran/campusnav/route"
)

// exitWord aborts any location prompt and ends the session.
const exitWord = "exit"

// Session is one interactive conversation over a graph. It is not safe for
// concurrent use; the graph may be shared between sessions.
type Session struct {
	g        *core.Graph
	resolver *Resolver
	in       *bufio.Scanner
	p        printer
	cfg      config
}

// NewSession binds g to the given streams.
func NewSession(g *core.Graph, in io.Reader, out io.Writer, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var o *termenv.Output
	if cfg.auto {
		o = termenv.NewOutput(out)
	} else {
		o = termenv.NewOutput(out, termenv.WithProfile(cfg.profile))
	}

	return &Session{
		g:        g,
		resolver: NewResolver(g),
		in:       bufio.NewScanner(in),
		p:        printer{out: o},
		cfg:      cfg,
	}
}

// Resolver exposes the name resolver of the session.
func (s *Session) Resolver() *Resolver { return s.resolver }

// Run drives the menu until the user picks Exit, types "exit" at a location
// prompt, input ends, or ctx is cancelled. End of input is not an error; a
// cancelled context returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	if s.cfg.prompts {
		s.p.banner(s.cfg.title)
	}
	s.cfg.log.Debug().Int("locations", s.g.Len()).Int("k", s.cfg.k).Msg("session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.menu()

		choice, ok := s.readLine()
		if !ok {
			return s.endOfInput()
		}

		switch choice {
		case "1":
			s.ShowLocations()
		case "2":
			src, ok := s.promptLocation("Enter source: ")
			if !ok {
				return s.endOfInput()
			}
			dst, ok := s.promptLocation("Enter destination: ")
			if !ok {
				return s.endOfInput()
			}
			if err := s.ShowRoute(src, dst); err != nil && !errors.Is(err, route.ErrUnreachable) {
				return err
			}
		case "3":
			src, ok := s.promptLocation("Enter location: ")
			if !ok {
				return s.endOfInput()
			}
			if err := s.ShowNearest(src); err != nil {
				return err
			}
		case "4":
			s.p.printf("\nGoodbye!\n")
			return nil
		default:
			s.cfg.log.Debug().Str("choice", choice).Msg("invalid menu choice")
			s.p.errorf("Invalid choice.")
			s.p.printf("\n")
		}
	}
}

// ShowLocations prints every location in index order.
func (s *Session) ShowLocations() {
	s.p.locations(s.g)
}

// ShowRoute prints the itinerary from src to dst. For an unreachable pair it
// prints an error line and returns route.ErrUnreachable.
func (s *Session) ShowRoute(src, dst int) error {
	if src == dst {
		s.p.infof("You are already at %s.", s.g.Name(src))
		return nil
	}

	it, err := route.Plan(s.g, src, dst)
	switch {
	case errors.Is(err, route.ErrUnreachable):
		s.cfg.log.Debug().Str("from", s.g.Name(src)).Str("to", s.g.Name(dst)).Msg("no route")
		s.p.errorf("No possible path between %s and %s.", s.g.Name(src), s.g.Name(dst))
		s.p.printf("\n")
		return err
	case err != nil:
		return err
	}

	s.cfg.log.Debug().
		Str("from", s.g.Name(src)).
		Str("to", s.g.Name(dst)).
		Int64("distance", it.Distance).
		Int("hops", it.Route.Hops()).
		Msg("route planned")
	s.p.itinerary(s.g, it)

	return nil
}

// ShowNearest prints the configured number of closest locations to src.
func (s *Session) ShowNearest(src int) error {
	entries, err := nearest.NearestK(s.g, src, s.cfg.k)
	if err != nil {
		return err
	}
	s.cfg.log.Debug().Str("from", s.g.Name(src)).Int("found", len(entries)).Msg("nearest ranked")
	s.p.ranking(s.g, src, entries)

	return nil
}

func (s *Session) menu() {
	if !s.cfg.prompts {
		return
	}
	s.p.printf("Menu:\n")
	s.p.printf("  1. Show known locations\n")
	s.p.printf("  2. Find route between two locations\n")
	s.p.printf("  3. Show %d closest locations\n", s.cfg.k)
	s.p.printf("  4. Exit\n")
	s.p.printf("Enter choice (1-4): ")
}

// promptLocation asks until the input resolves. Blank lines re-ask silently;
// unknown names print an error and the location list. It returns false on
// "exit" or end of input.
func (s *Session) promptLocation(prompt string) (int, bool) {
	for {
		if s.cfg.prompts {
			s.p.printf("%s", prompt)
		}
		line, ok := s.readLine()
		if !ok {
			return -1, false
		}
		if line == "" {
			continue
		}
		if strings.EqualFold(line, exitWord) {
			return -1, false
		}
		if i, found := s.resolver.Resolve(line); found {
			return i, true
		}
		s.cfg.log.Debug().Str("input", line).Msg("unknown location")
		s.p.errorf("Unknown location: '%s'", line)
		s.ShowLocations()
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.in.Text()), true
}

// endOfInput returns the scanner error, if any. io.EOF is reported as nil.
func (s *Session) endOfInput() error {
	if err := s.in.Err(); err != nil {
		return err
	}
	s.cfg.log.Debug().Msg("session ended")

	return nil
}
