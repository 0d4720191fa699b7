// SPDX-License-Identifier: MIT
package navigator

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/campusnav/compass"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/nearest"
	"github.com/katalvlaran/campusnav/route"
)

const (
	rule        = "--------------------------------------------"
	banner      = "================================================="
	placeholder = "—"
	chainSep    = " -> "
)

// printer writes styled text; under termenv.Ascii it writes plain text.
type printer struct {
	out *termenv.Output
}

func (p printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p printer) plain() bool { return p.out.Profile == termenv.Ascii }

func (p printer) bold(s string) string {
	if p.plain() {
		return s
	}
	return p.out.String(s).Bold().String()
}

func (p printer) color(s, c string) string {
	if p.plain() {
		return s
	}
	return p.out.String(s).Foreground(p.out.Color(c)).String()
}

func (p printer) errorf(format string, args ...any) {
	p.printf("\n%s %s\n", p.color("[ERROR]", "1"), fmt.Sprintf(format, args...))
}

func (p printer) infof(format string, args ...any) {
	p.printf("\n%s %s\n\n", p.color("[INFO]", "6"), fmt.Sprintf(format, args...))
}

// Label renders d for display, using "—" for compass.Unknown.
func Label(d compass.Direction) string {
	if !d.Valid() {
		return placeholder
	}

	return d.String()
}

// Chain joins a direction chain with " -> ". An empty chain renders as "—".
func Chain(dirs []compass.Direction) string {
	if len(dirs) == 0 {
		return placeholder
	}
	parts := make([]string, len(dirs))
	for i, d := range dirs {
		parts[i] = Label(d)
	}

	return strings.Join(parts, chainSep)
}

func (p printer) banner(title string) {
	pad := (len(banner) - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	p.printf("%s\n%s%s\n%s\n\n", banner, strings.Repeat(" ", pad), p.bold(title), banner)
}

func (p printer) locations(g *core.Graph) {
	p.printf("\n%s\n%s\n%s\n", rule, p.bold("Known locations:"), rule)
	for _, l := range g.Locations() {
		p.printf("  • %s\n", l.Name)
	}
	p.printf("%s\n\n", rule)
}

func (p printer) itinerary(g *core.Graph, it *route.Itinerary) {
	p.printf("\nTotal distance: %s units\n\n", p.bold(fmt.Sprint(it.Distance)))
	p.printf("Step-by-step navigation:\n")
	for _, s := range it.Steps {
		if !s.Known {
			p.printf("  → From %-15s ??? to %-15s (unknown)\n", g.Name(s.From), g.Name(s.To))
			continue
		}
		p.printf("  → From %-15s go %-13s to %-15s (%d)\n", g.Name(s.From), Label(s.Direction), g.Name(s.To), s.Weight)
	}
	p.printf("\n-------------- ROUTE COMPLETE --------------\n\n")
}

func (p printer) ranking(g *core.Graph, source int, entries []nearest.Entry) {
	if len(entries) == 0 {
		p.infof("No reachable locations from %s.", g.Name(source))
		return
	}
	p.printf("\nTop %d closest locations to %s:\n%s\n", len(entries), g.Name(source), rule)
	for i, e := range entries {
		p.printf("%d. %s\n", i+1, p.bold(g.Name(e.Location)))
		p.printf("    Distance:   %d units\n", e.Distance)
		p.printf("    Directions: %s\n\n", Chain(e.Directions))
	}
	p.printf("%s\n\n", rule)
}
