// SPDX-License-Identifier: MIT
package navigator

import (
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/campusnav/nearest"
)

// Option configures a Session.
type Option func(*config)

type config struct {
	log     zerolog.Logger
	k       int
	profile termenv.Profile
	auto    bool
	prompts bool
	title   string
}

func defaultConfig() config {
	return config{
		log:     zerolog.Nop(),
		k:       nearest.DefaultK,
		auto:    true,
		prompts: true,
		title:   "CAMPUS NAVIGATION SYSTEM",
	}
}

// WithLogger sets the logger used for query events. The default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithK sets how many closest locations menu option 3 lists.
// Panics if k < 1.
func WithK(k int) Option {
	if k < 1 {
		panic("navigator: WithK requires k >= 1")
	}
	return func(c *config) { c.k = k }
}

// WithColorProfile forces a termenv colour profile instead of detecting one
// from the output writer. termenv.Ascii disables styling.
func WithColorProfile(p termenv.Profile) Option {
	return func(c *config) {
		c.profile = p
		c.auto = false
	}
}

// WithPrompts controls whether the banner, menu and prompts are printed.
// Disable it when input is piped.
func WithPrompts(on bool) Option {
	return func(c *config) { c.prompts = on }
}

// WithTitle replaces the banner title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}
