// SPDX-License-Identifier: GPL-3.0-only

// Package toggle flips displays between their default color state and the
// configured custom look.
package toggle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/nv-tools/nvcp-toggle/internal/config"
	"github.com/nv-tools/nvcp-toggle/internal/gdi"
	"github.com/nv-tools/nvcp-toggle/internal/nvapi"
	"github.com/nv-tools/nvcp-toggle/internal/ramp"
	"github.com/nv-tools/nvcp-toggle/internal/vibrance"
)

// Toggler applies or reverts the custom look per display. The driver and
// ramp controller are injected so the decision logic is testable without
// hardware.
type Toggler struct {
	driver nvapi.Driver
	ramps  gdi.RampController
	cfg    config.Config
}

// NewToggler creates a Toggler using the given driver, ramp controller and
// configuration.
func NewToggler(driver nvapi.Driver, ramps gdi.RampController, cfg config.Config) *Toggler {
	return &Toggler{driver: driver, ramps: ramps, cfg: cfg}
}

// State is the observed color state of one display. Driver calls that fail
// are reported as their neutral values, so an unreadable display looks like
// one at its defaults.
type State struct {
	// Vibrance is the raw level and range. A failed query reports level 0
	// with the fallback range, which is indistinguishable from a display
	// genuinely at 50%.
	Vibrance vibrance.Level

	// Hue is the current hue angle, 0 when the query fails.
	Hue int

	// NeutralRamp reports whether the gamma table matches the neutral
	// table, true when the table cannot be read.
	NeutralRamp bool
}

// IsDefault reports whether every control sits at its default value. One
// raw step of vibrance slack absorbs the integer rounding of the percent
// mapping; hue must match exactly.
func (s State) IsDefault() bool {
	defaultRaw := vibrance.PercentToRaw(vibrance.NeutralPercent, s.Vibrance.Max)
	diff := s.Vibrance.Current - defaultRaw
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1 && s.Hue == 0 && s.NeutralRamp
}

// Observe reads the current state of a display, substituting neutral values
// for driver calls that fail.
func (t *Toggler) Observe(d nvapi.Display) State {
	s := State{Vibrance: vibrance.Level{Max: vibrance.FallbackMaxLevel}}

	if level, err := t.driver.GetVibrance(d); err != nil {
		log.Debug().Err(err).Str("display", d.Name).Msg("Vibrance query failed, assuming neutral")
	} else {
		s.Vibrance = level
	}

	if hue, err := t.driver.GetHue(d); err != nil {
		log.Debug().Err(err).Str("display", d.Name).Msg("Hue query failed, assuming neutral")
	} else {
		s.Hue = hue
	}

	s.NeutralRamp = true
	if table, err := t.ramps.ReadTable(d.Name); err != nil {
		log.Debug().Err(err).Str("display", d.Name).Msg("Gamma table unreadable, assuming default")
	} else {
		s.NeutralRamp = table.IsNeutral()
	}

	return s
}

// ToggleDisplay applies the custom look when the display sits at its
// default state and restores the defaults otherwise. It reports whether
// the custom look is now active.
func (t *Toggler) ToggleDisplay(d nvapi.Display) bool {
	state := t.Observe(d)
	if state.IsDefault() {
		t.applyCustom(d, state.Vibrance.Max)
		return true
	}
	t.applyDefault(d, state.Vibrance.Max)
	return false
}

// Run toggles the first display, or every display when the configuration
// asks for it.
func (t *Toggler) Run() error {
	displays, err := t.driver.EnumDisplays()
	if err != nil {
		return fmt.Errorf("failed to enumerate displays: %w", err)
	}
	if len(displays) == 0 {
		return errors.New("no NVIDIA display found")
	}

	if !t.cfg.ToggleAllDisplays {
		displays = displays[:1]
	}

	for _, d := range displays {
		active := t.ToggleDisplay(d)
		log.Info().Str("display", d.Name).Bool("custom", active).Msg("Display toggled")
	}
	return nil
}

// DisplayStatus is the read-only state readout for one display.
type DisplayStatus struct {
	Name        string
	VibrancePct int
	Hue         int
	AtDefault   bool
}

// Status reports the observed state of every display without changing
// anything.
func (t *Toggler) Status() ([]DisplayStatus, error) {
	displays, err := t.driver.EnumDisplays()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate displays: %w", err)
	}

	statuses := make([]DisplayStatus, 0, len(displays))
	for _, d := range displays {
		s := t.Observe(d)
		statuses = append(statuses, DisplayStatus{
			Name:        d.Name,
			VibrancePct: vibrance.RawToPercent(s.Vibrance.Current, s.Vibrance.Max),
			Hue:         s.Hue,
			AtDefault:   s.IsDefault(),
		})
	}
	return statuses, nil
}

func (t *Toggler) applyCustom(d nvapi.Display, dvcMax int) {
	raw := vibrance.PercentToRaw(t.cfg.Vibrance, dvcMax)

	log.Info().
		Str("display", d.Name).
		Int("vibrance", t.cfg.Vibrance).
		Int("hue", t.cfg.Hue).
		Float64("brightness", t.cfg.Brightness).
		Float64("contrast", t.cfg.Contrast).
		Float64("gamma", t.cfg.Gamma).
		Int("temperature", t.cfg.Temperature).
		Msg("Applying custom settings")

	t.apply(d, raw, t.cfg.Hue, ramp.Adjustment{
		Brightness:  t.cfg.Brightness,
		Contrast:    t.cfg.Contrast,
		Gamma:       t.cfg.Gamma,
		Temperature: t.cfg.Temperature,
	})
}

func (t *Toggler) applyDefault(d nvapi.Display, dvcMax int) {
	raw := vibrance.PercentToRaw(vibrance.NeutralPercent, dvcMax)

	log.Info().Str("display", d.Name).Msg("Restoring default settings")

	t.apply(d, raw, 0, ramp.Neutral())
}

// apply pushes one full look at a display. Individual set failures are
// logged and skipped.
func (t *Toggler) apply(d nvapi.Display, vibranceRaw, hue int, adj ramp.Adjustment) {
	if err := t.driver.SetVibrance(d, vibranceRaw); err != nil {
		log.Warn().Err(err).Str("display", d.Name).Msg("Failed to set vibrance")
	}
	if err := t.driver.SetHue(d, hue); err != nil {
		log.Warn().Err(err).Str("display", d.Name).Msg("Failed to set hue")
	}
	table := ramp.Build(adj)
	if err := t.ramps.WriteTable(d.Name, table); err != nil {
		log.Warn().Err(err).Str("display", d.Name).Msg("Failed to write gamma table")
	}
}
