// SPDX-License-Identifier: GPL-3.0-only

//go:build !windows

package gdi

import "github.com/nv-tools/nvcp-toggle/internal/ramp"

// NewController returns a RampController whose calls always fail: gamma
// ramp access goes through GDI and only exists on Windows.
func NewController() RampController {
	return unavailableController{}
}

type unavailableController struct{}

func (unavailableController) ReadTable(string) (ramp.Table, error) {
	return ramp.Table{}, ErrUnavailable
}

func (unavailableController) WriteTable(string, ramp.Table) error {
	return ErrUnavailable
}
