// SPDX-License-Identifier: GPL-3.0-only

//go:build !windows

package nvapi

import "github.com/nv-tools/nvcp-toggle/internal/vibrance"

// NewDriver returns a Driver whose Init always fails: the vendor driver
// library only exists on Windows.
func NewDriver() Driver {
	return unavailableDriver{}
}

type unavailableDriver struct{}

func (unavailableDriver) Init() error {
	return ErrUnavailable
}

func (unavailableDriver) Unload() error {
	return nil
}

func (unavailableDriver) EnumDisplays() ([]Display, error) {
	return nil, ErrUnavailable
}

func (unavailableDriver) GetVibrance(Display) (vibrance.Level, error) {
	return vibrance.Level{}, ErrUnavailable
}

func (unavailableDriver) SetVibrance(Display, int) error {
	return ErrUnavailable
}

func (unavailableDriver) GetHue(Display) (int, error) {
	return 0, ErrUnavailable
}

func (unavailableDriver) SetHue(Display, int) error {
	return ErrUnavailable
}
