// Package gdi reads and writes display gamma tables through the OS
// graphics layer.
package gdi

//go:generate mockgen -source=gdi.go -destination=mocks/controller_mock.go -package=mocks

import (
	"errors"

	"github.com/nv-tools/nvcp-toggle/internal/ramp"
)

// ErrUnavailable is returned when the OS graphics layer cannot provide
// gamma ramp access.
var ErrUnavailable = errors.New("gamma ramp access unavailable")

// RampController reads and writes the gamma table of one display device.
// This interface allows for mocking in tests.
type RampController interface {
	// ReadTable returns the gamma table currently applied to the device.
	ReadTable(deviceName string) (ramp.Table, error)

	// WriteTable applies a gamma table to the device.
	WriteTable(deviceName string, table ramp.Table) error
}
