// Package nvapi exposes the NVIDIA driver controls the toggle flow needs
// behind a small capability interface.
package nvapi

//go:generate mockgen -source=driver.go -destination=mocks/driver_mock.go -package=mocks

import (
	"errors"

	"github.com/nv-tools/nvcp-toggle/internal/vibrance"
)

// ErrUnavailable is returned when the vendor driver library cannot be
// loaded or initialized.
var ErrUnavailable = errors.New("nvapi driver unavailable")

// Display identifies one NVIDIA-driven display.
type Display struct {
	// Handle is the vendor display handle. It is owned by the driver and
	// only valid between Init and Unload.
	Handle uintptr

	// Name is the OS device name, e.g. `\\.\DISPLAY1`.
	Name string
}

// Driver is the set of vendor driver calls used by the toggle flow.
// This interface allows for mocking in tests.
type Driver interface {
	// Init loads and initializes the vendor library.
	Init() error

	// Unload releases the vendor library.
	Unload() error

	// EnumDisplays lists the displays the driver knows about.
	EnumDisplays() ([]Display, error)

	// GetVibrance reports the current digital vibrance level and its range.
	GetVibrance(d Display) (vibrance.Level, error)

	// SetVibrance sets the raw digital vibrance level.
	SetVibrance(d Display, raw int) error

	// GetHue reports the current hue angle in driver units.
	GetHue(d Display) (int, error)

	// SetHue sets the hue angle.
	SetHue(d Display, angle int) error
}
