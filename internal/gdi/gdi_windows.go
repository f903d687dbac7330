// SPDX-License-Identifier: GPL-3.0-only

//go:build windows

package gdi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/nv-tools/nvcp-toggle/internal/ramp"
)

var (
	modGdi32  = windows.NewLazySystemDLL("gdi32.dll")
	modUser32 = windows.NewLazySystemDLL("user32.dll")

	procCreateDCW          = modGdi32.NewProc("CreateDCW")
	procDeleteDC           = modGdi32.NewProc("DeleteDC")
	procGetDeviceGammaRamp = modGdi32.NewProc("GetDeviceGammaRamp")
	procSetDeviceGammaRamp = modGdi32.NewProc("SetDeviceGammaRamp")
	procGetDC              = modUser32.NewProc("GetDC")
	procReleaseDC          = modUser32.NewProc("ReleaseDC")
)

// DeviceController implements RampController with GDI device contexts.
type DeviceController struct{}

// Verify DeviceController implements RampController.
var _ RampController = DeviceController{}

// NewController returns the GDI-backed ramp controller.
func NewController() RampController {
	return DeviceController{}
}

// ReadTable returns the gamma table currently applied to the device.
func (DeviceController) ReadTable(deviceName string) (ramp.Table, error) {
	var table ramp.Table

	hdc, release, err := openDC(deviceName)
	if err != nil {
		return table, err
	}
	defer release()

	ret, _, callErr := procGetDeviceGammaRamp.Call(hdc, uintptr(unsafe.Pointer(&table)))
	if ret == 0 {
		return table, fmt.Errorf("GetDeviceGammaRamp failed for %q: %v", deviceName, callErr)
	}
	return table, nil
}

// WriteTable applies a gamma table to the device.
func (DeviceController) WriteTable(deviceName string, table ramp.Table) error {
	hdc, release, err := openDC(deviceName)
	if err != nil {
		return err
	}
	defer release()

	ret, _, callErr := procSetDeviceGammaRamp.Call(hdc, uintptr(unsafe.Pointer(&table)))
	if ret == 0 {
		return fmt.Errorf("SetDeviceGammaRamp failed for %q: %v", deviceName, callErr)
	}
	return nil
}

// openDC opens a device context for the named display, falling back to the
// screen DC when the name is empty or cannot be opened. The returned
// release func must be called once the DC is no longer needed.
func openDC(deviceName string) (uintptr, func(), error) {
	if deviceName != "" {
		driver, _ := windows.UTF16PtrFromString("DISPLAY")
		device, err := windows.UTF16PtrFromString(deviceName)
		if err == nil {
			hdc, _, _ := procCreateDCW.Call(
				uintptr(unsafe.Pointer(driver)),
				uintptr(unsafe.Pointer(device)),
				0, 0,
			)
			if hdc != 0 {
				return hdc, func() { _, _, _ = procDeleteDC.Call(hdc) }, nil
			}
		}
	}

	hdc, _, _ := procGetDC.Call(0)
	if hdc == 0 {
		return 0, nil, fmt.Errorf("%w: no device context for %q", ErrUnavailable, deviceName)
	}
	return hdc, func() { _, _, _ = procReleaseDC.Call(0, hdc) }, nil
}
