// SPDX-License-Identifier: GPL-3.0-only

//go:build windows

package nvapi

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/nv-tools/nvcp-toggle/internal/vibrance"
)

// Entry point IDs resolved through nvapi_QueryInterface. The digital
// vibrance and hue functions are undocumented; their IDs come from the
// NvAPIWrapper project.
const (
	idInitialize  = 0x0150E828
	idUnload      = 0xD22BDD7E
	idEnumDisplay = 0x9ABDD40D
	idDisplayName = 0x22A78B05
	idGetDVCInfo  = 0x4085DE45
	idSetDVCLevel = 0x172409B4
	idGetHUEInfo  = 0x95B64341
	idSetHUEAngle = 0xF5A0F22C
)

// statusOK is the NVAPI success status.
const statusOK uintptr = 0

// shortStringLen matches NvAPI_ShortString.
const shortStringLen = 64

// dvcInfo mirrors NV_GPU_DVC_INFO_V1.
type dvcInfo struct {
	version int32
	current int32
	min     int32
	max     int32
}

// hueInfo mirrors NV_GPU_HUE_INFO_V1.
type hueInfo struct {
	version      int32
	currentAngle int32
	defaultAngle int32
}

// structVersion builds the version tag NVAPI expects in versioned structs:
// the struct size in the low 16 bits, the version number above it.
func structVersion(size uintptr, version int32) int32 {
	return int32(size) | version<<16
}

// NativeDriver implements Driver on top of nvapi64.dll. Entry points are
// resolved once in Init; the undocumented ones may be missing on older
// drivers, in which case the corresponding calls fail and callers fall
// back to their neutral values.
type NativeDriver struct {
	dll            *windows.LazyDLL
	queryInterface *windows.LazyProc

	initialize  uintptr
	unload      uintptr
	enumDisplay uintptr
	displayName uintptr
	getDVCInfo  uintptr
	setDVCLevel uintptr
	getHUEInfo  uintptr
	setHUEAngle uintptr
}

// Verify NativeDriver implements Driver.
var _ Driver = (*NativeDriver)(nil)

// NewDriver returns a Driver backed by the NVIDIA driver library.
func NewDriver() Driver {
	return &NativeDriver{dll: windows.NewLazySystemDLL("nvapi64.dll")}
}

// Init loads nvapi64.dll, resolves the entry points and initializes the
// library. Failure here means no NVIDIA driver is usable on this machine.
func (d *NativeDriver) Init() error {
	if err := d.dll.Load(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	d.queryInterface = d.dll.NewProc("nvapi_QueryInterface")
	if err := d.queryInterface.Find(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	d.initialize = d.query(idInitialize)
	d.unload = d.query(idUnload)
	d.enumDisplay = d.query(idEnumDisplay)
	d.displayName = d.query(idDisplayName)
	if d.initialize == 0 || d.enumDisplay == 0 {
		return fmt.Errorf("%w: core entry points not exported", ErrUnavailable)
	}

	if status, _, _ := syscall.SyscallN(d.initialize); status != statusOK {
		return fmt.Errorf("%w: initialize returned status %d", ErrUnavailable, status)
	}

	// Vibrance and hue control degrade gracefully when these are missing.
	d.getDVCInfo = d.query(idGetDVCInfo)
	d.setDVCLevel = d.query(idSetDVCLevel)
	d.getHUEInfo = d.query(idGetHUEInfo)
	d.setHUEAngle = d.query(idSetHUEAngle)

	return nil
}

// Unload releases the vendor library.
func (d *NativeDriver) Unload() error {
	if d.unload == 0 {
		return nil
	}
	if status, _, _ := syscall.SyscallN(d.unload); status != statusOK {
		return fmt.Errorf("unload returned status %d", status)
	}
	return nil
}

// EnumDisplays lists the NVIDIA displays together with their OS device
// names. Displays whose name cannot be queried get a positional fallback.
func (d *NativeDriver) EnumDisplays() ([]Display, error) {
	var displays []Display
	for i := 0; ; i++ {
		var handle uintptr
		status, _, _ := syscall.SyscallN(d.enumDisplay, uintptr(i), uintptr(unsafe.Pointer(&handle)))
		if status != statusOK {
			break
		}

		name := d.associatedName(handle)
		if name == "" {
			name = fmt.Sprintf("Display %d", i)
		}
		displays = append(displays, Display{Handle: handle, Name: name})
	}
	if len(displays) == 0 {
		return nil, fmt.Errorf("no NVIDIA display found")
	}
	return displays, nil
}

func (d *NativeDriver) associatedName(handle uintptr) string {
	if d.displayName == 0 {
		return ""
	}
	var buf [shortStringLen]byte
	status, _, _ := syscall.SyscallN(d.displayName, handle, uintptr(unsafe.Pointer(&buf[0])))
	if status != statusOK {
		return ""
	}
	return windows.ByteSliceToString(buf[:])
}

// GetVibrance reports the current digital vibrance level and its range.
func (d *NativeDriver) GetVibrance(disp Display) (vibrance.Level, error) {
	if d.getDVCInfo == 0 {
		return vibrance.Level{}, fmt.Errorf("GetDVCInfo entry point not exported")
	}

	info := dvcInfo{version: structVersion(unsafe.Sizeof(dvcInfo{}), 1)}
	status, _, _ := syscall.SyscallN(d.getDVCInfo, disp.Handle, 0, uintptr(unsafe.Pointer(&info)))
	if status != statusOK {
		return vibrance.Level{}, fmt.Errorf("GetDVCInfo returned status %d", status)
	}

	return vibrance.Level{
		Current: int(info.current),
		Min:     int(info.min),
		Max:     int(info.max),
	}, nil
}

// SetVibrance sets the raw digital vibrance level.
func (d *NativeDriver) SetVibrance(disp Display, raw int) error {
	if d.setDVCLevel == 0 {
		return fmt.Errorf("SetDVCLevel entry point not exported")
	}
	status, _, _ := syscall.SyscallN(d.setDVCLevel, disp.Handle, 0, uintptr(raw))
	if status != statusOK {
		return fmt.Errorf("SetDVCLevel returned status %d", status)
	}
	return nil
}

// GetHue reports the current hue angle.
func (d *NativeDriver) GetHue(disp Display) (int, error) {
	if d.getHUEInfo == 0 {
		return 0, fmt.Errorf("GetHUEInfo entry point not exported")
	}

	info := hueInfo{version: structVersion(unsafe.Sizeof(hueInfo{}), 1)}
	status, _, _ := syscall.SyscallN(d.getHUEInfo, disp.Handle, 0, uintptr(unsafe.Pointer(&info)))
	if status != statusOK {
		return 0, fmt.Errorf("GetHUEInfo returned status %d", status)
	}
	return int(info.currentAngle), nil
}

// SetHue sets the hue angle.
func (d *NativeDriver) SetHue(disp Display, angle int) error {
	if d.setHUEAngle == 0 {
		return fmt.Errorf("SetHUEAngle entry point not exported")
	}
	status, _, _ := syscall.SyscallN(d.setHUEAngle, disp.Handle, 0, uintptr(angle))
	if status != statusOK {
		return fmt.Errorf("SetHUEAngle returned status %d", status)
	}
	return nil
}

func (d *NativeDriver) query(id uint32) uintptr {
	addr, _, _ := d.queryInterface.Call(uintptr(id))
	return addr
}
