package toggle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nv-tools/nvcp-toggle/internal/config"
	gdimocks "github.com/nv-tools/nvcp-toggle/internal/gdi/mocks"
	"github.com/nv-tools/nvcp-toggle/internal/nvapi"
	nvapimocks "github.com/nv-tools/nvcp-toggle/internal/nvapi/mocks"
	"github.com/nv-tools/nvcp-toggle/internal/ramp"
	"github.com/nv-tools/nvcp-toggle/internal/toggle"
	"github.com/nv-tools/nvcp-toggle/internal/vibrance"
)

var testDisplay = nvapi.Display{Handle: 1, Name: `\\.\DISPLAY1`}

func customTable(cfg config.Config) ramp.Table {
	return ramp.Build(ramp.Adjustment{
		Brightness:  cfg.Brightness,
		Contrast:    cfg.Contrast,
		Gamma:       cfg.Gamma,
		Temperature: cfg.Temperature,
	})
}

func TestState_IsDefault(t *testing.T) {
	tests := []struct {
		name     string
		state    toggle.State
		expected bool
	}{
		{
			name: "everything neutral",
			state: toggle.State{
				Vibrance:    vibrance.Level{Current: 0, Max: 63},
				Hue:         0,
				NeutralRamp: true,
			},
			expected: true,
		},
		{
			name: "vibrance one step off is still default",
			state: toggle.State{
				Vibrance:    vibrance.Level{Current: 1, Max: 63},
				NeutralRamp: true,
			},
			expected: true,
		},
		{
			name: "vibrance two steps off is custom",
			state: toggle.State{
				Vibrance:    vibrance.Level{Current: 2, Max: 63},
				NeutralRamp: true,
			},
			expected: false,
		},
		{
			name: "nonzero hue is custom",
			state: toggle.State{
				Vibrance:    vibrance.Level{Current: 0, Max: 63},
				Hue:         7,
				NeutralRamp: true,
			},
			expected: false,
		},
		{
			name: "non-neutral ramp is custom",
			state: toggle.State{
				Vibrance:    vibrance.Level{Current: 0, Max: 63},
				NeutralRamp: false,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.IsDefault())
		})
	}
}

func TestToggleDisplay_AppliesCustomWhenAtDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	driver.EXPECT().GetVibrance(testDisplay).Return(vibrance.Level{Current: 0, Min: 0, Max: 63}, nil)
	driver.EXPECT().GetHue(testDisplay).Return(0, nil)
	ramps.EXPECT().ReadTable(testDisplay.Name).Return(ramp.Build(ramp.Neutral()), nil)

	// 80% on the 0-63 range is raw level 37.
	driver.EXPECT().SetVibrance(testDisplay, 37).Return(nil)
	driver.EXPECT().SetHue(testDisplay, cfg.Hue).Return(nil)
	ramps.EXPECT().WriteTable(testDisplay.Name, customTable(cfg)).Return(nil)

	active := toggle.NewToggler(driver, ramps, cfg).ToggleDisplay(testDisplay)
	assert.True(t, active)
}

func TestToggleDisplay_RestoresDefaultsWhenCustomized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	driver.EXPECT().GetVibrance(testDisplay).Return(vibrance.Level{Current: 37, Min: 0, Max: 63}, nil)
	driver.EXPECT().GetHue(testDisplay).Return(cfg.Hue, nil)
	ramps.EXPECT().ReadTable(testDisplay.Name).Return(customTable(cfg), nil)

	driver.EXPECT().SetVibrance(testDisplay, 0).Return(nil)
	driver.EXPECT().SetHue(testDisplay, 0).Return(nil)
	ramps.EXPECT().WriteTable(testDisplay.Name, ramp.Build(ramp.Neutral())).Return(nil)

	active := toggle.NewToggler(driver, ramps, cfg).ToggleDisplay(testDisplay)
	assert.False(t, active)
}

func TestToggleDisplay_UnreadableRampCountsAsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	driver.EXPECT().GetVibrance(testDisplay).Return(vibrance.Level{Current: 0, Min: 0, Max: 63}, nil)
	driver.EXPECT().GetHue(testDisplay).Return(0, nil)
	ramps.EXPECT().ReadTable(testDisplay.Name).Return(ramp.Table{}, errors.New("read failed"))

	driver.EXPECT().SetVibrance(testDisplay, 37).Return(nil)
	driver.EXPECT().SetHue(testDisplay, cfg.Hue).Return(nil)
	ramps.EXPECT().WriteTable(testDisplay.Name, customTable(cfg)).Return(nil)

	active := toggle.NewToggler(driver, ramps, cfg).ToggleDisplay(testDisplay)
	assert.True(t, active)
}

func TestToggleDisplay_DriverQueryFailuresFallBackToNeutral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	// A display whose driver refuses both queries is indistinguishable
	// from one at its defaults, so the custom look gets applied using the
	// fallback vibrance range.
	driver.EXPECT().GetVibrance(testDisplay).Return(vibrance.Level{}, errors.New("query failed"))
	driver.EXPECT().GetHue(testDisplay).Return(0, errors.New("query failed"))
	ramps.EXPECT().ReadTable(testDisplay.Name).Return(ramp.Build(ramp.Neutral()), nil)

	driver.EXPECT().SetVibrance(testDisplay, 37).Return(nil)
	driver.EXPECT().SetHue(testDisplay, cfg.Hue).Return(nil)
	ramps.EXPECT().WriteTable(testDisplay.Name, customTable(cfg)).Return(nil)

	active := toggle.NewToggler(driver, ramps, cfg).ToggleDisplay(testDisplay)
	assert.True(t, active)
}

func TestToggleDisplay_SetFailuresAreNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	driver.EXPECT().GetVibrance(testDisplay).Return(vibrance.Level{Current: 0, Max: 63}, nil)
	driver.EXPECT().GetHue(testDisplay).Return(0, nil)
	ramps.EXPECT().ReadTable(testDisplay.Name).Return(ramp.Build(ramp.Neutral()), nil)

	driver.EXPECT().SetVibrance(testDisplay, 37).Return(errors.New("set failed"))
	driver.EXPECT().SetHue(testDisplay, cfg.Hue).Return(errors.New("set failed"))
	ramps.EXPECT().WriteTable(testDisplay.Name, customTable(cfg)).Return(errors.New("write failed"))

	active := toggle.NewToggler(driver, ramps, cfg).ToggleDisplay(testDisplay)
	assert.True(t, active)
}

func TestRun_TogglesOnlyFirstDisplayByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	first := nvapi.Display{Handle: 1, Name: `\\.\DISPLAY1`}
	second := nvapi.Display{Handle: 2, Name: `\\.\DISPLAY2`}
	driver.EXPECT().EnumDisplays().Return([]nvapi.Display{first, second}, nil)

	driver.EXPECT().GetVibrance(first).Return(vibrance.Level{Current: 0, Max: 63}, nil)
	driver.EXPECT().GetHue(first).Return(0, nil)
	ramps.EXPECT().ReadTable(first.Name).Return(ramp.Build(ramp.Neutral()), nil)
	driver.EXPECT().SetVibrance(first, 37).Return(nil)
	driver.EXPECT().SetHue(first, cfg.Hue).Return(nil)
	ramps.EXPECT().WriteTable(first.Name, customTable(cfg)).Return(nil)

	require.NoError(t, toggle.NewToggler(driver, ramps, cfg).Run())
}

func TestRun_TogglesEveryDisplayWhenConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	cfg.ToggleAllDisplays = true
	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	displays := []nvapi.Display{
		{Handle: 1, Name: `\\.\DISPLAY1`},
		{Handle: 2, Name: `\\.\DISPLAY2`},
	}
	driver.EXPECT().EnumDisplays().Return(displays, nil)

	for _, d := range displays {
		driver.EXPECT().GetVibrance(d).Return(vibrance.Level{Current: 0, Max: 63}, nil)
		driver.EXPECT().GetHue(d).Return(0, nil)
		ramps.EXPECT().ReadTable(d.Name).Return(ramp.Build(ramp.Neutral()), nil)
		driver.EXPECT().SetVibrance(d, 37).Return(nil)
		driver.EXPECT().SetHue(d, cfg.Hue).Return(nil)
		ramps.EXPECT().WriteTable(d.Name, customTable(cfg)).Return(nil)
	}

	require.NoError(t, toggle.NewToggler(driver, ramps, cfg).Run())
}

func TestRun_EnumerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	driver.EXPECT().EnumDisplays().Return(nil, errors.New("driver gone"))

	err := toggle.NewToggler(driver, ramps, config.Default()).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerate")
}

func TestRun_NoDisplays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	driver.EXPECT().EnumDisplays().Return([]nvapi.Display{}, nil)

	err := toggle.NewToggler(driver, ramps, config.Default()).Run()
	require.Error(t, err)
}

func TestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.Default()
	driver := nvapimocks.NewMockDriver(ctrl)
	ramps := gdimocks.NewMockRampController(ctrl)

	defaulted := nvapi.Display{Handle: 1, Name: `\\.\DISPLAY1`}
	customized := nvapi.Display{Handle: 2, Name: `\\.\DISPLAY2`}
	driver.EXPECT().EnumDisplays().Return([]nvapi.Display{defaulted, customized}, nil)

	driver.EXPECT().GetVibrance(defaulted).Return(vibrance.Level{Current: 0, Max: 63}, nil)
	driver.EXPECT().GetHue(defaulted).Return(0, nil)
	ramps.EXPECT().ReadTable(defaulted.Name).Return(ramp.Build(ramp.Neutral()), nil)

	driver.EXPECT().GetVibrance(customized).Return(vibrance.Level{Current: 37, Max: 63}, nil)
	driver.EXPECT().GetHue(customized).Return(cfg.Hue, nil)
	ramps.EXPECT().ReadTable(customized.Name).Return(customTable(cfg), nil)

	statuses, err := toggle.NewToggler(driver, ramps, cfg).Status()
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, toggle.DisplayStatus{
		Name:        defaulted.Name,
		VibrancePct: 50,
		Hue:         0,
		AtDefault:   true,
	}, statuses[0])

	assert.Equal(t, toggle.DisplayStatus{
		Name:        customized.Name,
		VibrancePct: 79, // 37 of 63 truncates to 79%
		Hue:         cfg.Hue,
		AtDefault:   false,
	}, statuses[1])
}
