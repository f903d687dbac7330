// Package main provides the entry point for the nvcp-toggle utility.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nv-tools/nvcp-toggle/internal/config"
	"github.com/nv-tools/nvcp-toggle/internal/gdi"
	"github.com/nv-tools/nvcp-toggle/internal/nvapi"
	"github.com/nv-tools/nvcp-toggle/internal/toggle"
)

var (
	verbose    bool
	configPath string

	rootCmd = &cobra.Command{
		Use:   "nvcp-toggle",
		Short: "Toggle NVIDIA display color settings between default and custom",
		Long: `nvcp-toggle flips an NVIDIA-driven display between its default color
state and a configured custom look: digital vibrance, hue angle, and a
brightness/contrast/gamma/temperature gamma ramp.

Run it once to apply the custom look, run it again to restore the
defaults. The current state is detected automatically, so the tool works
well bound to a hotkey.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show the current color state of each display",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file")
	rootCmd.AddCommand(statusCmd)
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func loadConfig() config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

func run() error {
	setupLogging()
	cfg := loadConfig()

	driver := nvapi.NewDriver()
	if err := driver.Init(); err != nil {
		log.Error().Err(err).Msg("Unable to initialize NVIDIA driver")
		waitForKey(cfg)
		return err
	}
	defer unloadDriver(driver)

	t := toggle.NewToggler(driver, gdi.NewController(), cfg)
	if err := t.Run(); err != nil {
		log.Error().Err(err).Msg("Toggle failed")
		waitForKey(cfg)
		return err
	}

	waitForKey(cfg)
	return nil
}

func runStatus() error {
	setupLogging()
	cfg := loadConfig()

	driver := nvapi.NewDriver()
	if err := driver.Init(); err != nil {
		log.Error().Err(err).Msg("Unable to initialize NVIDIA driver")
		return err
	}
	defer unloadDriver(driver)

	t := toggle.NewToggler(driver, gdi.NewController(), cfg)
	statuses, err := t.Status()
	if err != nil {
		log.Error().Err(err).Msg("Status query failed")
		return err
	}

	for _, s := range statuses {
		state := "custom"
		if s.AtDefault {
			state = "default"
		}
		fmt.Printf("%s: vibrance %d%%, hue %d (%s)\n", s.Name, s.VibrancePct, s.Hue, state)
	}
	return nil
}

func unloadDriver(driver nvapi.Driver) {
	if err := driver.Unload(); err != nil {
		log.Warn().Err(err).Msg("Failed to unload NVIDIA driver")
	}
}

// waitForKey blocks until Enter is pressed when the config asks for it, so
// a console window opened by a hotkey stays readable before it closes.
func waitForKey(cfg config.Config) {
	if !cfg.KeyPressToExit {
		return
	}
	fmt.Println("\nPress Enter to exit...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
