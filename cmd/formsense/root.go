// Command formsense runs the exercise-form analysis pipeline over a
// sequence of pose landmarks produced by an upstream detector.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anirbans/formsense/internal/config"
)

// Version is the application version.
const Version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:     "formsense",
	Short:   "Exercise form analysis from pose landmarks",
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration (defaults apply if omitted)")
}

// loadConfig resolves the effective configuration: the defaults when
// no file was given, else the file overlaid on the defaults. A broken
// configuration is fatal to the invocation.
func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configPath)
}

func execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
