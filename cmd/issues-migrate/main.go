// Package main provides the command-line interface for issues-migrate.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/lerenn/issues-migrate/pkg/config"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// defaultConfigPath returns the configuration path used when -c is not
// given.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".issues-migrate", "config.yaml")
}

// loadConfig loads the configuration file. An explicitly given path must
// exist; the default path silently falls back to an empty configuration so
// a pure-flags invocation works without any file.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.NewManager().LoadConfig(configPath)
	}
	return config.LoadConfigWithFallback(defaultConfigPath())
}

func main() {
	rootCmd := createRootCmd()

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(createInitCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
