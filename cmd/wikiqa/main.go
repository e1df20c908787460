// Command wikiqa is the Wiki-QA command line interface.
//
// It wires the settings stores, backend probes and services together and
// hands them to the cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/backend"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/config/env"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wikiqa-cli/internal/core/services"
	"github.com/custodia-labs/wikiqa-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// configEnvVar names the variable that selects the settings file.
const configEnvVar = env.Prefix + "_CONFIG"

// memoryConfigPath selects an in-memory store that is never written to disk.
const memoryConfigPath = "-"

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.Sync() //nolint:errcheck

	logger.SetRunID(uuid.NewString())

	if err := env.LoadDotEnv(""); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if err := cli.Execute(version, bootstrap); err != nil {
		return 1
	}
	return 0
}

// bootstrap builds the services used by every command.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	path := resolveConfigPath(opts.ConfigPath)

	var (
		store driven.ConfigStore
		watch cli.WatchFunc
	)
	if path == memoryConfigPath {
		store = memory.NewConfigStore()
	} else {
		fileStore, err := file.NewConfigStore(path)
		if err != nil {
			return nil, err
		}
		store = fileStore
		watch = file.Watch
	}
	logger.Debug("Settings file: %s", store.Path())

	settings := services.NewSettingsService(env.NewOverlay(store))
	status := services.NewStatusService(settings, backend.NewFactory())

	return &cli.Services{
		Settings: settings,
		Status:   status,
		Watch:    watch,
	}, nil
}

// resolveConfigPath picks the flag value, then the environment, then the default.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(configEnvVar); v != "" {
		return v
	}
	return file.DefaultPath
}
