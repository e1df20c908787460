// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: YAML-based settings storage (config/settings.yaml)
//   - Watch: change notifications for the settings file
package file
