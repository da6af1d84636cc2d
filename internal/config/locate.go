package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the conventional configuration file name.
const FileName = "arch-config.json"

// Locations lists the paths probed under root, in priority order.
func Locations(root string) []string {
	return []string{
		filepath.Join(root, FileName),
		filepath.Join(root, ".config", FileName),
		filepath.Join(root, ".arch", FileName),
	}
}

// Locate returns the first existing configuration file under root.
func Locate(root string) (string, bool) {
	for _, p := range Locations(root) {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// WriteDefault writes the default configuration to path unless a file is
// already there. It reports whether a file was created.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	data, err := json.MarshalIndent(Default(), "", "    ")
	if err != nil {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}
	return true, nil
}
