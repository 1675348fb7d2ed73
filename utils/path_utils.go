package utils

import (
	"os"
	"path/filepath"
)

// GetBaseDir returns the directory of the executable. The settings file, the
// log file and the toolkit ini all live next to the binary.
func GetBaseDir() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exePath), nil
}
