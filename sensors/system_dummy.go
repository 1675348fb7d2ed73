//go:build !windows

package sensors

import "fmt"

// SystemModel is not available off Windows.
func SystemModel() (string, error) {
	return "", fmt.Errorf("WMI is only available on Windows")
}
