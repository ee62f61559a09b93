//go:build linux

package display

import "github.com/kjkrol/gokev/internal/platform"

func newPlatformWindow(conf platform.WindowConfig) (platform.Window, error) {
	return platform.NewWindow(conf)
}
