//go:build !linux

package display

import (
	"errors"

	"github.com/kjkrol/gokev/internal/platform"
)

var errNoBackend = errors.New("display: no windowing backend on this platform, use Config.Headless")

func newPlatformWindow(conf platform.WindowConfig) (platform.Window, error) {
	return nil, errNoBackend
}
