package emit

import (
	"fmt"
	"strings"
)

// Backend names the graphics API the header is generated for.
//
// Both backends currently produce identical output; the selector is kept so
// that build scripts already passing it keep working and so that backend
// specific output can be added without changing the CLI.
type Backend uint8

const (
	Vulkan Backend = iota + 1
	OpenGL
)

func (b Backend) String() string {
	switch b {
	case Vulkan:
		return "vulkan"
	case OpenGL:
		return "opengl"
	default:
		return "unknown"
	}
}

// ParseBackend converts a flag or config value to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vulkan":
		return Vulkan, nil
	case "opengl":
		return OpenGL, nil
	default:
		return 0, fmt.Errorf("unsupported backend %q (must be vulkan or opengl)", s)
	}
}
