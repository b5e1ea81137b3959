package realsense

import "fmt"

var (
	// Version is the wrapper's semantic version, populated at build time via
	// ldflags. In development it defaults to v0.0.0-in-progress.
	Version = "v0.0.0-in-progress"
)

// WrapperVersion returns the wrapper's semantic version.
func WrapperVersion() string {
	return Version
}

// LibraryVersion returns the linked librealsense2 version as
// "major.minor.patch". Returns ErrNotBuilt when the binary carries no native
// bindings.
func LibraryVersion() (string, error) {
	v, err := APIVersion()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%d.%d", v/10000, (v/100)%100, v%100), nil
}
