package nova402

import "fmt"

// Library version.
const (
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// X402Version is the supported x402 protocol version.
const X402Version = 1

// Version returns the library version as a "major.minor.patch" string.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
