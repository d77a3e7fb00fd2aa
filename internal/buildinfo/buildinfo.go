// Package buildinfo carries version metadata injected at build time via
// -ldflags "-X github.com/jobtechradar/radar/internal/buildinfo.Version=..."
package buildinfo

import "fmt"

var (
	Version = "N/A"
	Date    = "N/A"
)

// Banner returns a one-line description of the build.
func Banner() string {
	return fmt.Sprintf("radar %s (built %s)", Version, Date)
}
