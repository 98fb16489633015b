// Package buildinfo holds values stamped at link time with
// -ldflags "-X github.com/aalvaropc/djbhash/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("djbhash %s (commit=%s, date=%s)", Version, Commit, Date)
}
