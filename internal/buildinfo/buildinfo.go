package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/fairyhunter13/schema-docs-server/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("schema-docs-server %s (commit=%s, date=%s)", Version, Commit, Date)
}
