package version

import "fmt"

// These variables are set at build time via ldflags, e.g.
//
//	-X github.com/example/textkit/internal/version.Version=v1.2.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string for the named command.
func String(command string) string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", command, Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
