package app

import "fmt"

// Version, Commit and BuildTime are set with ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/beetracker-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build info for startup logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
