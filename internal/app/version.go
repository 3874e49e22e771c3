package app

import (
	"fmt"
	"log/slog"
)

// Set at link time, e.g.
//
//	go build -ldflags "-X github.com/medvault/medvault-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s+%s", Version, Commit)
}

// buildAttrs describes the binary in the startup log line.
func buildAttrs() slog.Attr {
	return slog.Group("build",
		slog.String("commit", Commit),
		slog.String("built_at", BuildTime),
	)
}
