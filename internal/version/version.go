package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X benv/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X benv/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X benv/internal/version.Date={{.Date}}
)
