// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for the API service
func Info() BuildInfo { return InfoFor("hitch-api") }

// InfoFor returns the build information under a different service name (the CLI uses "hitch")
// The version, commit, and date variables are set at build time using -ldflags:
// -X 'hitch/internal/core/version.version=v0.1.0' -X 'hitch/internal/core/version.commit=abcd'
func InfoFor(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
