// Package settings provides build metadata, runtime configuration, and
// context helpers used across the termfolio CLI.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "termfolio"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration settings for a single execution of the application.
type Run struct {
	MinLogLevel int8
	// LogFile receives structured logs; empty means the default sink for the
	// command (discarded for the interactive console, stderr otherwise).
	LogFile string
	// ContentPath is the content file given on the command line, if any.
	ContentPath string
	// Interactive is true when the console owns the terminal.
	Interactive bool
	NoColor     bool
}

// NewCliParams initializes and returns a pointer to a Run struct with default
// CLI parameters: info level logging, color on, interactive console.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Interactive: true,
		NoColor:     false,
	}
}
