// Package version reports build information for the shuffle binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version of the application
	Version = "dev"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"

	// BuildTime is the time when the binary was built (RFC3339 format)
	BuildTime = "unknown"
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildTime string `json:"build_time,omitempty" yaml:"build_time,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// GetBuildInfo returns comprehensive build information
func GetBuildInfo() *BuildInfo {
	info := &BuildInfo{
		Version:   GetVersion(),
		GitCommit: GetGitCommit(),
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if BuildTime != "unknown" {
		info.BuildTime = BuildTime
	}
	return info
}

// GetVersion returns the application version, falling back to module build
// information when no version was injected.
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return "dev"
}

// GetGitCommit returns the git commit hash
func GetGitCommit() string {
	if GitCommit != "" && GitCommit != "unknown" {
		return GitCommit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}

// GetShortVersion returns a short version string suitable for display
func GetShortVersion() string {
	v := GetVersion()
	commit := GetGitCommit()

	if commit != "unknown" && len(commit) >= 7 {
		if v != "dev" {
			return fmt.Sprintf("%s (%s)", v, commit[:7])
		}
		return fmt.Sprintf("dev-%s", commit[:7])
	}

	return v
}

// String renders the build information one field per line.
func (b *BuildInfo) String() string {
	parts := []string{fmt.Sprintf("Version: %s", b.Version)}
	if b.GitCommit != "unknown" {
		parts = append(parts, fmt.Sprintf("Commit: %s", b.GitCommit))
	}
	if b.BuildTime != "" {
		parts = append(parts, fmt.Sprintf("Built: %s", b.BuildTime))
	}
	parts = append(parts,
		fmt.Sprintf("Go: %s", b.GoVersion),
		fmt.Sprintf("Platform: %s", b.Platform),
	)
	return strings.Join(parts, "\n")
}
