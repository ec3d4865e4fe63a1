// Package version carries build metadata set through -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time, e.g. -X github.com/grovetools/svcman/version.Version=v0.3.0.
var (
	Version   = "dev"
	Commit    = "none"
	Branch    = "unknown"
	BuildDate = "unknown"
)

// Info holds the build information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build information of the running binary.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Branch:    Branch,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	return fmt.Sprintf(
		"  Commit:     %s\n  Branch:     %s\n  Built:      %s\n  Go:         %s\n  Platform:   %s",
		i.Commit, i.Branch, i.BuildDate, i.GoVersion, i.Platform,
	)
}
