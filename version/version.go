package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/philipparndt/go4dof/version.Version=..."
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info describes the running binary
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

// Get returns the build information, falling back to the module's VCS
// settings when no ldflags were given
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.Date == "" {
					info.Date = s.Value
				}
			}
		}
	}
	return info
}

func (i Info) String() string {
	s := fmt.Sprintf("go4dof %s", i.Version)
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		s += fmt.Sprintf(" (%s", commit)
		if i.Date != "" {
			s += ", " + i.Date
		}
		s += ")"
	}
	return s + fmt.Sprintf(" %s %s", i.GoVersion, i.Platform)
}
