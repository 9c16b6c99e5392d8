// Package version holds build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/ai-rd1/website/internal/version.Version=1.2.0"
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	// BuildTime is RFC 3339.
	BuildTime = "unknown"
)

// VersionInfo is reported by /health and `leadctl version`.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

func Info() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

// String is "1.2.0 (abc1234)", or just the version when the commit is unknown.
func (v VersionInfo) String() string {
	if v.GitCommit == "" || v.GitCommit == "unknown" {
		return v.Version
	}
	return v.Version + " (" + v.GitCommit + ")"
}
