package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo is the linker-injected metadata of a cipher-chat binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Lines renders the info the way the server prints it at startup.
func (a AppBuildInfo) Lines() []string {
	return []string{
		"Build version: " + a.Version,
		"Build date: " + a.Date,
		"Build commit: " + a.Commit,
	}
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", a.Version, a.Date, a.Commit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
