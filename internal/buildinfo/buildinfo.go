// Package buildinfo carries values stamped at link time, e.g.
//
//	go build -ldflags "-X robotscene/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "github.com/rs/zerolog"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for titles and log lines.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Info is the build identity as a zerolog object.
type Info struct{}

func (Info) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", Version).Str("commit", Commit).Str("date", Date)
}
