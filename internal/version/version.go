// Package version holds build identity shown by the about command and logs.
package version

var (
	AppName     = "Guild Warden"
	AppFullName = "Guild Warden — command framework bot"
	Version     = "dev"
	BuildDate   = "unknown"
	GoVersion   = "unknown"
)
