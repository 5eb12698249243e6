// Package version holds the gitai build version.
package version

// Set at build time:
// go build -ldflags "-X gitai/internal/version.Version=1.0.0 -X gitai/internal/version.Commit=abc123"
var (
	Version   = "0.3.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns the version, with the short commit when one was stamped.
func Info() string {
	if Commit != "unknown" && len(Commit) > 7 {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Line returns the one-line banner printed by `gitai version`.
func Line() string {
	return "gitai version " + Info()
}

// Full returns the banner followed by commit and build date.
func Full() string {
	return Line() + "\n" +
		"Commit: " + Commit + "\n" +
		"Built: " + BuildDate
}
