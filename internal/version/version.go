package version

var (
	AppName        = "prefixkit"
	AppDescription = "Prefix command framework with a reference Discord bot"

	// Set at build time via ldflags.
	BuildDate string
	GoVersion string
)
