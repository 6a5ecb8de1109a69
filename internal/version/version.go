package version

var (
	// Version is set via ldflags during build
	Version = "dev"
)

// Short returns the version string
func Short() string {
	return Version
}

// String returns the version prefixed for display in the header and CLI.
func String() string {
	return "storefront " + Version
}
