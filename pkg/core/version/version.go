package version

// Version constants for the application and its components
const (
	// Application version
	App = "1.0.0"

	// Component versions
	Core   = "1.0.0"
	TUI    = "1.0.0"
	Server = "1.0.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "core":
		return Core
	case "tui":
		return TUI
	case "server":
		return Server
	default:
		return App
	}
}
