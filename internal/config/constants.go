package config

// Default locations of the clippings file
const (
	// DefaultClippingsPath is where a mounted Kindle exposes its clippings on macOS
	DefaultClippingsPath = "/Volumes/Kindle/documents/My Clippings.txt"

	// DefaultOutputFormat is the format used by the parse command
	DefaultOutputFormat = OutputFormatText
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)
