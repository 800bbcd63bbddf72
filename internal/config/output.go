package config

// OutputFormat selects how games and results are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Board diagrams and move lists
	JSON                     // One JSON document per game
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies text or JSON output
	Format OutputFormat

	// ShowBoard prints the board after every move in text output
	ShowBoard bool

	// ShowLabels writes short move labels (Nf3, O-O) next to coordinates
	ShowLabels bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     Text,
		ShowLabels: true,
	}
}
