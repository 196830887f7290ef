package bubblegum

const (
	// Version of the bubblegum module.
	Version = "v0.1.0"

	// DBVersion is bumped on every change of the persisted schema.
	DBVersion = 1
)
