package ir

// Version constants for the IR schema and the engine that produces it.
const (
	// IRVersion is the mutation-record schema version.
	IRVersion = "1"

	// EngineVersion is the schedule engine version.
	EngineVersion = "0.1.0"
)
