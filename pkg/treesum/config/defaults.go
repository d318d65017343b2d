package config

// Default configuration values.
const (
	// DefaultAlgorithm is the digest algorithm used when none is configured.
	DefaultAlgorithm = "sha256"

	// DefaultExtension is the manifest file extension for create mode.
	DefaultExtension = "treesum"

	// DefaultWorkers of 0 means one hashing worker per CPU.
	DefaultWorkers = 0

	// DefaultFormat is the report output format.
	DefaultFormat = "text"

	// DefaultLogLevel keeps the CLI quiet unless something is wrong.
	DefaultLogLevel = "warn"
)

// DefaultExclusions is empty: an integrity checker that silently skips
// files defeats its purpose, so exclusions are strictly opt-in.
var DefaultExclusions = []string{}
