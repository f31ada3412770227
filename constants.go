package jsondoc

const (
	// Addressing
	DefaultDelimiter = "."

	// Operation Limits
	DefaultMaxJSONSize = 10 * 1024 * 1024
	MaxMergeDepth      = 100
	MaxNestingDepth    = 1000
	MaxFilePathLength  = 4096

	// Encoding
	DefaultIndent      = "    "
	DefaultPrettyWidth = 80

	// Loading
	DefaultFileFilter = `(?i)\.json$`
	DefaultFileMode   = 0o644
	DefaultDirMode    = 0o755
)
