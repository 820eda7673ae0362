package exitcode

// Exit codes for the remotefile CLI.
// Schedulers can use these to decide whether a retry makes sense.
const (
	// Success - every file was uploaded
	Success = 0

	// ConfigError - missing or invalid configuration, including an
	// unresolvable prefix formatter
	// Don't retry: fix the config first
	ConfigError = 1

	// InputError - a local file could not be opened or read
	// Don't retry: check the paths passed on the command line
	InputError = 2

	// StorageError - failed to reach or write to MinIO/S3
	// Retry with backoff
	StorageError = 4
)
