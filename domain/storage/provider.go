package storage

// Provider supplies host-managed storage locations. It is an optional
// collaborator: a nil Provider means the hosting environment offers no
// managed storage, the process temp directory is used for working space,
// and managed destinations are unavailable.
type Provider interface {
	// TempDir returns the base directory for per-invocation working
	// directories.
	TempDir() string

	// OutputDir returns the managed output directory for finished
	// artifacts, and whether one is configured.
	OutputDir() (string, bool)
}
