package filesystem

import "vidtrim/domain/storage"

// DirProvider implements storage.Provider over plain directories, typically
// taken from configuration.
type DirProvider struct {
	Temp   string
	Output string
}

// TempDir returns the base directory for working directories. Empty means
// the process temp directory.
func (p *DirProvider) TempDir() string {
	return p.Temp
}

// OutputDir returns the managed output directory, if one is configured.
func (p *DirProvider) OutputDir() (string, bool) {
	if p.Output == "" {
		return "", false
	}
	return p.Output, true
}

// Ensure DirProvider implements storage.Provider
var _ storage.Provider = (*DirProvider)(nil)
