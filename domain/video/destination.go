package video

// DestinationKind classifies where a trimmed artifact lands. It drives the
// working-directory disposal decision after the trim completes.
type DestinationKind int

const (
	// DestinationEphemeral places the artifact inside the invocation's
	// working directory; the directory is retained so the artifact survives.
	DestinationEphemeral DestinationKind = iota

	// DestinationExplicit places the artifact at a caller-supplied path.
	DestinationExplicit

	// DestinationManaged places the artifact under the managed output
	// directory supplied by the storage provider.
	DestinationManaged
)

// String returns a human-readable name for the destination kind.
func (k DestinationKind) String() string {
	switch k {
	case DestinationExplicit:
		return "explicit"
	case DestinationManaged:
		return "managed"
	default:
		return "ephemeral"
	}
}

// Destination is a resolved output location for a trimmed video.
type Destination struct {
	Path string
	Kind DestinationKind
}
