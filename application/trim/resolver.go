package trim

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vidtrim/domain/storage"
	"vidtrim/domain/video"
)

// OutputKeyword is the explicit output value that targets the managed
// output directory directly.
const OutputKeyword = "output"

// managedSubdir is the subdirectory trims occupy inside the managed
// output directory when the save-to-managed flag is set.
const managedSubdir = "video_trim"

// ResolveDestination computes where the trimmed artifact will live.
//
// Precedence: the save-to-managed flag (when a managed directory is
// configured), then an explicit output path, then the working directory.
// The "output" keyword and the managed flag both degrade to ephemeral
// placement when no managed directory is available.
func ResolveDestination(provider storage.Provider, saveToManaged bool, outputPath, inputPath, workDir string) (video.Destination, error) {
	name := video.TrimmedFileName(inputPath)

	if saveToManaged {
		if dir, ok := managedOutputDir(provider); ok {
			path := filepath.Join(dir, managedSubdir, name)
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return video.Destination{}, fmt.Errorf("failed to create managed output directory: %w", err)
			}
			return video.Destination{Path: path, Kind: video.DestinationManaged}, nil
		}
	}

	if out := strings.TrimSpace(outputPath); out != "" {
		if out == OutputKeyword {
			if dir, ok := managedOutputDir(provider); ok {
				return video.Destination{Path: filepath.Join(dir, name), Kind: video.DestinationExplicit}, nil
			}
			// No managed directory configured; fall through to ephemeral.
		} else {
			abs, err := filepath.Abs(out)
			if err != nil {
				return video.Destination{}, fmt.Errorf("invalid output path %q: %w", out, err)
			}
			if info, err := os.Stat(abs); err == nil && info.IsDir() {
				return video.Destination{Path: filepath.Join(abs, name), Kind: video.DestinationExplicit}, nil
			}
			if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
				return video.Destination{}, fmt.Errorf("failed to create output directory: %w", err)
			}
			return video.Destination{Path: abs, Kind: video.DestinationExplicit}, nil
		}
	}

	return video.Destination{Path: filepath.Join(workDir, name), Kind: video.DestinationEphemeral}, nil
}

func managedOutputDir(provider storage.Provider) (string, bool) {
	if provider == nil {
		return "", false
	}
	dir, ok := provider.OutputDir()
	if !ok || dir == "" {
		return "", false
	}
	return dir, true
}
