package launcher

import (
	"fmt"
	"os"
	"path/filepath"

	"limeal.fr/vlauncher/pkg/utils"
)

// NativesExtractor stages the contents of native jars in a process-scoped
// temporary directory whose path is substituted into ${natives_directory}.
// The directory lives for the whole process; it is not cleaned mid-run.
type NativesExtractor struct {
	Platform Platform

	stagingDir string
}

func NewNativesExtractor(platform Platform) (*NativesExtractor, error) {
	dir, err := os.MkdirTemp("", "vlauncher-")
	if err != nil {
		return nil, fmt.Errorf("failed to create natives staging directory: %w", err)
	}

	staging := filepath.Join(dir, "natives")
	if err := os.MkdirAll(staging, 0755); err != nil {
		return nil, fmt.Errorf("failed to create natives staging directory: %w", err)
	}

	return &NativesExtractor{Platform: platform, stagingDir: staging}, nil
}

func (n *NativesExtractor) StagingDir() string {
	return n.stagingDir
}

// Extract copies every native jar into the staging directory and unpacks
// only entries with the platform's native-library extension, overwriting on
// conflict. Returns the staging directory path.
func (n *NativesExtractor) Extract(nativeJars []string) (string, error) {
	for _, jar := range nativeJars {
		staged := filepath.Join(n.stagingDir, filepath.Base(jar))
		if err := utils.CopyFile(jar, staged); err != nil {
			return "", fmt.Errorf("failed to stage native jar %s: %w", jar, err)
		}
		if err := utils.ExtractZip(staged, n.stagingDir, n.Platform.NativeExtension()); err != nil {
			return "", fmt.Errorf("failed to extract natives from %s: %w", jar, err)
		}
	}
	return n.stagingDir, nil
}
