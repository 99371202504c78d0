package launcher

import (
	"fmt"
	"os"
	"path/filepath"

	"limeal.fr/vlauncher/pkg/utils"
)

// RuntimeArchives maps a managed-runtime major version to its download URL
// (Temurin Windows x64 zip archives).
var RuntimeArchives = map[int]string{
	8:  "https://github.com/adoptium/temurin8-binaries/releases/download/jdk8u442-b06/OpenJDK8U-jdk_x64_windows_hotspot_8u442b06.zip",
	16: "https://github.com/adoptium/temurin16-binaries/releases/download/jdk-16.0.2%2B7/OpenJDK16U-jdk_x64_windows_hotspot_16.0.2_7.zip",
	17: "https://github.com/adoptium/temurin17-binaries/releases/download/jdk-17.0.14%2B7/OpenJDK17U-jdk_x64_windows_hotspot_17.0.14_7.zip",
	21: "https://github.com/adoptium/temurin21-binaries/releases/download/jdk-21.0.6%2B7/OpenJDK21U-jdk_x64_windows_hotspot_21.0.6_7.zip",
}

// RuntimeProvisioner downloads and unpacks a managed runtime so a launch
// never depends on a pre-installed one.
type RuntimeProvisioner struct {
	Fetcher  *Fetcher
	Root     string
	Platform Platform

	// Archives overrides RuntimeArchives when set (tests, custom mirrors).
	Archives map[int]string
}

func (p *RuntimeProvisioner) archives() map[int]string {
	if p.Archives != nil {
		return p.Archives
	}
	return RuntimeArchives
}

// ArchiveURL returns the download URL for the given major version.
func (p *RuntimeProvisioner) ArchiveURL(major int) (string, error) {
	url, ok := p.archives()[major]
	if !ok {
		return "", &RuntimeProvisionError{Major: major, Err: fmt.Errorf("no archive for major version %d", major)}
	}
	return url, nil
}

// Provision fetches and extracts the runtime archive for major, then locates
// the runtime executable by scanning one level of extracted directories for
// a bin subdirectory. An empty path with a nil error means no binary was
// found and the caller should fall back to an executable on the PATH.
func (p *RuntimeProvisioner) Provision(major int) (string, error) {
	url, err := p.ArchiveURL(major)
	if err != nil {
		return "", err
	}

	archive := filepath.Join(p.Root, "runtime", fmt.Sprintf("jdk-%d.zip", major))
	if _, err := p.Fetcher.FetchCached(archive, url, -1, ""); err != nil {
		return "", &RuntimeProvisionError{Major: major, Err: err}
	}

	dest := filepath.Join(p.Root, "runtime", fmt.Sprintf("jdk-%d", major))
	if err := utils.ExtractZip(archive, dest); err != nil {
		return "", &RuntimeProvisionError{Major: major, Err: err}
	}

	return p.locateBinary(dest), nil
}

func (p *RuntimeProvisioner) locateBinary(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	binary := p.Platform.JavaBinaryName()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(dir, entry.Name(), "bin", binary)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
