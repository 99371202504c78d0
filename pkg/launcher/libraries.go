package launcher

import (
	"path/filepath"
	"strings"
)

// ResolvedLibraries is the outcome of a library resolution pass: the
// absolute paths that go on the classpath (Windows hosts only, other
// platforms use a directory glob) and the downloaded jars classified as
// natives for later extraction.
type ResolvedLibraries struct {
	Classpath []string
	Natives   []string
}

// LibraryResolver selects and downloads the platform-appropriate artifacts
// of a version's library list.
type LibraryResolver struct {
	Fetcher  *Fetcher
	Root     string
	Platform Platform
}

// isNativeJarName reports whether a direct artifact's file name follows the
// native-jar naming convention for the platform: natives-{os}.jar or
// natives-{os}-{64|32}.jar.
func isNativeJarName(name string, platform Platform) bool {
	return strings.HasSuffix(name, "natives-"+platform.OS+".jar") ||
		strings.HasSuffix(name, "natives-"+platform.OS+"-"+platform.Arch+".jar")
}

// classifierFor resolves the architecture-qualified classifier artifact of a
// library for the platform, or nil when the library carries none.
func classifierFor(lib Library, platform Platform) *Artifact {
	if lib.Downloads.Classifiers == nil {
		return nil
	}

	key, ok := lib.Natives[platform.ClassifierOS()]
	if !ok {
		return nil
	}
	key = strings.ReplaceAll(key, "${os_arch}", platform.Arch)

	return lib.Downloads.Classifiers[key]
}

// Resolve downloads every applicable artifact, advancing progress per
// artifact. Libraries lacking an applicable artifact for the platform are
// silently skipped.
func (r *LibraryResolver) Resolve(libraries []Library, progress func(bytes int64, description string)) (*ResolvedLibraries, error) {
	resolved := &ResolvedLibraries{}

	advance := func(bytes int64, description string) {
		if progress != nil {
			progress(bytes, description)
		}
	}

	for _, lib := range libraries {
		if artifact := lib.Downloads.Artifact; artifact != nil && artifact.URL != "" {
			dest := filepath.Join(r.Root, "libraries", filepath.FromSlash(artifact.Path))
			if _, err := r.Fetcher.FetchCached(dest, artifact.URL, artifact.Size, artifact.Sha1); err != nil {
				return nil, err
			}
			advance(artifact.Size, lib.Name)

			if r.Platform.IsWindows() {
				resolved.Classpath = append(resolved.Classpath, dest)
			}
			if isNativeJarName(filepath.Base(artifact.Path), r.Platform) {
				resolved.Natives = append(resolved.Natives, dest)
			}
		}

		if classifier := classifierFor(lib, r.Platform); classifier != nil && classifier.URL != "" {
			dest := filepath.Join(r.Root, "libraries", filepath.FromSlash(classifier.Path))
			if _, err := r.Fetcher.FetchCached(dest, classifier.URL, classifier.Size, classifier.Sha1); err != nil {
				return nil, err
			}
			advance(classifier.Size, lib.Name+" (natives)")

			if r.Platform.IsWindows() {
				resolved.Classpath = append(resolved.Classpath, dest)
			}
			resolved.Natives = append(resolved.Natives, dest)
		}
	}

	return resolved, nil
}
