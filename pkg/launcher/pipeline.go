package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"limeal.fr/vlauncher/pkg/authenticator"
	"limeal.fr/vlauncher/pkg/utils"
)

const AssetsBaseURL = "https://resources.download.minecraft.net"

const LauncherName = "vlauncher"
const LauncherVersion = "1.0.0"

// ProgressCallback receives monotonically non-decreasing byte counts whose
// final value equals the estimated total.
type ProgressCallback func(current int64, total int64, description string)

type LogCallback func(message string)

// Launcher owns everything one install root needs: the platform, the
// fetcher, the manifest resolver, the natives staging directory and the
// process supervisor. It is passed explicitly instead of living in a
// process-wide singleton.
type Launcher struct {
	Root     string
	Platform Platform

	Fetcher    *Fetcher
	Manifest   *ManifestResolver
	Supervisor *Supervisor
	AssetsURL  string

	natives *NativesExtractor
}

func NewLauncher(root string) (*Launcher, error) {
	platform := DetectPlatform()

	natives, err := NewNativesExtractor(platform)
	if err != nil {
		return nil, err
	}

	fetcher := NewFetcher()
	return &Launcher{
		Root:       root,
		Platform:   platform,
		Fetcher:    fetcher,
		Manifest:   NewManifestResolver(fetcher),
		Supervisor: NewSupervisor(),
		AssetsURL:  AssetsBaseURL,
		natives:    natives,
	}, nil
}

// DownloadOptions describes one launch pipeline run.
type DownloadOptions struct {
	Version      string
	PlayerName   string
	ExtraJVMArgs []string

	// JavaPath forces an explicit runtime executable; empty means provision
	// the managed runtime for the version's required major.
	JavaPath string

	// Auth switches argument synthesis to authenticated mode. A provider
	// failure aborts the launch before any script is written.
	Auth         authenticator.Authenticator
	AuthUsername string
	AuthPassword string

	Progress ProgressCallback
	Log      LogCallback
}

// Download runs the whole fetch/verify/extract pipeline sequentially and
// writes the launch script. It returns the script path. Any fetch failure
// aborts immediately: no partial script is left behind.
func (l *Launcher) Download(opts DownloadOptions) (string, error) {
	log := func(msg string) {
		if opts.Log != nil {
			opts.Log(msg)
		}
	}

	meta, err := l.Manifest.FetchMetadata(l.Root, opts.Version)
	if err != nil {
		return "", fmt.Errorf("resolving version %s: %w", opts.Version, err)
	}

	index, err := FetchAssetIndex(l.Fetcher, l.Root, meta)
	if err != nil {
		return "", fmt.Errorf("fetching asset index: %w", err)
	}

	provisioner := &RuntimeProvisioner{Fetcher: l.Fetcher, Root: l.Root, Platform: l.Platform}

	// A forced java path skips the runtime stage, so its archive must not be
	// part of the estimate either.
	estimateProvisioner := provisioner
	if opts.JavaPath != "" {
		estimateProvisioner = nil
	}
	total := EstimateSize(estimateProvisioner, meta, index, l.Platform)

	var current int64
	advance := func(bytes int64, description string) {
		current += bytes
		if opts.Progress != nil {
			opts.Progress(current, total, description)
		}
	}

	// Managed runtime.
	javaPath := opts.JavaPath
	if javaPath == "" {
		log(fmt.Sprintf("Provisioning runtime %d", meta.JavaMajor))
		javaPath, err = provisioner.Provision(meta.JavaMajor)
		if err != nil {
			return "", fmt.Errorf("provisioning runtime: %w", err)
		}
		if url, err := provisioner.ArchiveURL(meta.JavaMajor); err == nil {
			if size, err := utils.RemoteContentLength(url); err == nil {
				advance(size, fmt.Sprintf("runtime %d", meta.JavaMajor))
			}
		}
	}

	// Main artifact.
	log("Downloading " + meta.ID)
	jarPath := filepath.Join(l.Root, "versions", meta.ID, meta.ID+".jar")
	if _, err := l.Fetcher.FetchCached(jarPath, meta.Client.URL, meta.Client.Size, meta.Client.Sha1); err != nil {
		return "", fmt.Errorf("downloading %s.jar: %w", meta.ID, err)
	}
	advance(meta.Client.Size, meta.ID+".jar")

	// Libraries and native classifiers.
	resolver := &LibraryResolver{Fetcher: l.Fetcher, Root: l.Root, Platform: l.Platform}
	resolved, err := resolver.Resolve(meta.Libraries, advance)
	if err != nil {
		return "", fmt.Errorf("downloading libraries: %w", err)
	}

	// Asset objects.
	for name, object := range index.Objects {
		dest := filepath.Join(l.Root, "assets", "objects", filepath.FromSlash(object.ObjectPath()))
		url := l.AssetsURL + "/" + object.ObjectPath()
		if _, err := l.Fetcher.FetchCached(dest, url, object.Size, object.Hash); err != nil {
			return "", fmt.Errorf("downloading asset %s: %w", name, err)
		}
		advance(object.Size, name)
	}

	// Natives staging.
	nativesDir, err := l.natives.Extract(resolved.Natives)
	if err != nil {
		return "", fmt.Errorf("extracting natives: %w", err)
	}

	// Credentials.
	creds := OfflineCredentials(opts.PlayerName)
	if opts.Auth != nil {
		session, err := opts.Auth.Authenticate(opts.AuthUsername, opts.AuthPassword)
		if err != nil {
			return "", err
		}
		creds = Credentials{
			PlayerName:    session.UserName,
			UUID:          session.UserUUID,
			XUID:          session.XUID,
			AccessToken:   session.Token,
			UserType:      string(opts.Auth.GetType()),
			Authenticated: true,
		}
	}

	// Arguments and script.
	synthesizer := &ArgumentSynthesizer{
		Root:            l.Root,
		Platform:        l.Platform,
		Metadata:        meta,
		NativesDir:      nativesDir,
		Classpath:       BuildClasspath(l.Root, l.Platform, resolved.Classpath, meta.ID),
		LauncherName:    LauncherName,
		LauncherVersion: LauncherVersion,
	}
	jvmArgs, gameArgs := synthesizer.Synthesize(creds, opts.ExtraJVMArgs)

	log("Starting " + meta.ID)
	return WriteLaunchScript(l.Root, l.Platform, javaPath, jvmArgs, meta.MainClass, gameArgs, meta.ID)
}

// Play spawns the generated script under the supervisor.
func (l *Launcher) Play(scriptPath string) error {
	return l.Supervisor.Launch(scriptPath, l.Root)
}

// DefaultRoot is the per-OS shared install root.
func DefaultRoot() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "vlauncher"), nil
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "vlauncher"), nil
	case "linux":
		return filepath.Join(os.Getenv("HOME"), ".vlauncher"), nil
	}
	return "", fmt.Errorf("unsupported OS")
}
