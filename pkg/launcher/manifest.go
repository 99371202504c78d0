package launcher

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"limeal.fr/vlauncher/pkg/utils"
)

const ManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest.json"

// ManifestResolver fetches the top-level version manifest once per process
// and resolves version identifiers to their metadata documents.
type ManifestResolver struct {
	fetcher     *Fetcher
	manifestURL string
	manifest    *VersionManifest
}

func NewManifestResolver(fetcher *Fetcher) *ManifestResolver {
	return &ManifestResolver{fetcher: fetcher, manifestURL: ManifestURL}
}

// NewManifestResolverWithURL points the resolver at a non-default manifest
// endpoint (mirrors, tests).
func NewManifestResolverWithURL(fetcher *Fetcher, url string) *ManifestResolver {
	return &ManifestResolver{fetcher: fetcher, manifestURL: url}
}

func (r *ManifestResolver) load() error {
	if r.manifest != nil {
		return nil
	}

	var manifest VersionManifest
	if err := r.fetcher.FetchJSON(r.manifestURL, &manifest); err != nil {
		return err
	}
	r.manifest = &manifest
	return nil
}

func (r *ManifestResolver) LatestRelease() (string, error) {
	if err := r.load(); err != nil {
		return "", err
	}
	return r.manifest.Latest.Release, nil
}

func (r *ManifestResolver) Versions(releaseOnly bool) ([]string, error) {
	if err := r.load(); err != nil {
		return nil, err
	}

	versions := []string{}
	for _, v := range r.manifest.Versions {
		if releaseOnly && v.Type != "release" {
			continue
		}
		versions = append(versions, v.ID)
	}
	return versions, nil
}

// Resolve scans the manifest for an exact id match and returns the version's
// metadata URL.
func (r *ManifestResolver) Resolve(versionID string) (string, error) {
	if err := r.load(); err != nil {
		return "", err
	}

	for _, v := range r.manifest.Versions {
		if v.ID == versionID {
			return v.URL, nil
		}
	}
	return "", &VersionNotFoundError{Version: versionID}
}

// FetchMetadata resolves versionID, downloads its metadata document and
// persists a copy under the install root at versions/{id}/{id}.json. The
// copy is a best-effort cache: no hash is published for this document, so
// a failed write does not fail the fetch.
func (r *ManifestResolver) FetchMetadata(root string, versionID string) (*VersionMetadata, error) {
	url, err := r.Resolve(versionID)
	if err != nil {
		return nil, err
	}

	data, err := r.fetcher.Connector.ReadFileBytes(url)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	meta, err := DecodeVersionMetadata(data)
	if err != nil {
		return nil, err
	}

	dest := filepath.Join(root, "versions", meta.ID, meta.ID+".json")
	_ = utils.WriteFileAtomic(dest, data, 0644)

	return meta, nil
}

// FetchAssetIndex downloads the asset index referenced by meta, verifies it
// against the declared size and hash and persists it under
// assets/indexes/{id}.json.
func FetchAssetIndex(fetcher *Fetcher, root string, meta *VersionMetadata) (*AssetIndex, error) {
	ref := meta.AssetIndex
	dest := filepath.Join(root, "assets", "indexes", ref.ID+".json")

	data, err := fetcher.FetchCached(dest, ref.URL, ref.Size, ref.Sha1)
	if err != nil {
		return nil, err
	}

	var index AssetIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to decode asset index %s: %w", ref.ID, err)
	}
	if index.Objects == nil {
		return nil, fmt.Errorf("asset index %s has no objects", ref.ID)
	}
	for name, object := range index.Objects {
		// ObjectPath derives the store location from the first two hash
		// characters; a shorter hash can never name a valid object.
		if len(object.Hash) < 2 {
			return nil, &MalformedMetadataError{Field: fmt.Sprintf("assetIndex.objects[%q].hash", name)}
		}
	}

	return &index, nil
}
