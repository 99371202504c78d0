package launcher

import (
	"encoding/json"
)

/////////////////////////////////////////////////////////////////////
// Version manifest
/////////////////////////////////////////////////////////////////////

type VersionManifest struct {
	Latest   LatestVersions `json:"latest"`
	Versions []VersionInfo  `json:"versions"`
}

type LatestVersions struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

type VersionInfo struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	SHA1 string `json:"sha1"`
	Type string `json:"type"`
}

/////////////////////////////////////////////////////////////////////
// Version metadata
/////////////////////////////////////////////////////////////////////

type Artifact struct {
	Path string `json:"path"`
	Sha1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type LibraryDownloads struct {
	Artifact    *Artifact            `json:"artifact,omitempty"`
	Classifiers map[string]*Artifact `json:"classifiers,omitempty"`
}

type Library struct {
	Name      string            `json:"name"`
	Downloads LibraryDownloads  `json:"downloads"`
	Natives   map[string]string `json:"natives,omitempty"` // os -> classifier key, may contain ${os_arch}
}

type AssetIndexRef struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Sha1 string `json:"sha1"`
	Size int64  `json:"size"`
}

type ArgumentsKind int

const (
	// ArgumentsStructured: game and jvm arguments are ordered lists; only
	// unconditional string entries are honored.
	ArgumentsStructured ArgumentsKind = iota + 1
	// ArgumentsLegacy: a single pre-joined game-argument string; jvm
	// arguments are synthesized manually.
	ArgumentsLegacy
)

// Arguments is the tagged variant resolved once during metadata decode, so
// the two schemas are never re-checked ad hoc at use sites.
type Arguments struct {
	Kind   ArgumentsKind
	Game   []string // structured only
	JVM    []string // structured only
	Legacy string   // legacy only
}

type VersionMetadata struct {
	ID         string
	Type       string
	Assets     string
	MainClass  string
	JavaMajor  int // defaults to 8 when the document omits it
	Arguments  Arguments
	Libraries  []Library
	Client     Artifact // main game artifact; Path unused
	AssetIndex AssetIndexRef
}

// rawVersionMetadata mirrors the wire document; DecodeVersionMetadata
// converts it into the validated VersionMetadata.
type rawVersionMetadata struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Assets    string `json:"assets"`
	MainClass string `json:"mainClass"`

	JavaVersion *struct {
		Component    string `json:"component"`
		MajorVersion int    `json:"majorVersion"`
	} `json:"javaVersion,omitempty"`

	Arguments *struct {
		Game []any `json:"game"`
		JVM  []any `json:"jvm"`
	} `json:"arguments,omitempty"`
	MinecraftArguments string `json:"minecraftArguments,omitempty"`

	Libraries  []Library                `json:"libraries"`
	Downloads  map[string]Artifact      `json:"downloads"`
	AssetIndex *AssetIndexRef           `json:"assetIndex,omitempty"`
}

// onlyStrings keeps the unconditional string entries of a structured
// argument list; rule-based entries are ignored.
func onlyStrings(args []any) []string {
	out := []string{}
	for _, arg := range args {
		if s, ok := arg.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// DecodeVersionMetadata parses and validates a version metadata document,
// failing fast with MalformedMetadataError instead of deferring failures to
// first field access.
func DecodeVersionMetadata(data []byte) (*VersionMetadata, error) {
	var raw rawVersionMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedMetadataError{Field: "document"}
	}

	if raw.ID == "" {
		return nil, &MalformedMetadataError{Field: "id"}
	}
	if raw.Type == "" {
		return nil, &MalformedMetadataError{Field: "type"}
	}
	if raw.MainClass == "" {
		return nil, &MalformedMetadataError{Field: "mainClass"}
	}
	if raw.Assets == "" {
		return nil, &MalformedMetadataError{Field: "assets"}
	}
	if raw.AssetIndex == nil || raw.AssetIndex.URL == "" {
		return nil, &MalformedMetadataError{Field: "assetIndex"}
	}

	client, ok := raw.Downloads["client"]
	if !ok || client.URL == "" {
		return nil, &MalformedMetadataError{Field: "downloads.client"}
	}

	meta := &VersionMetadata{
		ID:         raw.ID,
		Type:       raw.Type,
		Assets:     raw.Assets,
		MainClass:  raw.MainClass,
		JavaMajor:  8,
		Libraries:  raw.Libraries,
		Client:     client,
		AssetIndex: *raw.AssetIndex,
	}

	if raw.JavaVersion != nil && raw.JavaVersion.MajorVersion > 0 {
		meta.JavaMajor = raw.JavaVersion.MajorVersion
	}

	switch {
	case raw.Arguments != nil:
		meta.Arguments = Arguments{
			Kind: ArgumentsStructured,
			Game: onlyStrings(raw.Arguments.Game),
			JVM:  onlyStrings(raw.Arguments.JVM),
		}
	case raw.MinecraftArguments != "":
		meta.Arguments = Arguments{
			Kind:   ArgumentsLegacy,
			Legacy: raw.MinecraftArguments,
		}
	default:
		return nil, &MalformedMetadataError{Field: "arguments"}
	}

	return meta, nil
}

/////////////////////////////////////////////////////////////////////
// Asset index
/////////////////////////////////////////////////////////////////////

type AssetObject struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

type AssetIndex struct {
	Objects map[string]AssetObject `json:"objects"`
}

// ObjectPath is the object-store location derived from the content hash.
func (o AssetObject) ObjectPath() string {
	return o.Hash[:2] + "/" + o.Hash
}
