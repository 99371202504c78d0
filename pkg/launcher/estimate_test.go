package launcher

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateSize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer server.Close()

	platform := Platform{OS: "linux", Arch: "64"}
	provisioner := &RuntimeProvisioner{
		Fetcher:  NewFetcher(),
		Platform: platform,
		Archives: map[int]string{17: server.URL},
	}

	meta := &VersionMetadata{
		JavaMajor: 17,
		Client:    Artifact{Size: 200, URL: "u"},
		Libraries: []Library{
			{
				Name:      "a",
				Downloads: LibraryDownloads{Artifact: &Artifact{Size: 30, URL: "u"}},
			},
			{
				Name:    "b",
				Natives: map[string]string{"linux": "natives-linux"},
				Downloads: LibraryDownloads{
					Classifiers: map[string]*Artifact{
						"natives-linux": {Size: 40, URL: "u"},
					},
				},
			},
			{
				// No applicable artifact for this platform.
				Name:    "c",
				Natives: map[string]string{"windows": "natives-windows"},
				Downloads: LibraryDownloads{
					Classifiers: map[string]*Artifact{
						"natives-windows": {Size: 999, URL: "u"},
					},
				},
			},
		},
	}
	index := &AssetIndex{Objects: map[string]AssetObject{
		"a.ogg": {Hash: "aa00", Size: 5},
		"b.png": {Hash: "bb00", Size: 6},
	}}

	total := EstimateSize(provisioner, meta, index, platform)
	assert.Equal(t, int64(1000+200+30+40+5+6), total)
}

func TestEstimateSizeUnknownRuntime(t *testing.T) {
	platform := Platform{OS: "linux", Arch: "64"}
	provisioner := &RuntimeProvisioner{
		Fetcher:  NewFetcher(),
		Platform: platform,
		Archives: map[int]string{},
	}

	meta := &VersionMetadata{JavaMajor: 99, Client: Artifact{Size: 200, URL: "u"}}
	index := &AssetIndex{Objects: map[string]AssetObject{}}

	// An unresolvable runtime archive contributes nothing; the rest still
	// counts.
	assert.Equal(t, int64(200), EstimateSize(provisioner, meta, index, platform))
}

func TestEstimateSizeWithoutProvisioner(t *testing.T) {
	platform := Platform{OS: "linux", Arch: "64"}
	meta := &VersionMetadata{JavaMajor: 17, Client: Artifact{Size: 200, URL: "u"}}
	index := &AssetIndex{Objects: map[string]AssetObject{"a.ogg": {Hash: "aa00", Size: 5}}}

	// No provisioner means the runtime stage will be skipped; its archive
	// must not be counted.
	assert.Equal(t, int64(200+5), EstimateSize(nil, meta, index, platform))
}

func TestEstimateSizeWithoutSelection(t *testing.T) {
	provisioner := &RuntimeProvisioner{Fetcher: NewFetcher()}

	assert.Equal(t, EstimateUnknown, EstimateSize(provisioner, nil, nil, Platform{}))
	assert.Equal(t, EstimateUnknown, EstimateSize(provisioner, &VersionMetadata{}, nil, Platform{}))
}
