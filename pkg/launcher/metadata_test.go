package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredMetadata = `{
	"id": "1.20.1",
	"type": "release",
	"assets": "5",
	"mainClass": "net.minecraft.client.main.Main",
	"javaVersion": {"component": "java-runtime-gamma", "majorVersion": 17},
	"arguments": {
		"game": ["--username", "${auth_player_name}", {"rules": [{"action": "allow"}], "value": "--demo"}],
		"jvm": ["-Djava.library.path=${natives_directory}", "-cp", "${classpath}"]
	},
	"libraries": [],
	"downloads": {"client": {"sha1": "abc", "size": 10, "url": "https://example.com/client.jar"}},
	"assetIndex": {"id": "5", "url": "https://example.com/5.json", "sha1": "def", "size": 20}
}`

const legacyMetadata = `{
	"id": "1.12.2",
	"type": "release",
	"assets": "1.12",
	"mainClass": "net.minecraft.client.main.Main",
	"minecraftArguments": "--username ${auth_player_name} --version ${version_name}",
	"libraries": [],
	"downloads": {"client": {"sha1": "abc", "size": 10, "url": "https://example.com/client.jar"}},
	"assetIndex": {"id": "1.12", "url": "https://example.com/1.12.json", "sha1": "def", "size": 20}
}`

func TestDecodeStructuredMetadata(t *testing.T) {
	meta, err := DecodeVersionMetadata([]byte(structuredMetadata))
	require.NoError(t, err)

	assert.Equal(t, "1.20.1", meta.ID)
	assert.Equal(t, "release", meta.Type)
	assert.Equal(t, 17, meta.JavaMajor)
	assert.Equal(t, ArgumentsStructured, meta.Arguments.Kind)

	// Rule-based entries are dropped, string entries keep their order.
	assert.Equal(t, []string{"--username", "${auth_player_name}"}, meta.Arguments.Game)
	assert.Equal(t, []string{"-Djava.library.path=${natives_directory}", "-cp", "${classpath}"}, meta.Arguments.JVM)
}

func TestDecodeLegacyMetadata(t *testing.T) {
	meta, err := DecodeVersionMetadata([]byte(legacyMetadata))
	require.NoError(t, err)

	assert.Equal(t, ArgumentsLegacy, meta.Arguments.Kind)
	assert.Equal(t, "--username ${auth_player_name} --version ${version_name}", meta.Arguments.Legacy)
	assert.Empty(t, meta.Arguments.Game)
	assert.Empty(t, meta.Arguments.JVM)
}

func TestDecodeMetadataDefaultsJavaMajor(t *testing.T) {
	meta, err := DecodeVersionMetadata([]byte(legacyMetadata))
	require.NoError(t, err)
	assert.Equal(t, 8, meta.JavaMajor)
}

func TestDecodeMetadataMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"not json", `{]`, "document"},
		{"missing id", `{"type":"release","assets":"5","mainClass":"m","minecraftArguments":"x","downloads":{"client":{"url":"u"}},"assetIndex":{"id":"5","url":"u"}}`, "id"},
		{"missing mainClass", `{"id":"1","type":"release","assets":"5","minecraftArguments":"x","downloads":{"client":{"url":"u"}},"assetIndex":{"id":"5","url":"u"}}`, "mainClass"},
		{"missing client download", `{"id":"1","type":"release","assets":"5","mainClass":"m","minecraftArguments":"x","downloads":{},"assetIndex":{"id":"5","url":"u"}}`, "downloads.client"},
		{"missing asset index", `{"id":"1","type":"release","assets":"5","mainClass":"m","minecraftArguments":"x","downloads":{"client":{"url":"u"}}}`, "assetIndex"},
		{"no argument schema", `{"id":"1","type":"release","assets":"5","mainClass":"m","downloads":{"client":{"url":"u"}},"assetIndex":{"id":"5","url":"u"}}`, "arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeVersionMetadata([]byte(tt.body))
			require.Error(t, err)

			var metaErr *MalformedMetadataError
			require.ErrorAs(t, err, &metaErr)
			assert.Equal(t, tt.field, metaErr.Field)
		})
	}
}

func TestAssetObjectPath(t *testing.T) {
	object := AssetObject{Hash: "1f4f2a5e6c7d8e9f0a1b2c3d4e5f6a7b8c9d0e1f", Size: 42}
	assert.Equal(t, "1f/1f4f2a5e6c7d8e9f0a1b2c3d4e5f6a7b8c9d0e1f", object.ObjectPath())
}
