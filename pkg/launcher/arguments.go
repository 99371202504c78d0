package launcher

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Credentials is what argument synthesis needs to know about the player.
// Offline mode carries the fallback token and strips the identity
// placeholders entirely; authenticated mode substitutes them.
type Credentials struct {
	PlayerName    string
	UUID          string
	XUID          string
	AccessToken   string
	UserType      string // mojang | msa
	Authenticated bool
}

// OfflineCredentials is the unauthenticated mode: profile-supplied name or
// "Player", access token "0", legacy user type.
func OfflineCredentials(playerName string) Credentials {
	if playerName == "" {
		playerName = "Player"
	}
	return Credentials{
		PlayerName:  playerName,
		AccessToken: "0",
		UserType:    "mojang",
	}
}

// ArgumentSynthesizer builds the final JVM arguments, game arguments and
// classpath string from version metadata, profile settings and credentials.
type ArgumentSynthesizer struct {
	Root            string
	Platform        Platform
	Metadata        *VersionMetadata
	NativesDir      string
	Classpath       string
	LauncherName    string
	LauncherVersion string
}

// BuildClasspath assembles the runtime search path. On Windows every
// resolved library is joined explicitly in resolution order with the main
// artifact last; elsewhere a directory glob is used, relying on the
// runtime's own expansion. The asymmetry is intentional.
func BuildClasspath(root string, platform Platform, libraries []string, versionID string) string {
	mainJar := filepath.Join(root, "versions", versionID, versionID+".jar")

	if platform.IsWindows() {
		return strings.Join(append(append([]string{}, libraries...), mainJar), ";")
	}
	return filepath.Join(root, "libraries") + "/*:" + mainJar
}

var placeholderPattern = regexp.MustCompile(`\$\{[^}]*\}`)

// Synthesize produces the JVM and game argument lists for the metadata's
// argument schema. Every ${...} placeholder is replaced or removed; none is
// left literal.
func (s *ArgumentSynthesizer) Synthesize(creds Credentials, extraJVM []string) (jvm []string, game []string) {
	root := s.Root
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	placeholders := map[string]string{
		"auth_player_name":  creds.PlayerName,
		"version_name":      s.Metadata.ID,
		"game_directory":    root,
		"assets_root":       filepath.Join(root, "assets"),
		"assets_index_name": s.Metadata.Assets,
		"auth_access_token": creds.AccessToken,
		"version_type":      s.Metadata.Type,
		"user_properties":   "0",
		"user_type":         creds.UserType,
		"natives_directory": s.NativesDir,
		"launcher_name":     s.LauncherName,
		"launcher_version":  s.LauncherVersion,
		"classpath":         s.Classpath,
	}

	// The client-id pair is always stripped; offline mode strips the whole
	// identity trio instead of substituting it.
	stripped := map[string]bool{"clientid": true}
	if creds.Authenticated {
		placeholders["auth_uuid"] = creds.UUID
		placeholders["auth_xuid"] = creds.XUID
	} else {
		stripped["auth_uuid"] = true
		stripped["auth_xuid"] = true
	}

	format := func(tokens []string) []string {
		out := []string{}
		for _, token := range tokens {
			if name, ok := placeholderName(token); ok && stripped[name] {
				// Drop the placeholder and the flag announcing it.
				if n := len(out); n > 0 && strings.HasPrefix(out[n-1], "-") {
					out = out[:n-1]
				}
				continue
			}

			for name, value := range placeholders {
				token = strings.ReplaceAll(token, "${"+name+"}", value)
			}
			token = placeholderPattern.ReplaceAllString(token, "")

			if token != "" {
				out = append(out, token)
			}
		}
		return out
	}

	jvm = append(jvm, extraJVM...)

	switch s.Metadata.Arguments.Kind {
	case ArgumentsStructured:
		jvm = append(jvm, format(s.Metadata.Arguments.JVM)...)
		game = format(s.Metadata.Arguments.Game)
	case ArgumentsLegacy:
		jvm = append(jvm,
			"-Djava.library.path="+s.NativesDir,
			"-cp", s.Classpath,
		)
		game = format(strings.Fields(s.Metadata.Arguments.Legacy))
	}

	return jvm, game
}

// placeholderName returns the inner name when token is exactly one ${...}
// placeholder.
func placeholderName(token string) (string, bool) {
	if strings.HasPrefix(token, "${") && strings.HasSuffix(token, "}") && strings.Count(token, "${") == 1 {
		return token[2 : len(token)-1], true
	}
	return "", false
}
