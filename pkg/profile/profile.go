package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// BundledJava marks a profile that uses the managed runtime instead of an
// explicit executable.
const BundledJava = "bundled"

// Profile is one named launch configuration. Name is the identity used for
// lookup and must be unique among persisted profiles.
type Profile struct {
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	MinecraftPath string   `json:"minecraftPath"`
	Java          string   `json:"java"` // absolute executable path or "bundled"
	UserJvmArgs   []string `json:"userJvmArgs"`
}

// UsesBundledJava reports whether the launch should provision the managed
// runtime.
func (p Profile) UsesBundledJava() bool {
	return p.Java == "" || p.Java == BundledJava
}

func (p Profile) String() string {
	return p.Name + " (" + p.Version + ")"
}

// State is the persisted launcher state: the player display name and the
// last-selected profile name.
type State struct {
	PlayerName  string `json:"playerName"`
	LastProfile string `json:"lastProfile,omitempty"`
}

type profilesDocument struct {
	Profiles []Profile `json:"profiles"`
}

// Store loads and saves the two launcher JSON documents (vlauncher.json and
// profiles.json) and tracks the current profile selection.
type Store struct {
	Dir      string
	State    State
	Profiles []Profile

	current *Profile
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir, State: State{PlayerName: "VPlayer"}}
}

func (s *Store) statePath() string {
	return filepath.Join(s.Dir, "vlauncher.json")
}

func (s *Store) profilesPath() string {
	return filepath.Join(s.Dir, "profiles.json")
}

// Load reads both documents, tolerating their absence, and selects the
// current profile: the last-selected one when it still exists, otherwise the
// first, otherwise none.
func (s *Store) Load() error {
	if data, err := os.ReadFile(s.statePath()); err == nil {
		if err := json.Unmarshal(data, &s.State); err != nil {
			return fmt.Errorf("failed to decode launcher state: %w", err)
		}
	}
	if s.State.PlayerName == "" {
		s.State.PlayerName = "VPlayer"
	}

	s.Profiles = nil
	s.current = nil
	if data, err := os.ReadFile(s.profilesPath()); err == nil {
		var doc profilesDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to decode profiles: %w", err)
		}
		s.Profiles = doc.Profiles
	}

	for i := range s.Profiles {
		if s.State.LastProfile == "" || s.Profiles[i].Name == s.State.LastProfile {
			s.current = &s.Profiles[i]
			s.State.LastProfile = s.Profiles[i].Name
			break
		}
	}

	return nil
}

// Save writes both documents. Called before launch and before exit, never
// mid-pipeline.
func (s *Store) Save() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	stateData, err := json.MarshalIndent(s.State, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode launcher state: %w", err)
	}
	if err := os.WriteFile(s.statePath(), stateData, 0644); err != nil {
		return fmt.Errorf("failed to write launcher state: %w", err)
	}

	profilesData, err := json.MarshalIndent(profilesDocument{Profiles: s.Profiles}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := os.WriteFile(s.profilesPath(), profilesData, 0644); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}

	return nil
}

// Get returns the profile with the given name.
func (s *Store) Get(name string) (Profile, bool) {
	for _, p := range s.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

func (s *Store) Current() *Profile {
	return s.current
}

// Select makes name the current profile and records it as last-selected.
func (s *Store) Select(name string) error {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			s.current = &s.Profiles[i]
			s.State.LastProfile = name
			return nil
		}
	}
	return fmt.Errorf("profile not found: %s", name)
}

// Add persists a new profile. On a name collision confirmOverwrite decides;
// declining leaves both the in-memory list and the persisted state
// unchanged. The saved profile becomes the current selection.
func (s *Store) Add(p Profile, confirmOverwrite func(name string) bool) (bool, error) {
	replaced := false
	for i := range s.Profiles {
		if s.Profiles[i].Name == p.Name {
			if confirmOverwrite == nil || !confirmOverwrite(p.Name) {
				return false, nil
			}
			s.Profiles[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.Profiles = append(s.Profiles, p)
	}

	s.State.LastProfile = p.Name
	if err := s.Save(); err != nil {
		return false, err
	}
	return true, s.Load()
}

// Remove deletes a profile by name and persists the change.
func (s *Store) Remove(name string) error {
	kept := s.Profiles[:0]
	found := false
	for _, p := range s.Profiles {
		if p.Name == name {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("profile not found: %s", name)
	}
	s.Profiles = kept

	if s.State.LastProfile == name {
		s.State.LastProfile = ""
	}
	if err := s.Save(); err != nil {
		return err
	}
	return s.Load()
}
