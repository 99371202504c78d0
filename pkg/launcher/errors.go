package launcher

import (
	"errors"
	"fmt"
)

// ErrAlreadyRunning is returned by Supervisor.Launch while a game process is
// still alive. The rejection happens before any work starts.
var ErrAlreadyRunning = errors.New("a game is already running")

type VersionNotFoundError struct {
	Version string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version not found: %s", e.Version)
}

// IntegrityError reports a size or SHA-1 disagreement for a fetched artifact.
type IntegrityError struct {
	Artifact string
	Reason   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity mismatch for %s: %s", e.Artifact, e.Reason)
}

type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type MalformedMetadataError struct {
	Field string
}

func (e *MalformedMetadataError) Error() string {
	return fmt.Sprintf("malformed version metadata: missing or invalid field %q", e.Field)
}

type RuntimeProvisionError struct {
	Major int
	Err   error
}

func (e *RuntimeProvisionError) Error() string {
	return fmt.Sprintf("failed to provision runtime %d: %v", e.Major, e.Err)
}

func (e *RuntimeProvisionError) Unwrap() error {
	return e.Err
}

type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn game process: %v", e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
