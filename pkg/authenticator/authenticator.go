package authenticator

import "fmt"

type AuthenticatorType string

const (
	MOJANG AuthenticatorType = "mojang"
	MSA    AuthenticatorType = "msa"
)

// Session is what a successful authentication yields: the display name, an
// opaque identifier, the bearer token and the extended (platform) identifier.
type Session struct {
	UserName string `json:"username"`
	UserUUID string `json:"user_uuid"`
	Token    string `json:"token"`
	XUID     string `json:"xuid"`
}

// Authenticator is the external credential provider. Implementations fail
// with an AuthenticationError on any non-success response.
type Authenticator interface {
	GetType() AuthenticatorType
	Authenticate(username string, password string) (*Session, error)
}

type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
