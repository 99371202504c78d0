package authenticator

import (
	"fmt"
	"net/http"

	"limeal.fr/vlauncher/pkg/utils"
)

const DefaultAuthURL = "https://authserver.mojang.com/authenticate"
const DefaultProfileURL = "https://api.minecraftservices.com/minecraft/profile"

////////////////////////////////////////////////////////////
// Types
////////////////////////////////////////////////////////////

type yggdrasilAgent struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
}

type yggdrasilRequest struct {
	Agent    yggdrasilAgent `json:"agent"`
	Username string         `json:"username"`
	Password string         `json:"password"`
}

type yggdrasilProfile struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type yggdrasilResponse struct {
	AccessToken     string           `json:"accessToken"`
	SelectedProfile yggdrasilProfile `json:"selectedProfile"`
}

type profileResponse struct {
	XUID string `json:"xuid"`
}

////////////////////////////////////////////////////////////
// Authenticator
////////////////////////////////////////////////////////////

// YggdrasilAuthenticator authenticates against an yggdrasil-style credential
// endpoint and resolves the extended identifier from the profile endpoint.
// HTTP 200 is success; every other status fails the launch.
type YggdrasilAuthenticator struct {
	AuthURL    string
	ProfileURL string
}

func NewYggdrasilAuthenticator() *YggdrasilAuthenticator {
	return &YggdrasilAuthenticator{
		AuthURL:    DefaultAuthURL,
		ProfileURL: DefaultProfileURL,
	}
}

func (a *YggdrasilAuthenticator) GetType() AuthenticatorType {
	return MSA
}

func (a *YggdrasilAuthenticator) Authenticate(username string, password string) (*Session, error) {
	var body yggdrasilResponse
	options := utils.NewRequestOptions("application/json", &body)
	options.AddHeader("Accept", "application/json")
	if err := options.SetBody(yggdrasilRequest{
		Agent:    yggdrasilAgent{Name: "Minecraft", Version: 1},
		Username: username,
		Password: password,
	}); err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	if _, err := utils.DoRequest(http.MethodPost, a.AuthURL, options); err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	if body.AccessToken == "" || body.SelectedProfile.Name == "" {
		return nil, &AuthenticationError{Err: fmt.Errorf("incomplete credential response")}
	}

	var profile profileResponse
	profileOptions := utils.NewRequestOptions("application/json", &profile)
	profileOptions.AddHeader("Authorization", "Bearer "+body.AccessToken)
	if _, err := utils.DoRequest(http.MethodGet, a.ProfileURL, profileOptions); err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	return &Session{
		UserName: body.SelectedProfile.Name,
		UserUUID: body.SelectedProfile.ID,
		Token:    body.AccessToken,
		XUID:     profile.XUID,
	}, nil
}
