package googleauth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type UserDetails struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	PictureUrl    string `json:"picture"`
	FirstName     string `json:"given_name"`
	LastName      string `json:"family_name"`
}

// GetUserDetails resolves a Google OAuth access token to the account it
// belongs to. Login exchanges this for an api token.
func GetUserDetails(accessToken string) (*UserDetails, error) {
	url := "https://www.googleapis.com/oauth2/v1/userinfo?access_token=" + accessToken
	response, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		errJson := struct {
			Error string `json:"error"`
		}{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	details := UserDetails{}
	if err := json.Unmarshal(responseBytes, &details); err != nil {
		return nil, err
	}

	return &details, nil
}
