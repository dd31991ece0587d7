package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// ErrInvalidIDToken is returned for tokens Google rejects or tokens minted
// for a different OAuth client.
var ErrInvalidIDToken = errors.New("invalid ID token")

// GoogleClaims carries the identity fields extracted from a verified token.
type GoogleClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleVerifier validates Google ID tokens against the tokeninfo endpoint
// and checks the audience matches the configured OAuth client.
type GoogleVerifier struct {
	clientID     string
	tokenInfoURL string
	httpClient   *http.Client
}

// NewGoogleVerifier creates a verifier for the given OAuth client ID.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID:     clientID,
		tokenInfoURL: defaultTokenInfoURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NewGoogleVerifierWithEndpoint creates a verifier against a custom tokeninfo
// endpoint. Used by tests.
func NewGoogleVerifierWithEndpoint(clientID, endpoint string) *GoogleVerifier {
	v := NewGoogleVerifier(clientID)
	v.tokenInfoURL = endpoint
	return v
}

type tokenInfoResponse struct {
	Aud   string `json:"aud"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Exp   string `json:"exp"`
}

// Verify checks the token's signature (delegated to Google), audience and
// expiry, and returns the embedded identity.
func (v *GoogleVerifier) Verify(idToken string) (*GoogleClaims, error) {
	if idToken == "" {
		return nil, ErrInvalidIDToken
	}

	endpoint := v.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	resp, err := v.httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidIDToken
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, ErrInvalidIDToken
	}

	if info.Aud != v.clientID || info.Email == "" {
		return nil, ErrInvalidIDToken
	}

	if exp, err := strconv.ParseInt(info.Exp, 10, 64); err != nil || time.Now().Unix() >= exp {
		return nil, ErrInvalidIDToken
	}

	return &GoogleClaims{Email: info.Email, Name: info.Name}, nil
}
