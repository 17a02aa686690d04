package gcal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Scopes are the permissions the exporter asks for.
var Scopes = []string{
	calendar.CalendarEventsScope,
	calendar.CalendarReadonlyScope,
}

// Auth locates the OAuth client secrets and the cached user token.
type Auth struct {
	Credentials string
	Token       string

	// In and Out are used for the first authorization, when no token is cached.
	In  io.Reader
	Out io.Writer
}

// OAuthConfig reads the client secrets file downloaded from the Google console.
func (a Auth) OAuthConfig() (*oauth2.Config, error) {
	b, err := os.ReadFile(a.Credentials)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secret file %s: %w", a.Credentials, err)
	}
	config, err := google.ConfigFromJSON(b, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	if config.RedirectURL == "" {
		config.RedirectURL = "urn:ietf:wg:oauth:2.0:oob"
	}
	return config, nil
}

// Client returns an authenticated client that refreshes its token on demand.
func (a Auth) Client(ctx context.Context) (*http.Client, error) {
	config, err := a.OAuthConfig()
	if err != nil {
		return nil, err
	}

	tok, err := tokenFromFile(a.Token)
	if err != nil {
		tok, err = a.tokenFromPrompt(ctx, config)
		if err != nil {
			return nil, fmt.Errorf("failed to authorize: %w", err)
		}
		if err := saveToken(a.Token, tok); err != nil {
			return nil, err
		}
	}

	src := config.TokenSource(ctx, tok)
	fresh, err := src.Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}
	if fresh.AccessToken != tok.AccessToken || fresh.RefreshToken != tok.RefreshToken {
		if err := saveToken(a.Token, fresh); err != nil {
			return nil, err
		}
	}
	return oauth2.NewClient(ctx, src), nil
}

// tokenFromPrompt prints the consent URL and exchanges the pasted code.
func (a Auth) tokenFromPrompt(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	in, out := a.In, a.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Fprintf(out, "Open the following URL in your browser, then paste the authorization code:\n%s\n> ", authURL)

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && code == "" {
		return nil, fmt.Errorf("reading authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("empty authorization code")
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from Google: %w", err)
	}
	return tok, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from file %s: %w", file, err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token to %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
