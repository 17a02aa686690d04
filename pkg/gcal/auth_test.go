package gcal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
	"golang.org/x/oauth2"
)

func TestToken_RoundTrip(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	tok := &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

	is.NoErr(saveToken(path, tok))
	info, err := os.Stat(path)
	is.NoErr(err)
	is.Equal(info.Mode().Perm(), os.FileMode(0600))

	got, err := tokenFromFile(path)
	is.NoErr(err)
	is.Equal(got.AccessToken, "a")
	is.Equal(got.RefreshToken, "r")
	is.True(got.Expiry.Equal(tok.Expiry))
}

func TestOAuthConfig(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials.json")
	is.NoErr(os.WriteFile(creds, []byte(`{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`), 0600))

	config, err := Auth{Credentials: creds}.OAuthConfig()
	is.NoErr(err)
	is.Equal(config.ClientID, "id")
	is.Equal(config.RedirectURL, "urn:ietf:wg:oauth:2.0:oob")
	is.Equal(config.Scopes, Scopes)

	_, err = Auth{Credentials: filepath.Join(dir, "missing.json")}.OAuthConfig()
	is.True(err != nil)
}
