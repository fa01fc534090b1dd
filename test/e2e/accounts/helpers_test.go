package accounts_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starterhq/accounts/internal/accounts/domain"
	accountshttp "github.com/starterhq/accounts/internal/accounts/http"
	"github.com/starterhq/accounts/internal/accounts/service"
	"github.com/starterhq/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/starterhq/accounts/pkg/jwtx"
)

// setupServer wires the full HTTP surface against a throwaway on-disk
// database and serves it over a real listener, so the tests exercise the
// same request path a browser client would.
func setupServer(t *testing.T) string {
	t.Helper()

	dbFile := filepath.Join(t.TempDir(), "accounts.db")
	st, err := sqlite.NewStore("file:" + dbFile + "?_busy_timeout=5000&_journal_mode=WAL")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256("e2e-test-secret", "accounts-service")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := accountshttp.NewRouter(signer, "e2e", "", st, logger)
	router.AccountService = &service.AccountService{Store: st, Scheme: domain.SchemeSHA1}
	router.AuthService = &service.AuthService{Store: st, Signer: signer, Issuer: "accounts-service"}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL
}

// request sends a JSON request and decodes the JSON response into out.
// A non-empty token is sent as an Authorization bearer header.
func request(t *testing.T, client *http.Client, method, url string, body any, token string, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

type signinResult struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// registerAndSignin provisions an account and returns its id and a valid
// identity token.
func registerAndSignin(t *testing.T, client *http.Client, baseURL, name, email, password string) (string, string) {
	t.Helper()

	var msg map[string]string
	resp := request(t, client, http.MethodPost, baseURL+"/api/users", map[string]string{
		"name": name, "email": email, "password": password,
	}, "", &msg)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Successfully signed up!", msg["message"])

	var signin signinResult
	resp = request(t, client, http.MethodPost, baseURL+"/auth/signin", map[string]string{
		"email": email, "password": password,
	}, "", &signin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, signin.Token)
	require.NotEmpty(t, signin.User.ID)

	return signin.User.ID, signin.Token
}
