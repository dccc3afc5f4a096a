// server/internal/authgw/gateway.go
package authgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"ecoconnect-api-server/internal/models"
	"ecoconnect-api-server/internal/session"
)

// GenericErrorMessage is surfaced when the auth service rejects a call
// without a usable error body.
const GenericErrorMessage = "An error occurred. Please try again."

// RemoteError is an application-level rejection from the auth service:
// a response arrived, it just said no.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("auth service rejected request (%d): %s", e.StatusCode, e.Message)
}

// Gateway wraps the external authentication service. A shared cookie jar
// carries the service's session cookie across calls, the way the browser
// client attached credentials to every request.
type Gateway struct {
	baseURL string
	client  *http.Client
	store   *session.Store
}

func New(baseURL string, store *session.Store) (*Gateway, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Jar: jar},
		store:   store,
	}, nil
}

// RegisterRequest is the flat field set the registration endpoint takes.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type loginResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type sessionResponse struct {
	LoggedIn bool         `json:"logged_in"`
	User     *models.User `json:"user"`
}

// Login calls POST /login. On success the returned user is applied to the
// session store and its mirror; on rejection the store is untouched and
// the service's error text comes back as a *RemoteError.
func (g *Gateway) Login(ctx context.Context, email, password string) (models.User, string, error) {
	seq := g.store.NextSeq()

	body := map[string]string{"email": email, "password": password}
	resp, err := g.post(ctx, "/login", body)
	if err != nil {
		return models.User{}, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.User{}, "", remoteError(resp)
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.User{}, "", fmt.Errorf("failed to decode login response: %w", err)
	}

	if !g.store.Apply(seq, out.User) {
		log.Printf("Login result for %s superseded by a newer auth response", email)
	}
	return out.User, out.Message, nil
}

// Register calls POST /register. The session store is never touched; the
// service's success or error message passes through verbatim.
func (g *Gateway) Register(ctx context.Context, req RegisterRequest) (string, error) {
	resp, err := g.post(ctx, "/register", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", remoteError(resp)
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode register response: %w", err)
	}
	return out.Message, nil
}

// Logout calls POST /logout best-effort. Local state is cleared no matter
// what the remote call does.
func (g *Gateway) Logout(ctx context.Context) {
	seq := g.store.NextSeq()

	resp, err := g.post(ctx, "/logout", struct{}{})
	if err != nil {
		log.Printf("Logout call failed, clearing local session anyway: %v", err)
	} else {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	g.store.Clear(seq)
}

// ProbeSession calls GET /session. An active session applies the returned
// user; any other outcome, transport failure included, clears the store
// and mirror. Failures are logged, never surfaced.
func (g *Gateway) ProbeSession(ctx context.Context) (models.User, bool) {
	seq := g.store.NextSeq()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/session", nil)
	if err != nil {
		g.store.Clear(seq)
		return models.User{}, false
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("Session probe failed, treating as logged out: %v", err)
		g.store.Clear(seq)
		return models.User{}, false
	}
	defer resp.Body.Close()

	var out sessionResponse
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			log.Printf("Could not decode session probe response: %v", err)
		}
	}

	if !out.LoggedIn || out.User == nil {
		g.store.Clear(seq)
		return models.User{}, false
	}

	g.store.Apply(seq, *out.User)
	return *out.User, true
}

func (g *Gateway) post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return g.client.Do(req)
}

func remoteError(resp *http.Response) *RemoteError {
	var out struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Error == "" {
		out.Error = GenericErrorMessage
	}
	return &RemoteError{StatusCode: resp.StatusCode, Message: out.Error}
}
