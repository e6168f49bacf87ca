package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/auth"
)

const testPassword = "test-password-123"

// doRequest sends body as JSON, when not nil, with the session token, when set.
func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) registerAndLogin(ctx context.Context, username string) (int, string) {
	t := s.T()
	creds := map[string]string{"username": username, "password": testPassword}

	status, body := s.doRequest(ctx, "POST", "/a/register", "", creds)
	require.Equal(t, http.StatusCreated, status, string(body))
	var registered auth.LoginResponse
	require.NoError(t, json.Unmarshal(body, &registered))

	status, body = s.doRequest(ctx, "POST", "/a/login", "", creds)
	require.Equal(t, http.StatusOK, status, string(body))
	var loginResp auth.LoginResponse
	require.NoError(t, json.Unmarshal(body, &loginResp))
	require.NotEmpty(t, loginResp.Token)

	return registered.UserID, loginResp.Token
}

func (s *IntegrationTestSuite) TestAuth() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, token := s.registerAndLogin(ctx, "auth-user")

	status, _ := s.doRequest(ctx, "POST", "/a/register", "", map[string]string{
		"username": "auth-user", "password": testPassword,
	})
	require.Equal(t, http.StatusConflict, status, "duplicate username")

	status, _ = s.doRequest(ctx, "POST", "/a/login", "", map[string]string{
		"username": "auth-user", "password": "wrong-password",
	})
	require.NotEqual(t, http.StatusOK, status)

	status, _ = s.doRequest(ctx, "GET", "/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.doRequest(ctx, "GET", "/profile", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.doRequest(ctx, "POST", "/a/logout", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.doRequest(ctx, "GET", "/profile", token, nil)
	require.Equal(t, http.StatusUnauthorized, status, fmt.Sprintf("token %s still valid after logout", token))
}
