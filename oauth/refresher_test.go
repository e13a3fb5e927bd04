/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package oauth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ortuman/xoauth2/transport"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testCredentials() *Credentials {
	return &Credentials{
		ClientID:     "client-id.apps.googleusercontent.com",
		ClientSecret: "client-secret",
		AccessToken:  "stale-token",
		RefreshToken: "1/refresh-token",
	}
}

func directTransport(t *testing.T, cl *http.Client) *transport.Transport {
	p, err := transport.NewProvider(transport.WithDirectClient(cl))
	require.Nil(t, err)
	return p.Transports()[0]
}

func tokenServer(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPRefresher_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.Nil(t, r.ParseForm())
		require.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		require.Equal(t, "1/refresh-token", r.PostForm.Get("refresh_token"))
		require.Equal(t, "client-id.apps.googleusercontent.com", r.PostForm.Get("client_id"))
		require.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"ya29.fresh","token_type":"Bearer","expires_in":3600}`)
	}))
	defer srv.Close()

	r := NewHTTPRefresher(oauth2.Endpoint{TokenURL: srv.URL})
	tok, err := r.Refresh(context.Background(), directTransport(t, srv.Client()), testCredentials())
	require.Nil(t, err)
	require.Equal(t, "ya29.fresh", tok.AccessToken)
	require.Equal(t, "Bearer", tok.TokenType)
	require.Equal(t, "1/refresh-token", tok.RefreshToken)
	require.WithinDuration(t, time.Now().Add(time.Hour), tok.Expiry, time.Minute)
}

func TestHTTPRefresher_RotatedRefreshToken(t *testing.T) {
	srv := tokenServer(t, http.StatusOK, `{"access_token":"ya29.fresh","refresh_token":"1/rotated"}`)

	r := NewHTTPRefresher(oauth2.Endpoint{TokenURL: srv.URL})
	tok, err := r.Refresh(context.Background(), directTransport(t, srv.Client()), testCredentials())
	require.Nil(t, err)
	require.Equal(t, "1/rotated", tok.RefreshToken)
}

func TestHTTPRefresher_AuthInHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, secret, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "client-id.apps.googleusercontent.com", id)
		require.Equal(t, "client-secret", secret)
		require.Nil(t, r.ParseForm())
		require.Empty(t, r.PostForm.Get("client_secret"))
		_, _ = io.WriteString(w, `{"access_token":"ya29.fresh"}`)
	}))
	defer srv.Close()

	r := NewHTTPRefresher(oauth2.Endpoint{TokenURL: srv.URL, AuthStyle: oauth2.AuthStyleInHeader})
	_, err := r.Refresh(context.Background(), directTransport(t, srv.Client()), testCredentials())
	require.Nil(t, err)
}

func TestHTTPRefresher_EmptyToken(t *testing.T) {
	for _, body := range []string{`{}`, `{"access_token":""}`, `{"access_token":"   "}`, `{"token_type":"Bearer"}`} {
		srv := tokenServer(t, http.StatusOK, body)

		r := NewHTTPRefresher(oauth2.Endpoint{TokenURL: srv.URL})
		tok, err := r.Refresh(context.Background(), directTransport(t, srv.Client()), testCredentials())
		require.Nil(t, tok)

		var ete *EmptyTokenError
		require.True(t, errors.As(err, &ete), body)
		require.Equal(t, http.StatusOK, ete.StatusCode)
	}
}

func TestHTTPRefresher_TokenRejected(t *testing.T) {
	srv := tokenServer(t, http.StatusBadRequest,
		`{"error":"invalid_grant","error_description":"Token has been expired or revoked.","error_uri":"https://developers.google.com/identity"}`)

	r := NewHTTPRefresher(oauth2.Endpoint{TokenURL: srv.URL})
	_, err := r.Refresh(context.Background(), directTransport(t, srv.Client()), testCredentials())

	var tre *TokenRejectedError
	require.True(t, errors.As(err, &tre))
	require.Equal(t, "invalid_grant", tre.Code)
	require.Equal(t, "Token has been expired or revoked.", tre.Description)
	require.Equal(t, "https://developers.google.com/identity", tre.URI)
	require.Equal(t, http.StatusBadRequest, tre.StatusCode)
	require.Equal(t, transport.Direct, tre.Transport)

	var re *oauth2.RetrieveError
	require.True(t, errors.As(err, &re))
	require.Equal(t, "invalid_grant", re.ErrorCode)
	require.True(t, IsTokenRejected(err))
}

func TestHTTPRefresher_NestedGoogleError(t *testing.T) {
	srv := tokenServer(t, http.StatusUnauthorized, `{"error":{"code":401,"message":"Request had invalid authentication credentials.","status":"UNAUTHENTICATED"}}`)

	r := NewHTTPRefresher(oauth2.Endpoint{TokenURL: srv.URL})
	_, err := r.Refresh(context.Background(), directTransport(t, srv.Client()), testCredentials())

	var tre *TokenRejectedError
	require.True(t, errors.As(err, &tre))
	require.Equal(t, "UNAUTHENTICATED", tre.Code)
	require.Equal(t, "Request had invalid authentication credentials.", tre.Description)
}

func TestHTTPRefresher_ErrorOnSuccessStatus(t *testing.T) {
	srv := tokenServer(t, http.StatusOK, `{"error":"invalid_client"}`)

	r := NewHTTPRefresher(oauth2.Endpoint{TokenURL: srv.URL})
	_, err := r.Refresh(context.Background(), directTransport(t, srv.Client()), testCredentials())
	require.True(t, IsTokenRejected(err))
}

func TestHTTPRefresher_ServerFailure(t *testing.T) {
	for _, tc := range []struct {
		status int
		body   string
	}{
		{http.StatusBadGateway, `<html>bad gateway</html>`},
		{http.StatusServiceUnavailable, `{"error":"temporarily_unavailable"}`},
		{http.StatusForbidden, `<html>blocked by firewall</html>`},
		{http.StatusOK, `not json`},
	} {
		srv := tokenServer(t, tc.status, tc.body)

		r := NewHTTPRefresher(oauth2.Endpoint{TokenURL: srv.URL})
		_, err := r.Refresh(context.Background(), directTransport(t, srv.Client()), testCredentials())

		var te *TransportError
		require.True(t, errors.As(err, &te), tc.body)
		require.Equal(t, transport.Direct, te.Transport)
	}
}

func TestHTTPRefresher_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	r := NewHTTPRefresher(oauth2.Endpoint{TokenURL: url})
	_, err := r.Refresh(context.Background(), directTransport(t, &http.Client{}), testCredentials())

	var te *TransportError
	require.True(t, errors.As(err, &te))
	require.NotNil(t, te.Unwrap())
}

func TestHTTPRefresher_IncompleteCredentials(t *testing.T) {
	r := NewHTTPRefresher(oauth2.Endpoint{})
	creds := testCredentials()
	creds.RefreshToken = ""

	_, err := r.Refresh(context.Background(), directTransport(t, &http.Client{}), creds)
	require.Equal(t, ErrIncompleteCredentials, err)
}

func TestNewHTTPRefresher_DefaultEndpoint(t *testing.T) {
	r := NewHTTPRefresher(oauth2.Endpoint{})
	require.Equal(t, "https://accounts.google.com/o/oauth2/token", r.endpoint.TokenURL)
}

func TestCredentials_String(t *testing.T) {
	creds := testCredentials()
	s := creds.String()
	require.Contains(t, s, "client-id.apps.googleusercontent.com")
	require.NotContains(t, s, "client-secret")
	require.NotContains(t, s, "refresh-token")
	require.NotContains(t, s, "stale-token")
}
