/*
 * Copyright (c) 2018 Miguel Ángel Ortuño.
 * See the LICENSE file for more information.
 */

package oauth

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ortuman/xoauth2/transport"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

// GoogleTokenURL is the token endpoint used by Google Talk X-OAUTH2 clients.
const GoogleTokenURL = "https://accounts.google.com/o/oauth2/token"

const maxResponseBodySize = 1 << 20

// Endpoint is the default token endpoint. Client credentials travel in the request body.
var Endpoint = oauth2.Endpoint{
	TokenURL:  GoogleTokenURL,
	AuthStyle: oauth2.AuthStyleInParams,
}

// Refresher exchanges a refresh token for a new access token over a given transport.
type Refresher interface {
	Refresh(ctx context.Context, tr *transport.Transport, creds *Credentials) (*oauth2.Token, error)
}

// HTTPRefresher performs the OAuth2 refresh token grant against a token endpoint.
type HTTPRefresher struct {
	endpoint oauth2.Endpoint
}

// NewHTTPRefresher returns a refresher targeting endpoint.
// An empty token URL falls back to the default endpoint.
func NewHTTPRefresher(endpoint oauth2.Endpoint) *HTTPRefresher {
	if len(endpoint.TokenURL) == 0 {
		endpoint.TokenURL = Endpoint.TokenURL
	}
	return &HTTPRefresher{endpoint: endpoint}
}

// Refresh satisfies Refresher interface.
func (r *HTTPRefresher) Refresh(ctx context.Context, tr *transport.Transport, creds *Credentials) (*oauth2.Token, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	req, err := r.newRequest(ctx, creds)
	if err != nil {
		return nil, err
	}
	resp, err := tr.Do(req)
	if err != nil {
		return nil, &TransportError{Transport: tr.Kind(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, &TransportError{Transport: tr.Kind(), Err: errors.Wrap(err, "reading token response")}
	}
	return parseTokenResponse(tr.Kind(), resp, body, creds.RefreshToken)
}

func (r *HTTPRefresher) newRequest(ctx context.Context, creds *Credentials) (*http.Request, error) {
	v := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {creds.RefreshToken},
	}
	if r.endpoint.AuthStyle != oauth2.AuthStyleInHeader {
		v.Set("client_id", creds.ClientID)
		v.Set("client_secret", creds.ClientSecret)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint.TokenURL, strings.NewReader(v.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "oauth: building token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if r.endpoint.AuthStyle == oauth2.AuthStyleInHeader {
		req.SetBasicAuth(url.QueryEscape(creds.ClientID), url.QueryEscape(creds.ClientSecret))
	}
	return req, nil
}

func parseTokenResponse(kind transport.Kind, resp *http.Response, body []byte, refreshToken string) (*oauth2.Token, error) {
	code, desc, uri, isOAuthErr := parseTokenError(body)

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, &TransportError{Transport: kind, Err: errors.Errorf("token endpoint status %d", resp.StatusCode)}

	case isOAuthErr:
		return nil, &TokenRejectedError{
			Transport:   kind,
			StatusCode:  resp.StatusCode,
			Code:        code,
			Description: desc,
			URI:         uri,
			Err: &oauth2.RetrieveError{
				Response:         resp,
				Body:             body,
				ErrorCode:        code,
				ErrorDescription: desc,
				ErrorURI:         uri,
			},
		}

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &TransportError{Transport: kind, Err: errors.Errorf("token endpoint status %d", resp.StatusCode)}
	}

	if !gjson.ValidBytes(body) {
		return nil, &TransportError{Transport: kind, Err: errors.New("malformed token response")}
	}
	res := gjson.ParseBytes(body)

	accessToken := strings.TrimSpace(res.Get("access_token").String())
	if len(accessToken) == 0 {
		return nil, &EmptyTokenError{Transport: kind, StatusCode: resp.StatusCode}
	}
	tok := &oauth2.Token{
		AccessToken:  accessToken,
		TokenType:    res.Get("token_type").String(),
		RefreshToken: refreshToken,
	}
	// the endpoint may rotate the refresh token
	if rt := res.Get("refresh_token").String(); len(rt) > 0 {
		tok.RefreshToken = rt
	}
	if expiresIn := res.Get("expires_in").Int(); expiresIn > 0 {
		tok.Expiry = time.Now().Add(time.Duration(expiresIn) * time.Second)
	}
	return tok, nil
}

// parseTokenError extracts an RFC 6749 §5.2 error, or the nested Google API
// error object, from a token endpoint response body.
func parseTokenError(body []byte) (code, desc, uri string, ok bool) {
	if !gjson.ValidBytes(body) {
		return "", "", "", false
	}
	res := gjson.ParseBytes(body)
	e := res.Get("error")

	switch {
	case e.Type == gjson.String:
		code = e.String()
		desc = res.Get("error_description").String()
		uri = res.Get("error_uri").String()

	case e.IsObject():
		code = e.Get("status").String()
		if len(code) == 0 {
			code = e.Get("code").String()
		}
		desc = e.Get("message").String()
	}
	return code, desc, uri, len(code) > 0
}
