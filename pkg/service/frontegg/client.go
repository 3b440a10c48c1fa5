package frontegg

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bulkuser/pkg/domain/model"
	"github.com/secmon-lab/bulkuser/pkg/domain/types"
)

// Client talks to the Frontegg vendor and identity APIs.
// Authenticate must be called before any user operation.
type Client struct {
	gatewayURL  string
	identityURL string
	clientID    string
	apiToken    string
	httpClient  *http.Client
	bearerToken string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURLs overrides the region-derived gateway and identity base URLs
func WithBaseURLs(gateway, identity string) Option {
	return func(c *Client) {
		c.gatewayURL = gateway
		c.identityURL = identity
	}
}

// New creates a client for the given region and vendor credentials
func New(region types.Region, clientID, apiToken string, opts ...Option) *Client {
	c := &Client{
		gatewayURL:  region.GatewayURL(),
		identityURL: region.IdentityURL(),
		clientID:    clientID,
		apiToken:    apiToken,
		httpClient:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type authRequest struct {
	ClientID string `json:"clientId"`
	Secret   string `json:"secret"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Authenticate exchanges the vendor credentials for a bearer token at
// POST <gateway>/auth/vendor/ and stores it for subsequent calls
func (c *Client) Authenticate(ctx context.Context) error {
	ctxlog.From(ctx).Debug("authenticating with Frontegg", "gateway", c.gatewayURL)

	body, err := json.Marshal(authRequest{ClientID: c.clientID, Secret: c.apiToken})
	if err != nil {
		return goerr.Wrap(err, "failed to encode auth request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.gatewayURL+"/auth/vendor/", bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to build auth request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(model.ErrAuthenticationFailed, err.Error())
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return goerr.Wrap(model.ErrAuthenticationFailed, "unexpected status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)))
	}

	var payload authResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return goerr.Wrap(model.ErrAuthenticationFailed, "malformed auth response",
			goerr.V("body", string(raw)))
	}
	if payload.Token == "" {
		return goerr.Wrap(model.ErrAuthenticationFailed, "empty token in auth response")
	}

	c.bearerToken = payload.Token
	return nil
}

type lookupResponse struct {
	ID string `json:"id"`
}

// LookupUserByEmail resolves an email address via
// GET <identity>/resources/users/v1/email?email=<email>
func (c *Client) LookupUserByEmail(ctx context.Context, email types.Email) (types.UserID, error) {
	endpoint := c.identityURL + "/resources/users/v1/email?" +
		url.Values{"email": []string{email.String()}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build lookup request")
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", transportErr(err, "email lookup failed")
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", goerr.Wrap(model.ErrUserNotFound, "no account for email",
			goerr.V("email", email.String()))
	case resp.StatusCode != http.StatusOK:
		return "", statusErr(resp.StatusCode, raw, "email lookup returned error",
			goerr.V("email", email.String()))
	}

	var payload lookupResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", goerr.Wrap(err, "malformed lookup response", goerr.V("body", string(raw)))
	}
	if !types.IsUserID(payload.ID) {
		return "", goerr.New("lookup response has no canonical user ID",
			goerr.V("email", email.String()),
			goerr.V("id", payload.ID))
	}
	return types.UserID(payload.ID), nil
}

// LockUser issues POST <identity>/resources/users/v1/<id>/lock
func (c *Client) LockUser(ctx context.Context, userID types.UserID) error {
	endpoint := c.identityURL + "/resources/users/v1/" + userID.String() + "/lock"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return goerr.Wrap(err, "failed to build lock request")
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportErr(err, "lock request failed")
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return statusErr(resp.StatusCode, raw, "lock returned error",
			goerr.V("userID", userID.String()))
	}
	return nil
}

// DeleteUser issues DELETE <identity>/resources/users/v1/<id>. A non-empty
// tenant is attached as the frontegg-tenant-id header, constraining the
// removal to that tenant; without it the deletion is global.
func (c *Client) DeleteUser(ctx context.Context, userID types.UserID, tenant types.TenantID) error {
	endpoint := c.identityURL + "/resources/users/v1/" + userID.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build delete request")
	}
	c.setHeaders(req)
	if !tenant.IsEmpty() {
		req.Header.Set("frontegg-tenant-id", tenant.String())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportErr(err, "delete request failed")
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return statusErr(resp.StatusCode, raw, "delete returned error",
			goerr.V("userID", userID.String()))
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
}

// transportErr wraps a network-level failure as retryable
func transportErr(err error, msg string) error {
	return goerr.Wrap(err, msg, goerr.T(model.ErrTagRetryable))
}

// statusErr classifies a non-2xx response: 429 and 5xx are transient,
// everything else is terminal
func statusErr(status int, body []byte, msg string, values ...goerr.Option) error {
	values = append(values,
		goerr.V("status", status),
		goerr.V("body", string(body)))
	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		values = append(values, goerr.T(model.ErrTagRetryable))
	}
	return goerr.New(msg, values...)
}
