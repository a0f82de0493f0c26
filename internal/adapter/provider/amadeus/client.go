// Package amadeus adapts the Amadeus self-service flight APIs to the
// domain's FlightProvider and OfferPricer ports. The adapter owns OAuth
// token management, retries, and outbound rate limiting; callers see
// normalized offers or an error.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/autorescue/flight-disruption-service/internal/adapter/secrets"
	"github.com/autorescue/flight-disruption-service/internal/domain"
	"github.com/autorescue/flight-disruption-service/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// DefaultBaseURL points at the Amadeus test environment.
const DefaultBaseURL = "https://test.api.amadeus.com"

// tokenSafetyMargin is how long before nominal expiry a token is treated
// as stale. Amadeus tokens last 1799 seconds; refreshing early avoids
// racing the expiry on in-flight requests.
const tokenSafetyMargin = 5 * time.Minute

// client is the authenticated HTTP client shared by the search and
// pricing adapters. The OAuth token lives in a single mutex-guarded cell
// with an expiry; a cached token is reused until the safety margin.
type client struct {
	baseURL     string
	httpClient  *http.Client
	credentials secrets.CredentialSupplier
	clock       timeutil.Clock

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func newClient(baseURL string, httpClient *http.Client, creds secrets.CredentialSupplier, clock timeutil.Clock) *client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  httpClient,
		credentials: creds,
		clock:       clock,
	}
}

// token returns a valid bearer token, fetching a new one when the cached
// token is missing or inside the safety margin.
func (c *client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.accessToken != "" && now.Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	creds, err := c.credentials.AmadeusCredentials(ctx)
	if err != nil {
		return "", fmt.Errorf("obtain credentials: %w", err)
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {creds.ClientID},
		"client_secret": {creds.ClientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewRetryableProviderError(ProviderName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, "token request")
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", domain.NewProviderError(ProviderName, fmt.Errorf("decode token response: %w", err))
	}
	if tok.AccessToken == "" {
		return "", domain.NewProviderError(ProviderName, fmt.Errorf("token response missing access_token"))
	}

	c.accessToken = tok.AccessToken
	c.tokenExpiry = now.Add(time.Duration(tok.ExpiresIn)*time.Second - tokenSafetyMargin)
	return c.accessToken, nil
}

// invalidateToken drops the cached token so the next call refetches it.
// Called after a 401 in case the token was revoked early.
func (c *client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

// get performs an authenticated GET and returns the response body.
func (c *client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	return c.do(req)
}

// post performs an authenticated POST with a JSON body and returns the
// response body. extraHeaders lets the pricing call set its method
// override header.
func (c *client) post(ctx context.Context, path string, body []byte, extraHeaders map[string]string) ([]byte, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	return c.do(req)
}

func (c *client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, domain.NewProviderTimeoutError(ProviderName)
		}
		return nil, domain.NewRetryableProviderError(ProviderName, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateToken()
	}
	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, apiErrorDetail(payload))
	}

	return payload, nil
}

// classifyStatus maps an HTTP status to a ProviderError with the right
// retryability: 429 and 5xx are transient, other non-200s are not.
func classifyStatus(status int, detail string) error {
	err := fmt.Errorf("status %d: %s", status, detail)
	switch {
	case status == http.StatusTooManyRequests:
		return domain.NewRetryableProviderError(ProviderName, err)
	case status >= 500:
		return domain.NewRetryableProviderError(ProviderName, err)
	case status == http.StatusUnauthorized:
		return domain.NewRetryableProviderError(ProviderName, err)
	default:
		return domain.NewProviderError(ProviderName, err)
	}
}

// apiErrorDetail extracts a human-readable detail from an Amadeus error
// payload, falling back to a generic marker.
func apiErrorDetail(payload []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(payload, &apiErr); err == nil && len(apiErr.Errors) > 0 {
		e := apiErr.Errors[0]
		if e.Detail != "" {
			return e.Title + ": " + e.Detail
		}
		return e.Title
	}
	return "provider error"
}
