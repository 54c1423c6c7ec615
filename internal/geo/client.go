// Package geo resolves a country code from an IP address using an
// ipapi.co compatible HTTP API.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nikolayk812/storefront/internal/port"
)

const (
	DefaultBaseURL = "https://ipapi.co"
	DefaultTimeout = 5 * time.Second

	userAgent = "Bodi-Electronics-App/1.0"
	// responses are tiny; anything bigger is not a lookup answer
	maxBodySize = 64 << 10
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
	}, nil
}

type lookupResponse struct {
	CountryCode string `json:"country_code"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

// LookupCountry returns the country code of ip. An empty ip asks the API
// for the caller's own address.
func (c *Client) LookupCountry(ctx context.Context, ip string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/json/"
	if ip != "" {
		endpoint = c.baseURL + "/" + url.PathEscape(ip) + "/json/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return "", fmt.Errorf("unexpected content type: %q", resp.Header.Get("Content-Type"))
	}

	var body lookupResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return "", fmt.Errorf("json.Decode: %w", err)
	}

	if body.Error {
		return "", fmt.Errorf("lookup error: %s", body.Reason)
	}
	if body.CountryCode == "" {
		return "", fmt.Errorf("country_code is empty")
	}

	return strings.ToUpper(body.CountryCode), nil
}

// Locator binds the client to one caller address.
func (c *Client) Locator(ip string) port.CountryLocator {
	return ipLocator{client: c, ip: ip}
}

type ipLocator struct {
	client *Client
	ip     string
}

func (l ipLocator) LocateCountry(ctx context.Context) (string, error) {
	return l.client.LookupCountry(ctx, l.ip)
}
