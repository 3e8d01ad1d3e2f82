package checker

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"time"

	"checkconnect/internal/models"
)

// newHTTPClient builds the client shared by all website probes. Redirects are
// not followed; a redirect status already proves the endpoint is reachable.
func newHTTPClient(timeout time.Duration, skipTLSVerify bool) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: skipTLSVerify},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// CheckWebsite issues a GET against rawURL bounded by the configured timeout.
// The target counts as reachable when the response status is below 400.
// Transport errors, DNS failures and timeouts never escape; they collapse
// into Reachable=false.
func (c *Checker) CheckWebsite(ctx context.Context, rawURL string) models.CheckResult {
	result := models.CheckResult{
		Target:    rawURL,
		Kind:      models.KindWebsite,
		CheckedAt: time.Now(),
	}

	client := c.client
	if isIPAddress(rawURL) {
		// Certificates are not issued for bare IPs.
		client = c.insecureClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start).Milliseconds()
	if err != nil {
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Reachable = resp.StatusCode < http.StatusBadRequest

	return result
}

func isIPAddress(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	return net.ParseIP(u.Hostname()) != nil
}
