// Package checker probes the configured websites and NTP servers and reports
// one result per target. Probes run strictly one after another; a failing
// target never aborts the run.
package checker

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"checkconnect/internal/configuration"
	"checkconnect/internal/models"
)

type Checker struct {
	cfg     configuration.Config
	timeout time.Duration

	client         *http.Client
	insecureClient *http.Client
}

func New(cfg configuration.Config) *Checker {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = configuration.DefaultTimeout
	}

	return &Checker{
		cfg:            cfg,
		timeout:        timeout,
		client:         newHTTPClient(timeout, false),
		insecureClient: newHTTPClient(timeout, true),
	}
}

// Run probes every configured target in input order, websites first, then
// NTP servers, and returns exactly one CheckResult per target.
func (c *Checker) Run(ctx context.Context) []models.CheckResult {
	results := c.CheckWebsites(ctx, nil)
	return append(results, c.CheckNTPServers(ctx, nil)...)
}

// CheckWebsites probes the configured websites in input order. onResult, when
// non-nil, is called after each probe completes.
func (c *Checker) CheckWebsites(ctx context.Context, onResult func(models.CheckResult)) []models.CheckResult {
	results := make([]models.CheckResult, 0, len(c.cfg.Websites))
	for _, website := range c.cfg.Websites {
		results = append(results, c.observe(c.CheckWebsite(ctx, website), onResult))
	}

	return results
}

// CheckNTPServers probes the configured NTP servers in input order.
func (c *Checker) CheckNTPServers(ctx context.Context, onResult func(models.CheckResult)) []models.CheckResult {
	results := make([]models.CheckResult, 0, len(c.cfg.NTPServers))
	for _, server := range c.cfg.NTPServers {
		results = append(results, c.observe(c.CheckNTP(ctx, server), onResult))
	}

	return results
}

func (c *Checker) observe(r models.CheckResult, onResult func(models.CheckResult)) models.CheckResult {
	log.Debug().
		Str("target", r.Target).
		Str("kind", string(r.Kind)).
		Bool("reachable", r.Reachable).
		Int("status_code", r.StatusCode).
		Int64("response_time_ms", r.ResponseTime).
		Str("error", r.Error).
		Msg("probe finished")

	if onResult != nil {
		onResult(r)
	}

	return r
}
