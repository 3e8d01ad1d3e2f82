package checker

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/beevik/ntp"

	"checkconnect/internal/models"
)

const defaultNTPPort = 123

// CheckNTP sends a single time query to server and waits up to the configured
// timeout for a well-formed reply. The server may carry an explicit port
// ("host:port"); otherwise the standard NTP port is used. Any failure (DNS,
// no response, malformed reply) collapses into Reachable=false.
func (c *Checker) CheckNTP(ctx context.Context, server string) models.CheckResult {
	result := models.CheckResult{
		Target:    server,
		Kind:      models.KindNTPServer,
		CheckedAt: time.Now(),
	}

	host := server
	port := defaultNTPPort
	if h, p, err := net.SplitHostPort(server); err == nil {
		if n, err := strconv.Atoi(p); err == nil {
			host = h
			port = n
		}
	}

	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result
	}

	start := time.Now()
	_, err := ntp.QueryWithOptions(host, ntp.QueryOptions{
		Timeout: c.timeout,
		Port:    port,
	})
	result.ResponseTime = time.Since(start).Milliseconds()
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Reachable = true

	return result
}
