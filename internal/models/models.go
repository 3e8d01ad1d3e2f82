package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Kind identifies which probe produced a CheckResult.
type Kind string

const (
	KindWebsite   Kind = "website"
	KindNTPServer Kind = "ntp_server"
)

// CheckResult is the outcome of a single reachability probe.
type CheckResult struct {
	Target       string    `json:"target"`
	Kind         Kind      `json:"kind"`
	Reachable    bool      `json:"reachable"`
	StatusCode   int       `json:"status_code,omitempty"`
	ResponseTime int64     `json:"response_time,omitempty"` // in milliseconds
	Error        string    `json:"error,omitempty"`
	CheckedAt    time.Time `json:"checked_at"`
}

// Status renders the console form of the result.
func (r CheckResult) Status() string {
	if r.Reachable {
		return "OK"
	}
	return "FAIL"
}

// Summary aggregates a full probe run.
type Summary struct {
	Total     int `json:"total"`
	Reachable int `json:"reachable"`
	Failed    int `json:"failed"`
}

func Summarize(results []CheckResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Reachable {
			s.Reachable++
		} else {
			s.Failed++
		}
	}
	return s
}

type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (r Response) Print() {
	data, err := json.Marshal(r)

	if err != nil {
		log.Error().Err(err).Msg("error serializing response")
		return
	}

	fmt.Println(string(data))
}
