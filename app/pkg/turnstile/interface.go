package turnstile

import (
	"context"
)

// VerifyResponse mirrors the siteverify JSON body. Only Success drives control flow;
// the rest is diagnostics kept for server-side logs.
type VerifyResponse struct {
	Success     *bool    `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
	Action      string   `json:"action"`
	CData       string   `json:"cdata"`
}

// Result is the outcome of one verification call.
type Result struct {
	Success    bool
	Hostname   string
	ErrorCodes []string
}

type Verifier interface {
	// Verify checks a client token. remoteIP may be empty when the caller address is unknown.
	Verify(ctx context.Context, token, remoteIP string) (Result, error)
}
