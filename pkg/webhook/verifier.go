// Package webhook verifies signed identity-provider deliveries. The
// scheme is the svix one: HMAC-SHA256 over "id.timestamp.body" with a
// base64 secret, signatures carried as space-separated "v1,<sig>" entries.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// SecretPrefix distinguishes webhook secrets from other credentials.
	SecretPrefix = "whsec_"

	// Tolerance bounds the accepted clock skew between the provider and us.
	Tolerance = 5 * time.Minute
)

var (
	ErrMissingHeaders      = errors.New("missing webhook signature headers")
	ErrInvalidTimestamp    = errors.New("webhook timestamp invalid or outside tolerance")
	ErrNoMatchingSignature = errors.New("no matching webhook signature")
	ErrInvalidSecret       = errors.New("webhook secret is not valid base64")
)

type Verifier struct {
	key []byte
	now func() time.Time
}

// NewVerifier parses a "whsec_"-prefixed base64 secret.
func NewVerifier(secret string) (*Verifier, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, SecretPrefix))
	if err != nil {
		return nil, ErrInvalidSecret
	}
	return &Verifier{key: key, now: time.Now}, nil
}

// Headers extracts the delivery id, timestamp and signature list,
// accepting both the "webhook-*" and "svix-*" header names.
func Headers(h http.Header) (id, timestamp, signature string, err error) {
	pick := func(name string) string {
		if v := h.Get("webhook-" + name); v != "" {
			return v
		}
		return h.Get("svix-" + name)
	}

	id = pick("id")
	timestamp = pick("timestamp")
	signature = pick("signature")
	if id == "" || timestamp == "" || signature == "" {
		return "", "", "", ErrMissingHeaders
	}
	return id, timestamp, signature, nil
}

// Verify checks the timestamp tolerance and matches the computed
// signature against every "v1,<sig>" entry with a constant-time compare.
func (v *Verifier) Verify(id, timestamp, signatures string, body []byte) error {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidTimestamp
	}
	sent := time.Unix(ts, 0)
	now := v.now()
	if sent.Before(now.Add(-Tolerance)) || sent.After(now.Add(Tolerance)) {
		return ErrInvalidTimestamp
	}

	expected := v.Sign(id, timestamp, body)
	for _, entry := range strings.Split(signatures, " ") {
		parts := strings.SplitN(entry, ",", 2)
		if len(parts) != 2 || parts[0] != "v1" {
			continue
		}
		if hmac.Equal([]byte(parts[1]), []byte(expected)) {
			return nil
		}
	}
	return ErrNoMatchingSignature
}

// Sign computes the base64 HMAC for one delivery.
func (v *Verifier) Sign(id, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(id + "." + timestamp + "."))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
