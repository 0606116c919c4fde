package events

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const signatureTolerance = 5 * time.Minute

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrStaleTimestamp   = errors.New("webhook timestamp outside tolerance")
)

// SignatureVerifier checks the provider's webhook signatures. The provider
// signs "<id>.<timestamp>.<body>" with HMAC-SHA256 and sends one or more
// base64 signatures as "v1,<sig>" entries in the signature header.
type SignatureVerifier struct {
	key []byte
}

func NewSignatureVerifier(secret string) (*SignatureVerifier, error) {
	raw := strings.TrimPrefix(secret, "whsec_")
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook signing secret: %w", err)
	}
	return &SignatureVerifier{key: key}, nil
}

// Verify validates the signature header for one delivery. The timestamp is
// bounded to reject replayed captures.
func (v *SignatureVerifier) Verify(id, timestamp string, body []byte, sigHeader string, now time.Time) error {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad timestamp", ErrInvalidSignature)
	}

	delta := now.Sub(time.Unix(ts, 0))
	if delta > signatureTolerance || delta < -signatureTolerance {
		return ErrStaleTimestamp
	}

	mac := hmac.New(sha256.New, v.key)
	fmt.Fprintf(mac, "%s.%s.", id, timestamp)
	mac.Write(body)
	expected := mac.Sum(nil)

	for _, entry := range strings.Fields(sigHeader) {
		version, sig, found := strings.Cut(entry, ",")
		if !found || version != "v1" {
			continue
		}

		decoded, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return ErrInvalidSignature
}
