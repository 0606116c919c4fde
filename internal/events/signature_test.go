package events

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(t *testing.T, key []byte, id, timestamp string, body []byte) string {
	t.Helper()

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", id, timestamp)
	mac.Write(body)
	return "v1," + base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestSignatureVerifier(t *testing.T) {
	key := []byte("test-signing-key-32-bytes-long!!")
	secret := "whsec_" + base64.StdEncoding.EncodeToString(key)

	v, err := NewSignatureVerifier(secret)
	require.NoError(t, err)

	now := time.Now()
	ts := strconv.FormatInt(now.Unix(), 10)
	body := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)

	t.Run("valid signature", func(t *testing.T) {
		sig := signPayload(t, key, "msg_1", ts, body)
		assert.NoError(t, v.Verify("msg_1", ts, body, sig, now))
	})

	t.Run("multiple signatures, one valid", func(t *testing.T) {
		sig := "v1,Zm9yZ2VyeQ== " + signPayload(t, key, "msg_1", ts, body)
		assert.NoError(t, v.Verify("msg_1", ts, body, sig, now))
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := signPayload(t, key, "msg_1", ts, body)
		err := v.Verify("msg_1", ts, []byte(`{"type":"user.deleted"}`), sig, now)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("wrong delivery id", func(t *testing.T) {
		sig := signPayload(t, key, "msg_1", ts, body)
		assert.ErrorIs(t, v.Verify("msg_2", ts, body, sig, now), ErrInvalidSignature)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		old := now.Add(-10 * time.Minute)
		oldTS := strconv.FormatInt(old.Unix(), 10)
		sig := signPayload(t, key, "msg_1", oldTS, body)
		assert.ErrorIs(t, v.Verify("msg_1", oldTS, body, sig, now), ErrStaleTimestamp)
	})

	t.Run("garbage header", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify("msg_1", ts, body, "nonsense", now), ErrInvalidSignature)
	})
}

func TestNewSignatureVerifier_BadSecret(t *testing.T) {
	_, err := NewSignatureVerifier("whsec_!!!not-base64!!!")
	assert.Error(t, err)
}
