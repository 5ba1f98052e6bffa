package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	secret := "whsec_test"

	assert.True(t, VerifySignature(body, sign(body, secret), secret))
}

func TestVerifySignature_Rejections(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)
	secret := "whsec_test"

	assert.False(t, VerifySignature(body, sign(body, "other-secret"), secret))
	assert.False(t, VerifySignature(body, "not-a-mac", secret))
	assert.False(t, VerifySignature(body, "", secret))
	assert.False(t, VerifySignature(body, sign(body, secret), ""))

	// Signature over different bytes does not transfer
	assert.False(t, VerifySignature([]byte(`{"id":"evt_2"}`), sign(body, secret), secret))
}

func TestWebhookEvent_Decode(t *testing.T) {
	raw := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"session_id":"cs_ABC"}}`)

	var event WebhookEvent
	assert.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, EventCheckoutCompleted, event.Type)
	assert.Equal(t, "cs_ABC", event.Data.SessionID)
}
