package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Webhook event types emitted by the external payment provider. Only
// checkout completion drives a state transition; everything else is
// acknowledged and ignored.
const EventCheckoutCompleted = "checkout.session.completed"

// SignatureHeader carries the hex HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Webhook-Signature"

// WebhookEvent is the provider's event notification payload
type WebhookEvent struct {
	ID   string           `json:"id"`
	Type string           `json:"type"`
	Data WebhookEventData `json:"data"`
}

// WebhookEventData carries the event object reference
type WebhookEventData struct {
	SessionID string `json:"session_id"`
}

// VerifySignature checks the provider signature over the raw body using a
// constant-time comparison.
func VerifySignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
