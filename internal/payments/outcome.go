package payments

import (
	cryptorand "crypto/rand"
	"math/big"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// RandomOutcomeDecider approves a simulated online authorization with a
// fixed probability. This stands in for a real gateway integration and is
// deliberately not cryptographically secure; it is a simulation, not a
// security control.
type RandomOutcomeDecider struct {
	successRate float64
	mu          sync.Mutex
	rng         *rand.Rand
}

// NewRandomOutcomeDecider creates a decider with the given success rate in
// [0, 1].
func NewRandomOutcomeDecider(successRate float64) *RandomOutcomeDecider {
	return &RandomOutcomeDecider{
		successRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Approve decides one authorization attempt, independently per call
func (d *RandomOutcomeDecider) Approve() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Float64() < d.successRate
}

// StaticOutcomeDecider always returns the same outcome. Used by tests to
// force deterministic success or failure.
type StaticOutcomeDecider struct {
	Outcome bool
}

// Approve returns the configured outcome
func (d *StaticOutcomeDecider) Approve() bool {
	return d.Outcome
}

const transactionIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTransactionID generates a human-readable transaction id of the form
// TXN<unix-millis><9 random uppercase alphanumerics>. Uniqueness holds with
// overwhelming probability; the exact charset is not a compatibility
// contract.
func NewTransactionID() string {
	return "TXN" + strconv.FormatInt(time.Now().UnixMilli(), 10) + randomToken(9)
}

// NewCheckoutSessionID generates an opaque id for a hosted checkout session
func NewCheckoutSessionID() string {
	return "cs_" + randomToken(24)
}

// randomToken returns n random characters from the transaction id charset
func randomToken(n int) string {
	token := make([]byte, n)
	max := big.NewInt(int64(len(transactionIDCharset)))
	for i := range token {
		num, err := cryptorand.Int(cryptorand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform entropy source is
			// broken; fall back to the non-secure generator.
			token[i] = transactionIDCharset[rand.Intn(len(transactionIDCharset))]
			continue
		}
		token[i] = transactionIDCharset[num.Int64()]
	}
	return string(token)
}
