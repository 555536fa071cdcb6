// Package confirm issues and checks signup confirmation codes.
//
// Codes are never stored. A code is an HMAC over a snapshot of the user's
// attributes plus the issuance timestamp, so it self-invalidates as soon
// as any of the referenced attributes change, and expires after the
// configured TTL.
package confirm

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const sigLength = 32 // hex chars of the HMAC kept in the code

// UserState is the attribute snapshot a code is bound to.
type UserState struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// Generator makes and checks confirmation codes with a shared secret.
type Generator struct {
	secret []byte
	ttl    time.Duration
}

func NewGenerator(secret string, ttl time.Duration) *Generator {
	return &Generator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Make returns a code of the form "<timestamp-base36>-<signature>".
func (g *Generator) Make(state UserState) string {
	ts := time.Now().Unix()
	return fmt.Sprintf("%s-%s", strconv.FormatInt(ts, 36), g.sign(state, ts))
}

// Check reports whether code was issued for state and has not expired.
func (g *Generator) Check(state UserState, code string) bool {
	tsPart, sigPart, ok := strings.Cut(code, "-")
	if !ok {
		return false
	}

	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return false
	}

	issued := time.Unix(ts, 0)
	if issued.After(time.Now()) {
		return false
	}
	if time.Since(issued) > g.ttl {
		return false
	}

	return hmac.Equal([]byte(sigPart), []byte(g.sign(state, ts)))
}

func (g *Generator) sign(state UserState, ts int64) string {
	mac := hmac.New(sha256.New, g.secret)
	fmt.Fprintf(mac, "%s|%s|%s|%d", state.ID, state.Email, state.Role, ts)
	return hex.EncodeToString(mac.Sum(nil))[:sigLength]
}
