package confirm

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testState() UserState {
	return UserState{
		ID:    uuid.New(),
		Email: "reader@example.com",
		Role:  "user",
	}
}

func TestMakeAndCheck(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)
	state := testState()

	code := g.Make(state)
	assert.True(t, g.Check(state, code))
}

func TestCheckRejectsWrongCode(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)
	state := testState()
	g.Make(state)

	assert.False(t, g.Check(state, "not-a-code"))
	assert.False(t, g.Check(state, ""))
	assert.False(t, g.Check(state, "1abc2-deadbeef"))
}

func TestCheckRejectsDifferentSecret(t *testing.T) {
	state := testState()
	code := NewGenerator("secret-a", time.Hour).Make(state)

	assert.False(t, NewGenerator("secret-b", time.Hour).Check(state, code))
}

func TestCodeInvalidatedByStateChange(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)
	state := testState()
	code := g.Make(state)

	changedEmail := state
	changedEmail.Email = "other@example.com"
	assert.False(t, g.Check(changedEmail, code))

	changedRole := state
	changedRole.Role = "admin"
	assert.False(t, g.Check(changedRole, code))

	changedID := state
	changedID.ID = uuid.New()
	assert.False(t, g.Check(changedID, code))
}

func TestCheckRejectsExpiredCode(t *testing.T) {
	state := testState()

	// Zero TTL means every code is already expired when checked.
	g := NewGenerator("test-secret", 0)
	code := g.Make(state)

	time.Sleep(10 * time.Millisecond)
	assert.False(t, g.Check(state, code))
}

func TestCheckRejectsTamperedTimestamp(t *testing.T) {
	g := NewGenerator("test-secret", time.Hour)
	state := testState()
	code := g.Make(state)

	tampered := "zzzz-" + code[len(code)-sigLength:]
	assert.False(t, g.Check(state, tampered))
}
