package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialFailureMessage(t *testing.T) {
	msg := PartialFailureMessage("u1/1700000000000-abc.jpg")
	assert.Equal(t, "persisted partial failure: pending u1/1700000000000-abc.jpg", msg)

	path, ok := PendingPathFromMessage(msg)
	assert.True(t, ok)
	assert.Equal(t, "u1/1700000000000-abc.jpg", path)

	_, ok = PendingPathFromMessage("something else")
	assert.False(t, ok)
	_, ok = PendingPathFromMessage(PartialFailureMessage(""))
	assert.False(t, ok)
}
