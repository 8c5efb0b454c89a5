package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotification_Expired(t *testing.T) {
	n := New(LevelInfo, "hello")
	assert.Equal(t, LevelInfo, n.Level)

	assert.False(t, n.Expired(n.CreatedAt.Add(time.Second), 3*time.Second))
	assert.True(t, n.Expired(n.CreatedAt.Add(3*time.Second), 3*time.Second))
}
