package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommunicationUnreadCount(t *testing.T) {
	c := &Communication{RecipientCount: 10, ReadCount: 4}
	assert.Equal(t, 6, c.UnreadCount())

	c = &Communication{RecipientCount: 3, ReadCount: 3}
	assert.Equal(t, 0, c.UnreadCount())

	// Stale counters never go negative
	c = &Communication{RecipientCount: 2, ReadCount: 5}
	assert.Equal(t, 0, c.UnreadCount())
}
