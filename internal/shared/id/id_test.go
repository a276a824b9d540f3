package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNext_UsesClock(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	assert.Equal(t, "1700000000000", Next(now, []string{"1600000000000"}))
}

func TestNext_BumpsPastLatest(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	assert.Equal(t, "1700000000001", Next(now, []string{"1700000000000", "12"}))
	assert.Equal(t, "1700000000006", Next(now, []string{"1700000000005"}))
}

func TestNext_IgnoresForeignIDs(t *testing.T) {
	now := time.UnixMilli(5000)
	assert.Equal(t, "5000", Next(now, []string{"abc", ""}))
}

func TestLess(t *testing.T) {
	assert.True(t, Less("999", "1000"))
	assert.False(t, Less("1000", "999"))
	assert.True(t, Less("abc", "abd"))
}

func TestNewEventID_Unique(t *testing.T) {
	assert.NotEqual(t, NewEventID(), NewEventID())
}
