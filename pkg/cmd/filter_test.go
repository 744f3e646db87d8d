package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureReplier records replies for assertions.
type captureReplier struct {
	replies []*Reply
}

func (r *captureReplier) Send(reply *Reply) error {
	r.replies = append(r.replies, reply)
	return nil
}

func TestNewFilterEntryRejectsNilAction(t *testing.T) {
	_, err := NewFilterEntry(KindMessage, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNotifyKindMismatch(t *testing.T) {
	fired := 0
	entry, err := NewFilterEntry(Kind("reaction"), func(Event) error {
		fired++
		return nil
	})
	require.NoError(t, err)

	ok, err := entry.Notify(&MessageEvent{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, fired)
}

func TestNotifyEmptyFiltersAlwaysFires(t *testing.T) {
	fired := 0
	entry, err := NewFilterEntry(KindMessage, func(Event) error {
		fired++
		return nil
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		ok, err := entry.Notify(&MessageEvent{})
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 3, fired)
}

func TestNotifyShortCircuitsOnFailingFilter(t *testing.T) {
	secondRan := false
	entry, err := NewFilterEntry(KindMessage,
		func(Event) error { t.Fatal("action must not fire"); return nil },
		func(Event) bool { return false },
		func(Event) bool { secondRan = true; return true },
	)
	require.NoError(t, err)

	ok, err := entry.Notify(&MessageEvent{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, secondRan)
}

func TestNotifyReturnsActionError(t *testing.T) {
	boom := errors.New("boom")
	entry, err := NewFilterEntry(KindMessage, func(Event) error { return boom })
	require.NoError(t, err)

	ok, err := entry.Notify(&MessageEvent{})
	assert.True(t, ok)
	require.ErrorIs(t, err, boom)
}

func TestAddFilter(t *testing.T) {
	entry, err := NewFilterEntry(KindMessage, func(Event) error { return nil })
	require.NoError(t, err)

	ok, _ := entry.Notify(&MessageEvent{})
	require.True(t, ok)

	entry.AddFilter(func(Event) bool { return false })
	ok, _ = entry.Notify(&MessageEvent{})
	assert.False(t, ok)
}

func TestNotBot(t *testing.T) {
	p := NotBot()
	assert.True(t, p(&MessageEvent{Actor: Actor{Bot: false}}))
	assert.False(t, p(&MessageEvent{Actor: Actor{Bot: true}}))
}
