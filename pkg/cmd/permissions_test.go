package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name        string
		actor       []string
		required    []string
		blacklisted []string
		want        bool
	}{
		{"no restriction", []string{"A"}, nil, nil, true},
		{"all required held", []string{"A", "B"}, []string{"A", "B"}, nil, true},
		{"missing required role", []string{"A"}, []string{"A", "B"}, nil, false},
		{"blacklist wins over required", []string{"A"}, []string{"A"}, []string{"A"}, false},
		{"blacklisted without required", []string{"X"}, nil, []string{"X"}, false},
		{"unrelated blacklist", []string{"A"}, nil, []string{"X"}, true},
		{"empty actor fails required", nil, []string{"A"}, nil, false},
		{"empty actor passes empty gate", nil, nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.actor, tt.required, tt.blacklisted))
		})
	}
}

func TestEnforce(t *testing.T) {
	reg := NewRegistry("&")
	c, err := New(reg, Options{Name: "Purge", Prefix: "purge"})
	require.NoError(t, err)
	c.RequireRoles("mod")

	replier := &captureReplier{}
	ev := &MessageEvent{
		Content: "&purge",
		Actor:   Actor{ID: "1", Name: "someone"},
		Replier: replier,
	}

	err = c.Enforce(ev)
	require.ErrorIs(t, err, ErrPermissionDenied)
	require.Len(t, replier.replies, 1)
	assert.Equal(t, "Role Permission Error", replier.replies[0].Title)
	assert.Equal(t, ColorError, replier.replies[0].Color)
	assert.Contains(t, replier.replies[0].Body, "`mod`")

	ev.Actor.Roles = []string{"mod"}
	require.NoError(t, c.Enforce(ev))
	assert.Len(t, replier.replies, 1, "success must produce no side effect")
}

func TestEnforceCustomFailAction(t *testing.T) {
	reg := NewRegistry("&")
	c, err := New(reg, Options{Name: "Purge", Prefix: "purge"})
	require.NoError(t, err)
	c.BlacklistRoles("banned")

	var called bool
	require.NoError(t, c.SetOnPermissionFail(func(ev Event) error {
		called = true
		return nil
	}))
	require.Error(t, c.SetOnPermissionFail(nil))

	ev := &MessageEvent{Actor: Actor{Roles: []string{"banned"}}}
	require.ErrorIs(t, c.Enforce(ev), ErrPermissionDenied)
	assert.True(t, called)
}
