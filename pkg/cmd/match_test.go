package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesInvocation(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		group string
		want  bool
	}{
		{"no-arg invocation", "&grp run", "grp", true},
		{"with arguments", "&grp run extra", "grp", true},
		{"prefix glued to argument", "&grp runextra", "grp", false},
		{"truncated prefix", "&grp ru", "grp", false},
		{"wrong bot prefix", "!grp run", "grp", false},
		{"standalone no-arg", "&run", "", true},
		{"standalone with args", "&run a b", "", true},
		{"standalone glued", "&runx", "", false},
		{"empty input", "", "grp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesInvocation(tt.raw, "&", tt.group, "run")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripInvocation(t *testing.T) {
	rest, err := StripInvocation("&grp run a \"b c\"", "&", "grp", "run")
	require.NoError(t, err)
	assert.Equal(t, `a "b c"`, rest)

	rest, err = StripInvocation("&grp run", "&", "grp", "run")
	require.NoError(t, err)
	assert.Equal(t, "", rest)

	rest, err = StripInvocation("&run pong", "&", "", "run")
	require.NoError(t, err)
	assert.Equal(t, "pong", rest)

	_, err = StripInvocation("&gr", "&", "grp", "run")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
