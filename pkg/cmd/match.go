package cmd

import (
	"fmt"
	"strings"
)

// composedPrefix builds the full invocation prefix: bot prefix, then the group
// prefix and a space when a group is present, then the command prefix.
func composedPrefix(botPrefix, groupPrefix, commandPrefix string) string {
	if groupPrefix == "" {
		return botPrefix + commandPrefix
	}
	return botPrefix + groupPrefix + " " + commandPrefix
}

// MatchesInvocation reports whether raw invokes the command identified by the
// given prefixes: either raw equals the composed prefix exactly (no-argument
// invocation) or it starts with the composed prefix followed by a space. A raw
// input that merely starts with the prefix characters ("&grp runextra") is not
// a match.
func MatchesInvocation(raw, botPrefix, groupPrefix, commandPrefix string) bool {
	want := composedPrefix(botPrefix, groupPrefix, commandPrefix)
	return raw == want || strings.HasPrefix(raw, want+" ")
}

// StripInvocation removes the composed prefix and the single separating space
// from raw, returning the argument string or "" for a no-argument invocation.
// Raw must already have been accepted by MatchesInvocation; an input shorter
// than the prefix fails with ErrInvalidArgument.
func StripInvocation(raw, botPrefix, groupPrefix, commandPrefix string) (string, error) {
	want := composedPrefix(botPrefix, groupPrefix, commandPrefix)
	if len(raw) < len(want) {
		return "", fmt.Errorf("strip prefix: %w: input shorter than prefix %q", ErrInvalidArgument, want)
	}
	if len(raw) == len(want) {
		return "", nil
	}
	return raw[len(want)+1:], nil
}
