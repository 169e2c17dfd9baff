package mntopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Keywords(t *testing.T) {
	tests := []struct {
		token string
		want  Opt
	}{
		{"rw", Opt{Kind: KindWrite, On: true}},
		{"ro", Opt{Kind: KindWrite, On: false}},
		{"nosuid", Opt{Kind: KindSuid, On: false}},
		{"nodev", Opt{Kind: KindDev, On: false}},
		{"noexec", Opt{Kind: KindExec, On: false}},
		{"sync", Opt{Kind: KindSync, On: true}},
		{"noatime", Opt{Kind: KindAtime, On: false}},
		{"nodiratime", Opt{Kind: KindDirAtime, On: false}},
		{"relatime", Opt{Kind: KindRelAtime, On: true}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Extra(t *testing.T) {
	got, err := Parse("errors=continue")
	require.NoError(t, err)
	assert.Equal(t, Opt{Kind: KindExtra, Extra: "errors=continue"}, got)

	// unknown bare words are extras too, not errors
	got, err = Parse("lazytime")
	require.NoError(t, err)
	assert.Equal(t, Opt{Kind: KindExtra, Extra: "lazytime"}, got)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestString_RoundTrip(t *testing.T) {
	for _, token := range []string{"rw", "ro", "nosuid", "noexec", "relatime", "data=ordered"} {
		opt, err := Parse(token)
		require.NoError(t, err)
		assert.Equal(t, token, opt.String())
	}
}

func TestJoin(t *testing.T) {
	opts := []Opt{
		{Kind: KindWrite, On: true},
		{Kind: KindAtime, On: false},
		{Kind: KindExtra, Extra: "errors=continue"},
	}
	assert.Equal(t, "rw,noatime,errors=continue", Join(opts))
	assert.Equal(t, "", Join(nil))
}

func TestMarshalText(t *testing.T) {
	opt, err := Parse("noexec")
	require.NoError(t, err)

	text, err := opt.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "noexec", string(text))
}
