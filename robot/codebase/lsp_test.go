package codebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoverText(t *testing.T) {
	c := newTestCodebase(t, nil)
	c.UpdateFile("/ws/suite.robot", []byte(suiteText))
	c.UpdateFile("/ws/lib/common.resource", []byte(resourceText))

	call := c.TokenAt("/ws/suite.robot", 9, 4)
	require.NotNil(t, call)
	assert.Equal(t, "`TEST_CASE_ACTION_NAME`\n\nkeyword Say Hello declared in common.resource:2", HoverText(c, call))

	decl := c.TokenAt("/ws/suite.robot", 5, 0)
	require.NotNil(t, decl)
	assert.Equal(t, "`VARIABLES_SCALAR_DECLARATION` `VARIABLE_USAGE`\n\nHello", HoverText(c, decl))

	arg := c.TokenAt("/ws/suite.robot", 9, 17)
	require.NotNil(t, arg)
	assert.Equal(t, "`TEST_CASE_ACTION_ARGUMENT` `VARIABLE_USAGE`", HoverText(c, arg))
}

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri, want string
	}{
		{"file:///ws/suite.robot", "/ws/suite.robot"},
		{"file:///ws/with%20space.robot", "/ws/with space.robot"},
		{"/plain/path.robot", "/plain/path.robot"},
	}
	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		require.NoError(t, err)
		if got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
