package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassSpec(t *testing.T) {
	c, err := parseClassSpec("19:00|20:30|Evening BJJ|bjj")
	require.NoError(t, err)
	assert.Equal(t, "19:00", c.StartTime)
	assert.Equal(t, "20:30", c.EndTime)
	assert.Equal(t, "Evening BJJ", c.ClassName)
	require.NotNil(t, c.ClassType)
	assert.Equal(t, "bjj", *c.ClassType)
}

func TestParseClassSpec_NoTypeIsWildcard(t *testing.T) {
	c, err := parseClassSpec("18:00|20:00|Open Mat")
	require.NoError(t, err)
	assert.Nil(t, c.ClassType)

	c, err = parseClassSpec("18:00|20:00|Open Mat|")
	require.NoError(t, err)
	assert.Nil(t, c.ClassType, "trailing empty type reads as wildcard")
}

func TestParseClassSpec_Malformed(t *testing.T) {
	_, err := parseClassSpec("19:00|20:30")
	assert.Error(t, err)

	_, err = parseClassSpec("a|b|c|d|e")
	assert.Error(t, err)
}
