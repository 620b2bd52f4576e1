package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Parse(t *testing.T) {

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty line",
			input:    "",
			expected: nil,
		},
		{
			name:     "only newline",
			input:    "\n",
			expected: nil,
		},
		{
			name:     "only spaces",
			input:    "      ",
			expected: nil,
		},
		{
			name:     "single command",
			input:    "help",
			expected: []string{"help"},
		},
		{
			name:     "leading trailing and repeated spaces",
			input:    "   list    .  ",
			expected: []string{"list", "."},
		},
		{
			name:     "command name is lower-cased",
			input:    "CoPy Source.TXT DEST.txt",
			expected: []string{"copy", "Source.TXT", "DEST.txt"},
		},
		{
			name:     "text after newline is ignored",
			input:    "list dir\nquit",
			expected: []string{"list", "dir"},
		},
		{
			name:     "tabs are not delimiters",
			input:    "run a\tb",
			expected: []string{"run", "a\tb"},
		},
		{
			name:     "extra parameters are dropped",
			input:    "list a b c d e f",
			expected: []string{"list", "a", "b", "c"},
		},
		{
			name:     "exactly max params",
			input:    "list a b c",
			expected: []string{"list", "a", "b", "c"},
		},
	}

	var params Params

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, params.Parse(tt.input))
			assert.Equal(t, len(tt.expected), params.Count())
			assert.Equal(t, tt.expected, params.Args())
		})
	}

}

func TestParams_ParseIgnoresWhitespaceRunLength(t *testing.T) {

	var single, spaced Params

	require.NoError(t, single.Parse("copy a.txt b.txt"))
	require.NoError(t, spaced.Parse("  copy      a.txt  b.txt     "))

	assert.Equal(t, single.Args(), spaced.Args())
	assert.Equal(t, single.Count(), spaced.Count())

}

func TestParams_ParseLengthLimit(t *testing.T) {

	var params Params

	atLimit := strings.Repeat("x", MaxParamLength)
	require.NoError(t, params.Parse("run "+atLimit))
	assert.Equal(t, 2, params.Count())
	assert.Equal(t, atLimit, params.Arg(1))

	err := params.Parse("run " + atLimit + "x")
	var lengthErr *LengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, 2, lengthErr.Position)
	assert.Equal(t, MaxParamLength, lengthErr.Limit)
	assert.Equal(t, "Parameter 2 exceeds maximum allowed characters: 100.", err.Error())
	assert.True(t, params.Failed())
	assert.Equal(t, ErrorCount, params.Count())
	assert.Empty(t, params.Name())
	assert.Nil(t, params.Args())

}

func TestParams_ParseLengthCountsCharacters(t *testing.T) {

	var params Params

	wide := strings.Repeat("é", MaxParamLength)
	require.NoError(t, params.Parse("list "+wide))
	assert.Equal(t, wide, params.Arg(1))

}

func TestParams_ParseLongParameterPastLimitIsIgnored(t *testing.T) {

	var params Params

	require.NoError(t, params.Parse("list a b c "+strings.Repeat("y", MaxParamLength+10)))
	assert.Equal(t, MaxParams, params.Count())

}

func TestParams_ParseResetsPreviousLine(t *testing.T) {

	var params Params

	require.NoError(t, params.Parse("copy one two"))
	require.NoError(t, params.Parse("help"))

	assert.Equal(t, 1, params.Count())
	assert.Empty(t, params.Arg(1))
	assert.Empty(t, params.Arg(2))

	require.Error(t, params.Parse(strings.Repeat("z", MaxParamLength+1)))
	require.NoError(t, params.Parse("quit"))
	assert.Equal(t, "quit", params.Name())

}
