package tui

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(input), &out)
	return c, &out
}

func TestInput(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		opts          []InputOption
		expected      string
		requiredCount int
	}{
		{"returns entered value", "ctl.example.com\n", nil, "ctl.example.com", 0},
		{"keeps inner spaces", "two words\n", nil, "two words", 0},
		{"strips carriage return", "value\r\n", nil, "value", 0},
		{"re-prompts until non-empty", "\n\n\nfinally\n", nil, "finally", 3},
		{"whitespace-only counts as empty", "  \nvalue\n", nil, "value", 1},
		{"optional accepts empty", "\n", []InputOption{Optional()}, "", 0},
		{"default applies when empty", "\n", []InputOption{Optional(), Default("oidc")}, "oidc", 0},
		{"default ignored when value entered", "saml\n", []InputOption{Optional(), Default("oidc")}, "saml", 0},
		{"required wins over default", "\ngiven\n", []InputOption{Default("oidc")}, "given", 1},
		{"auto-generate keeps entered value", "my-site\n", []InputOption{AutoGenerate()}, "my-site", 0},
		{"last line without newline", "tail", nil, "tail", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestConsole(tt.input)

			value, err := c.Input("Field: ", tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.requiredCount, strings.Count(out.String(), RequiredMessage))
			assert.Contains(t, out.String(), "Field:")
		})
	}
}

func TestInputAutoGenerate(t *testing.T) {
	uuidPattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	c, _ := newTestConsole("\n\n")

	first, err := c.Input("Site ID: ", AutoGenerate())
	require.NoError(t, err)
	second, err := c.Input("Sync PSK: ", AutoGenerate())
	require.NoError(t, err)

	assert.Regexp(t, uuidPattern, first)
	assert.Regexp(t, uuidPattern, second)
	assert.NotEqual(t, first, second)
}

func TestInputUsesIdentifierSource(t *testing.T) {
	c, _ := newTestConsole("\n")
	c.newID = func() string { return "fixed-id" }

	value, err := c.Input("Site ID: ", AutoGenerate())
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", value)
}

func TestInputClosed(t *testing.T) {
	c, out := newTestConsole("\n")

	_, err := c.Input("Hostname: ")
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, 1, strings.Count(out.String(), RequiredMessage))
}

func TestSensitive(t *testing.T) {
	t.Run("loops until non-empty", func(t *testing.T) {
		c, out := newTestConsole("\n\ns3cret\n")

		value, err := c.Sensitive("Password: ")
		require.NoError(t, err)
		assert.Equal(t, "s3cret", value)
		assert.Equal(t, 2, strings.Count(out.String(), RequiredMessage))
		assert.Contains(t, out.String(), "Password:")
	})

	t.Run("input closed", func(t *testing.T) {
		c, _ := newTestConsole("")

		_, err := c.Sensitive("Password: ")
		assert.ErrorIs(t, err, ErrInputClosed)
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"yes\n", true},
		{" YES \n", true},
		{"Yes\n", true},
		{"y\n", false},
		{"no\n", false},
		{"\n", false},
		{"yes please\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			c, out := newTestConsole(tt.input)

			ok, err := c.Confirm("Include an SSH key?")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Contains(t, out.String(), "Include an SSH key? (yes/no):")
		})
	}
}

func TestConfirmInputClosed(t *testing.T) {
	c, _ := newTestConsole("")

	_, err := c.Confirm("Include an SSH key?")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestConsoleReadsOneAnswerAtATime(t *testing.T) {
	in := strings.NewReader("first\nsecond\nthird\n")
	c := NewConsole(in, io.Discard)

	value, err := c.Input("One: ")
	require.NoError(t, err)
	assert.Equal(t, "first", value)
	assert.Equal(t, len("second\nthird\n"), in.Len())

	value, err = c.Sensitive("Two: ")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
	assert.Equal(t, len("third\n"), in.Len())

	ok, err := c.Confirm("Three?")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, in.Len())
}

func TestTerminalFile(t *testing.T) {
	assert.Nil(t, terminalFile(strings.NewReader("x")))

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()
	assert.Nil(t, terminalFile(f))
}

func TestNewIdentifier(t *testing.T) {
	id := NewIdentifier()
	assert.Len(t, id, 36)
	assert.Equal(t, strings.ToLower(id), id)
}
