package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"urlencoder/encoding"
	"urlencoder/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (mainResult, error) {
	return processMain(args, strings.NewReader(""), &bytes.Buffer{})
}

func TestMainEncodeAndDecode(t *testing.T) {
	f, err := testutils.LoadFixtures("../../encoding/testdata/fixtures.yaml")
	require.NoError(t, err)

	for _, e := range f.Component {
		if e.Decoded == "" {
			continue
		}

		result, err := run(e.Decoded)
		require.NoError(t, err)
		assert.Equal(t, mainResult{output: e.Encoded, status: 0}, result, "processMain(%q)", e.Decoded)

		result, err = run("-e", e.Decoded)
		require.NoError(t, err)
		assert.Equal(t, mainResult{output: e.Encoded, status: 0}, result, "processMain(-e %q)", e.Decoded)

		result, err = run("-d", e.Encoded)
		require.NoError(t, err)
		assert.Equal(t, mainResult{output: e.Decoded, status: 0}, result, "processMain(-d %q)", e.Encoded)
	}
}

func TestMainDecodeWithError(t *testing.T) {
	for _, source := range []string{"sdkjfh%", "sdkjfh%6", "sdkjfh%xx", "sdfjfh%-1"} {
		_, err := run("-d", source)
		var merr *encoding.MalformedEncodingError
		assert.True(t, errors.As(err, &merr), "processMain(-d %q)", source)
	}
}

func TestMainUsage(t *testing.T) {
	tests := [][]string{
		{},
		{" ", " "},
		{"foo", " "},
		{" ", "foo"},
		{"-e"},
		{"-d"},
		{"-e", "-d", "foo"},
		{"-x", "foo"},
		{"foo", "bar", "test"},
		{"-stdin", "foo"},
		{""},
		{"", "foo"},
		{"-lenient", "foo"},
		{"-e", "-lenient", "foo"},
	}

	for _, args := range tests {
		result, err := run(args...)
		assert.NoError(t, err)
		assert.Equal(t, usage, result.output, "processMain(%q)", args)
		assert.Equal(t, 1, result.status, "processMain(%q).status", args)
	}
}

func TestMainBlank(t *testing.T) {
	result, err := run("-e", " ")
	require.NoError(t, err)
	assert.Equal(t, "%20", result.output)

	result, err = run("-d", " ")
	require.NoError(t, err)
	assert.Equal(t, " ", result.output)
}

func TestMainFormAndAllow(t *testing.T) {
	result, err := run("-form", "a b+c~")
	require.NoError(t, err)
	assert.Equal(t, "a+b%2Bc~", result.output)

	result, err = run("-form", "-d", "a+b%2Bc")
	require.NoError(t, err)
	assert.Equal(t, "a b+c", result.output)

	result, err = run("-allow", "=?", "?test=a test")
	require.NoError(t, err)
	assert.Equal(t, "?test=a%20test", result.output)
}

func TestMainStdin(t *testing.T) {
	// Arrange
	stdin := strings.NewReader("a test &\n100% done!\n~\n")

	// Act
	result, err := processMain([]string{"-stdin", "-workers", "2"}, stdin, &bytes.Buffer{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.status)
	assert.Equal(t, "a%20test%20%26\n100%25%20done%21\n%7E", result.output)
}

func TestMainStdinDecodeError(t *testing.T) {
	// Arrange
	stdin := strings.NewReader("a%20b\nok\nbad%4\n")

	// Act
	_, err := processMain([]string{"-stdin", "-d"}, stdin, &bytes.Buffer{})

	// Assert
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "line 3: "), err.Error())
}

func TestMainLenient(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sdkjfh%", "sdkjfh%"},
		{"sdfjfh%-1", "sdfjfh%-1"},
		{"a%20b%zz%41", "a b%zzA"},
	}

	for _, tt := range tests {
		result, err := run("-d", "-lenient", tt.input)
		require.NoError(t, err)
		assert.Equal(t, mainResult{output: tt.want, status: 0}, result, "processMain(-d -lenient %q)", tt.input)
	}
}

func TestMainStdinLenient(t *testing.T) {
	// Arrange
	stdin := strings.NewReader("a%20b\nbad%4\n")

	// Act
	result, err := processMain([]string{"-stdin", "-d", "-lenient"}, stdin, &bytes.Buffer{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, mainResult{output: "a b\nbad%4", status: 0}, result)
}
