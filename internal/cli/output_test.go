package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/services/board"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   int
	Name string
}

func (m mockDataWithID) GetID() int {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func decodeEnvelope(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output: %s", buf.String())
	return result
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	t.Parallel()

	f, out, _ := newTestFormatter(true, false)
	require.NoError(t, f.Success(mockDataWithoutID{Name: "x", Value: 42}, nil))

	result := decodeEnvelope(t, out)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "x", data["Name"])
	assert.EqualValues(t, 42, data["Value"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	t.Parallel()

	t.Run("with ID", func(t *testing.T) {
		t.Parallel()
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success(mockDataWithID{ID: 7}, nil))
		assert.Equal(t, "7\n", out.String())
	})

	t.Run("quiet wins over JSON", func(t *testing.T) {
		t.Parallel()
		f, out, _ := newTestFormatter(true, true)
		require.NoError(t, f.Success(mockDataWithID{ID: 9}, nil))
		assert.Equal(t, "9\n", out.String())
	})

	t.Run("without ID prints nothing", func(t *testing.T) {
		t.Parallel()
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success(mockDataWithoutID{Name: "x"}, nil))
		assert.Empty(t, out.String())
	})
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	t.Parallel()

	f, out, _ := newTestFormatter(false, false)
	err := f.Success(mockDataWithID{ID: 1}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, "rendered")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "rendered\n", out.String())

	f, out, _ = newTestFormatter(false, false)
	require.NoError(t, f.Success(mockDataWithoutID{Name: "plain", Value: 3}, nil))
	assert.Equal(t, "{Name:plain Value:3}\n", out.String())
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion(t *testing.T) {
	t.Parallel()

	t.Run("JSON", func(t *testing.T) {
		t.Parallel()
		f, out, errOut := newTestFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "card 3 not found", "try list"))

		result := decodeEnvelope(t, out)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]interface{})
		assert.Equal(t, "NOT_FOUND", errData["code"])
		assert.Equal(t, "card 3 not found", errData["message"])
		assert.Equal(t, "try list", errData["suggestion"])
		assert.Empty(t, errOut.String())
	})

	t.Run("JSON without suggestion", func(t *testing.T) {
		t.Parallel()
		f, out, _ := newTestFormatter(true, false)
		require.NoError(t, f.Error("INTERNAL_ERROR", "boom"))

		errData := decodeEnvelope(t, out)["error"].(map[string]interface{})
		_, ok := errData["suggestion"]
		assert.False(t, ok)
	})

	t.Run("human", func(t *testing.T) {
		t.Parallel()
		f, out, errOut := newTestFormatter(false, false)
		require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "card 3 not found", "try list"))

		assert.Empty(t, out.String())
		assert.Equal(t, "Error: card 3 not found\nSuggestion: try list\n", errOut.String())
	})
}

func TestOutputFormatter_Fail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		code     string
		exitCode int
	}{
		{fmt.Errorf("%w: title", board.ErrValidation), "VALIDATION_ERROR", ExitValidation},
		{board.ErrCardNotFound, "NOT_FOUND", ExitNotFound},
		{board.ErrColumnNotOnBoard, "REFERENTIAL_ERROR", ExitDataErr},
		{board.ErrStorageTimeout, "STORAGE_TIMEOUT", ExitError},
		{errors.New("disk on fire"), "INTERNAL_ERROR", ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			f, out, _ := newTestFormatter(true, false)

			err := f.Fail(tt.err)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.exitCode, ExitCode(err))

			errData := decodeEnvelope(t, out)["error"].(map[string]interface{})
			assert.Equal(t, tt.code, errData["code"])
		})
	}
}

func TestOutputFormatter_Usage(t *testing.T) {
	t.Parallel()

	f, _, errOut := newTestFormatter(false, false)
	err := f.Usage("INVALID_CARD_ID", "card ID must be a positive integer", "Usage: kanban card show <id>")

	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.EqualError(t, err, "card ID must be a positive integer")
	assert.Contains(t, errOut.String(), "Suggestion: Usage: kanban card show <id>")
}
