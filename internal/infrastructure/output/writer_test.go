//go:build unit

package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
	"github.com/rios0rios0/submissiontrigger/internal/infrastructure/output"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	t.Run("should pass writes through unbuffered", func(t *testing.T) {
		t.Parallel()

		// given
		var sink bytes.Buffer
		w, err := output.NewWriter(&sink, entities.BufferingNone, "utf-8")
		require.NoError(t, err)

		// when
		_, err = w.Write([]byte("partial"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "partial", sink.String())
	})

	t.Run("should flush at each newline in line mode", func(t *testing.T) {
		t.Parallel()

		// given
		var sink bytes.Buffer
		w, err := output.NewWriter(&sink, entities.BufferingLine, "utf-8")
		require.NoError(t, err)

		// when
		_, err = w.Write([]byte("You pushed:"))
		require.NoError(t, err)
		beforeNewline := sink.String()
		_, err = w.Write([]byte("\n"))
		require.NoError(t, err)

		// then
		assert.Empty(t, beforeNewline)
		assert.Equal(t, "You pushed:\n", sink.String())
	})

	t.Run("should hold everything until close in full mode", func(t *testing.T) {
		t.Parallel()

		// given
		var sink bytes.Buffer
		w, err := output.NewWriter(&sink, entities.BufferingFull, "utf-8")
		require.NoError(t, err)

		// when
		_, err = w.Write([]byte("line one\nline two\n"))
		require.NoError(t, err)
		beforeClose := sink.String()
		require.NoError(t, w.Close())

		// then
		assert.Empty(t, beforeClose)
		assert.Equal(t, "line one\nline two\n", sink.String())
	})

	t.Run("should transcode to the configured encoding", func(t *testing.T) {
		t.Parallel()

		// given
		var sink bytes.Buffer
		w, err := output.NewWriter(&sink, entities.BufferingNone, "latin1")
		require.NoError(t, err)

		// when
		_, err = w.Write([]byte("café\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		// then
		assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, '\n'}, sink.Bytes())
	})

	t.Run("should reject an unknown encoding", func(t *testing.T) {
		t.Parallel()

		// given
		var sink bytes.Buffer

		// when
		w, err := output.NewWriter(&sink, entities.BufferingLine, "klingon-8")

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Nil(t, w)
	})

	t.Run("should reject an unknown buffering mode", func(t *testing.T) {
		t.Parallel()

		// given
		var sink bytes.Buffer

		// when
		w, err := output.NewWriter(&sink, "block", "utf-8")

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Nil(t, w)
	})
}
