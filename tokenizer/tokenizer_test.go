package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convokit/dataprep/utils"
)

func newTestEncoder(t *testing.T) *Encoder {
	t.Helper()
	encoder, err := NewEncoder(DefaultEncoding, utils.NewLogger(utils.LogLevelOff))
	require.NoError(t, err)
	return encoder
}

func TestNewEncoder(t *testing.T) {
	t.Run("KnownEncoding", func(t *testing.T) {
		encoder := newTestEncoder(t)
		assert.Positive(t, encoder.EOSID())
	})

	t.Run("FallsBackOnUnknownEncoding", func(t *testing.T) {
		encoder, err := NewEncoder("no_such_encoding", utils.NewLogger(utils.LogLevelOff))
		require.NoError(t, err)
		assert.Positive(t, encoder.EOSID())
	})
}

func TestEncodeDecode(t *testing.T) {
	encoder := newTestEncoder(t)

	tokens := encoder.Encode("hello world")
	assert.NotEmpty(t, tokens)
	assert.Equal(t, "hello world", encoder.Decode(tokens))
	assert.Equal(t, len(tokens), encoder.CountTokens("hello world"))
}

func TestEncodeTruncated(t *testing.T) {
	encoder := newTestEncoder(t)
	text := "user: describe the image\nassistant: it is a cat sitting on a mat\n"

	t.Run("BoundsLength", func(t *testing.T) {
		tokens, err := encoder.EncodeTruncated(text, 4, false)
		require.NoError(t, err)
		assert.Len(t, tokens, 4)
	})

	t.Run("ForcesEOS", func(t *testing.T) {
		tokens, err := encoder.EncodeTruncated(text, 4, true)
		require.NoError(t, err)
		require.Len(t, tokens, 4)
		assert.Equal(t, encoder.EOSID(), tokens[3])
	})

	t.Run("ShortTextKeptWhole", func(t *testing.T) {
		full := encoder.Encode(text)
		tokens, err := encoder.EncodeTruncated(text, len(full)+10, false)
		require.NoError(t, err)
		assert.Equal(t, full, tokens)
	})

	t.Run("RejectsZeroLimit", func(t *testing.T) {
		_, err := encoder.EncodeTruncated(text, 0, true)
		assert.Error(t, err)
	})
}
