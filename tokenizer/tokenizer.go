// Package tokenizer adapts tiktoken encodings to the data-preparation
// pipeline. It is a thin wrapper: tokenizer implementations themselves are
// out of scope for this module.
package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/convokit/dataprep/prep"
	"github.com/convokit/dataprep/utils"
)

const endOfText = "<|endoftext|>"

// DefaultEncoding is used when the requested encoding cannot be loaded.
const DefaultEncoding = "cl100k_base"

// Encoder wraps a tiktoken encoding together with its end-of-sequence id.
type Encoder struct {
	encoding *tiktoken.Tiktoken
	eosID    int
	logger   utils.Logger
}

// NewEncoder creates an Encoder for the named tiktoken encoding
// (e.g. "cl100k_base"). If the encoding cannot be loaded it falls back to
// DefaultEncoding.
func NewEncoder(encodingName string, logger utils.Logger) (*Encoder, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		logger.Warn("Failed to get encoding, defaulting", "encoding", encodingName, "default", DefaultEncoding, "error", err)
		encoding, err = tiktoken.GetEncoding(DefaultEncoding)
		if err != nil {
			return nil, fmt.Errorf("failed to get default encoding: %w", err)
		}
	}

	eosTokens := encoding.Encode(endOfText, []string{endOfText}, nil)
	if len(eosTokens) != 1 {
		return nil, fmt.Errorf("encoding %s has no single %s token", encodingName, endOfText)
	}

	return &Encoder{
		encoding: encoding,
		eosID:    eosTokens[0],
		logger:   logger,
	}, nil
}

// Encode converts text into token ids.
func (e *Encoder) Encode(text string) []int {
	return e.encoding.Encode(text, nil, nil)
}

// Decode converts token ids back into text.
func (e *Encoder) Decode(tokens []int) string {
	return e.encoding.Decode(tokens)
}

// EOSID returns the end-of-sequence token id of the underlying encoding.
func (e *Encoder) EOSID() int {
	return e.eosID
}

// CountTokens returns the number of tokens text encodes to.
func (e *Encoder) CountTokens(text string) int {
	return len(e.Encode(text))
}

// EncodeTruncated encodes text and bounds the result to maxSeqLen tokens.
// When appendEOS is set, the final token of a non-empty result is forced to
// the encoding's end-of-sequence id.
func (e *Encoder) EncodeTruncated(text string, maxSeqLen int, appendEOS bool) ([]int, error) {
	tokens := e.Encode(text)
	var eosID *int
	if appendEOS {
		eosID = &e.eosID
	}
	truncated, err := prep.Truncate(tokens, maxSeqLen, eosID)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Encoded text", "tokens", len(tokens), "kept", len(truncated), "max_seq_len", maxSeqLen)
	return truncated, nil
}
