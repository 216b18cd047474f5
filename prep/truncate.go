// Package prep implements the data-preparation front end for conversational
// training examples: sequence truncation with end-of-sequence enforcement,
// image-tag splitting of raw message text, and conversation turn-order
// validation. All operations are pure and safe for concurrent use on
// independent inputs.
package prep

import "fmt"

// Truncate bounds a token sequence to maxSeqLen elements. If eosID is
// non-nil and the truncated prefix is non-empty, its last element is
// replaced with *eosID unless it already matches. The replacement is a
// documented correction, not an error; the input slice is never mutated.
//
// Parameters:
//   - tokens: the encoded sequence to bound
//   - maxSeqLen: maximum length of the result, must be positive
//   - eosID: optional end-of-sequence id to enforce on the final position
//
// Returns:
//   - The bounded sequence, length min(len(tokens), maxSeqLen)
//   - ErrKindInvalidArgument if maxSeqLen < 1
//
// An empty tokens slice yields an empty result with no error, even when
// eosID is set; there is no final position to enforce.
func Truncate(tokens []int, maxSeqLen int, eosID *int) ([]int, error) {
	if maxSeqLen < 1 {
		return nil, NewPrepError(ErrKindInvalidArgument,
			fmt.Sprintf("maxSeqLen must be positive, got %d", maxSeqLen), nil)
	}

	n := min(len(tokens), maxSeqLen)
	truncated := make([]int, n)
	copy(truncated, tokens[:n])

	if eosID != nil && n > 0 && truncated[n-1] != *eosID {
		truncated[n-1] = *eosID
	}
	return truncated, nil
}
