// Package dataprep prepares conversational training examples for encoding:
// it validates turn ordering, splits raw text into typed content segments,
// and bounds token sequences with end-of-sequence enforcement.
//
// The package root re-exports the core operations and types; the heavy
// lifting lives in the prep, types, tokenizer and config packages.
package dataprep

import (
	"github.com/convokit/dataprep/prep"
	"github.com/convokit/dataprep/types"
)

// Re-exported data model.
type (
	Role           = types.Role
	SegmentType    = types.SegmentType
	ContentSegment = types.ContentSegment
	Message        = types.Message
	Conversation   = types.Conversation
	PrepError      = prep.PrepError
	ErrorKind      = prep.ErrorKind
)

const (
	RoleSystem    = types.RoleSystem
	RoleUser      = types.RoleUser
	RoleAssistant = types.RoleAssistant
)

// Truncate bounds tokens to maxSeqLen elements, forcing the final element
// to *eosID when provided. See prep.Truncate.
func Truncate(tokens []int, maxSeqLen int, eosID *int) ([]int, error) {
	return prep.Truncate(tokens, maxSeqLen, eosID)
}

// SplitTextByImageTag converts raw text with embedded image placeholders
// into an ordered segment list. See prep.SplitTextByImageTag.
func SplitTextByImageTag(content, imageTag string) ([]types.ContentSegment, error) {
	return prep.SplitTextByImageTag(content, imageTag)
}

// ValidateMessages checks that messages form a well-formed dialogue. See
// prep.ValidateMessages.
func ValidateMessages(messages []types.Message) error {
	return prep.ValidateMessages(messages)
}
