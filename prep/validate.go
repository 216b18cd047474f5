package prep

import (
	"fmt"

	"github.com/convokit/dataprep/types"
)

// turnState tracks where a sequential scan of a conversation currently
// stands. It replaces the older convention of seeding a "last turn" variable
// with a fake assistant role; the states make the transition rules explicit.
type turnState int

const (
	turnStart turnState = iota
	afterSystem
	afterUser
	afterAssistant
)

// ValidateMessages ensures that messages form a valid back-and-forth
// conversation before downstream encoding. It fails if:
//
//   - there are fewer than 2 messages (min. one user/assistant turn pair)
//   - an assistant message does not directly follow a user message
//   - there are two consecutive user messages
//   - a system message is anywhere but the very first position
//
// The scan is strictly sequential so a failure pinpoints the exact
// offending index, which matters when a single malformed conversation in a
// large generated dataset must not silently corrupt a batch.
//
// Parameters:
//   - messages: the conversation to validate
//
// Returns:
//   - nil on success, otherwise a *PrepError carrying the offending index
//
// ValidateMessages only inspects; it never mutates or constructs messages,
// and it does not validate content shape (see types.Validate for that).
func ValidateMessages(messages []types.Message) error {
	if len(messages) < 2 {
		return NewPrepError(ErrKindTooShort,
			fmt.Sprintf("messages must be at least length 2, but got %d messages", len(messages)), nil)
	}

	state := turnStart
	for i, message := range messages {
		switch message.Role {
		case types.RoleAssistant:
			if state != afterUser {
				return NewPrepErrorAt(ErrKindAssistantBeforeUser, i,
					fmt.Sprintf("assistant message before expected user message at index %d in messages", i))
			}
			state = afterAssistant
		case types.RoleUser:
			if state == afterUser {
				return NewPrepErrorAt(ErrKindConsecutiveUser, i,
					fmt.Sprintf("two consecutive user messages at index %d and %d in messages", i, i-1))
			}
			state = afterUser
		case types.RoleSystem:
			if i > 0 {
				return NewPrepErrorAt(ErrKindMisplacedSystem, i,
					fmt.Sprintf("system message at index %d in messages, but system messages must come first", i))
			}
			state = afterSystem
		default:
			return NewPrepErrorAt(ErrKindInvalidArgument, i,
				fmt.Sprintf("unknown role %q at index %d in messages", message.Role, i))
		}
	}
	return nil
}
