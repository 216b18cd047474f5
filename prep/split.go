package prep

import (
	"strings"

	"github.com/convokit/dataprep/types"
)

// SplitTextByImageTag converts raw message text containing embedded image
// placeholders into the ordered segment list used in the Message content
// field. The text is split on every occurrence of imageTag; non-empty
// fragments become text segments and each occurrence of the tag becomes an
// image segment in scan order. Empty fragments are dropped, so adjacent
// tags collapse into consecutive image segments.
//
// Parameters:
//   - content: raw message text
//   - imageTag: the placeholder marker to split on, must be non-empty
//
// Returns:
//   - The ordered segment list
//   - ErrKindInvalidArgument if imageTag is empty
//
// Example:
//
//	segments, _ := SplitTextByImageTag("<image>hello <image>world", "<image>")
//	// [Image, Text("hello "), Image, Text("world")]
func SplitTextByImageTag(content, imageTag string) ([]types.ContentSegment, error) {
	if imageTag == "" {
		return nil, NewPrepError(ErrKindInvalidArgument, "imageTag must be non-empty", nil)
	}

	fragments := strings.Split(content, imageTag)
	segments := make([]types.ContentSegment, 0, 2*len(fragments)-1)
	for i, fragment := range fragments {
		if len(fragment) > 0 {
			segments = append(segments, types.NewTextSegment(fragment))
		}
		if i < len(fragments)-1 {
			segments = append(segments, types.NewImageSegment())
		}
	}
	return segments, nil
}
