package prep

import (
	"github.com/convokit/dataprep/types"
	"github.com/convokit/dataprep/utils"
)

// deprecationLogger backs the one-time warnings emitted by deprecated
// entry points.
var deprecationLogger utils.Logger = utils.NewLogger(utils.LogLevelWarn)

// SplitByImageTag is the pre-v0.2 name of SplitTextByImageTag.
//
// Deprecated: use SplitTextByImageTag instead.
func SplitByImageTag(content, imageTag string) ([]types.ContentSegment, error) {
	utils.WarnDeprecated(deprecationLogger, "prep.SplitByImageTag", "Use prep.SplitTextByImageTag instead.")
	return SplitTextByImageTag(content, imageTag)
}
