package dataprep

import (
	"fmt"
	"strings"

	"github.com/convokit/dataprep/config"
	"github.com/convokit/dataprep/prep"
	"github.com/convokit/dataprep/tokenizer"
	"github.com/convokit/dataprep/types"
	"github.com/convokit/dataprep/utils"
)

// Pipeline ties the preparation steps together for callers that want the
// whole front end rather than the individual functions: structural checks,
// turn-order validation, rendering, encoding and truncation. A validation
// failure rejects the single offending example; it never corrupts a batch.
type Pipeline struct {
	cfg     *config.Config
	encoder *tokenizer.Encoder
	logger  utils.Logger
}

// NewPipeline creates a Pipeline from the given config. A nil cfg loads the
// configuration from the environment; a nil logger gets the default logger
// at the configured level.
func NewPipeline(cfg *config.Config, logger utils.Logger) (*Pipeline, error) {
	if cfg == nil {
		loaded, err := config.LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if logger == nil {
		logger = utils.NewLogger(cfg.LogLevel)
	}

	encoder, err := tokenizer.NewEncoder(cfg.Encoding, logger)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:     cfg,
		encoder: encoder,
		logger:  logger,
	}, nil
}

// ParseContent splits raw message text on the configured image tag.
func (p *Pipeline) ParseContent(raw string) ([]types.ContentSegment, error) {
	return prep.SplitTextByImageTag(raw, p.cfg.ImageTag)
}

// PrepareExample validates a conversation and encodes it into a bounded
// token sequence. Errors identify the offending message so callers can drop
// the example and continue.
func (p *Pipeline) PrepareExample(messages []types.Message) ([]int, error) {
	for i, message := range messages {
		if err := types.Validate(message); err != nil {
			return nil, fmt.Errorf("malformed message at index %d: %w", i, err)
		}
	}
	if err := prep.ValidateMessages(messages); err != nil {
		return nil, err
	}

	tokens, err := p.encoder.EncodeTruncated(p.render(messages), p.cfg.MaxSeqLen, p.cfg.AppendEOS)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Prepared example", "messages", len(messages), "tokens", len(tokens))
	return tokens, nil
}

// render flattens a conversation to the text form handed to the encoder,
// one "role: content" line per message with image placeholders restored to
// the configured tag.
func (p *Pipeline) render(messages []types.Message) string {
	var sb strings.Builder
	for _, message := range messages {
		sb.WriteString(string(message.Role))
		sb.WriteString(": ")
		for _, seg := range message.Content {
			if seg.Type == types.SegmentImage {
				sb.WriteString(p.cfg.ImageTag)
			} else {
				sb.WriteString(seg.Text)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
