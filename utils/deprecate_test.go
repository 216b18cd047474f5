package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWarnDeprecated(t *testing.T) {
	t.Run("WarnsOncePerName", func(t *testing.T) {
		logger := &MockLogger{}
		logger.On("Warn", mock.Anything, mock.Anything).Return()

		WarnDeprecated(logger, "prep.OldTruncate", "Use prep.Truncate instead.")
		WarnDeprecated(logger, "prep.OldTruncate", "Use prep.Truncate instead.")
		WarnDeprecated(logger, "prep.OldTruncate", "")

		assert.Equal(t, 1, logger.WarnCallCount)
		assert.Contains(t, logger.LastWarnMessage, "prep.OldTruncate is deprecated")
		assert.Contains(t, logger.LastWarnMessage, "Use prep.Truncate instead.")
	})

	t.Run("DistinctNamesWarnSeparately", func(t *testing.T) {
		logger := &MockLogger{}
		logger.On("Warn", mock.Anything, mock.Anything).Return()

		WarnDeprecated(logger, "prep.OldSplit", "")
		WarnDeprecated(logger, "prep.OldValidate", "")

		assert.Equal(t, 2, logger.WarnCallCount)
	})
}
