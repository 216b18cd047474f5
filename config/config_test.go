package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convokit/dataprep/utils"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "cl100k_base", cfg.Encoding)
		assert.Equal(t, "<image>", cfg.ImageTag)
		assert.Equal(t, 4096, cfg.MaxSeqLen)
		assert.True(t, cfg.AppendEOS)
		assert.Equal(t, utils.LogLevelWarn, cfg.LogLevel)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("DATAPREP_MAX_SEQ_LEN", "512")
		t.Setenv("DATAPREP_IMAGE_TAG", "[img]")
		t.Setenv("DATAPREP_APPEND_EOS", "false")
		t.Setenv("DATAPREP_LOG_LEVEL", "DEBUG")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 512, cfg.MaxSeqLen)
		assert.Equal(t, "[img]", cfg.ImageTag)
		assert.False(t, cfg.AppendEOS)
		assert.Equal(t, utils.LogLevelDebug, cfg.LogLevel)
	})

	t.Run("RejectsNonPositiveMaxSeqLen", func(t *testing.T) {
		t.Setenv("DATAPREP_MAX_SEQ_LEN", "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("RejectsBadLogLevel", func(t *testing.T) {
		t.Setenv("DATAPREP_LOG_LEVEL", "LOUD")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "cl100k_base", cfg.Encoding)
	assert.Equal(t, 4096, cfg.MaxSeqLen)
}
