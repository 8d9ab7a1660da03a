package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Port: 8080, StorageType: "memory"}
	assert.NoError(t, valid.validate())

	badPort := valid
	badPort.Port = 0
	assert.Error(t, badPort.validate())

	badStorage := valid
	badStorage.StorageType = "postgres"
	assert.Error(t, badStorage.validate())

	redisNoURL := valid
	redisNoURL.StorageType = "redis"
	assert.Error(t, redisNoURL.validate())

	redisWithURL := redisNoURL
	redisWithURL.RedisURL = "redis://localhost:6379"
	assert.NoError(t, redisWithURL.validate())
}

func TestFlagDefaults(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "0.0.0.0", cmd.Flags().Lookup("bind").Value.String())
	assert.Equal(t, "8080", cmd.Flags().Lookup("port").Value.String())
	assert.Equal(t, (30 * time.Second).String(), cmd.Flags().Lookup("grace-window").Value.String())
	assert.Equal(t, (80 * time.Second).String(), cmd.Flags().Lookup("round-duration").Value.String())
	assert.Equal(t, "memory", cmd.Flags().Lookup("storage").Value.String())
}

func TestEnvironmentOverridesFlags(t *testing.T) {
	t.Setenv("PARTYGAMES_PORT", "9090")
	t.Setenv("PARTYGAMES_GRACE_WINDOW", "45s")

	cmd := NewRootCmd()

	require.Equal(t, "9090", cmd.Flags().Lookup("port").Value.String())
	require.Equal(t, "45s", cmd.Flags().Lookup("grace-window").Value.String())
}
