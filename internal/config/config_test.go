package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseExtList(t *testing.T) {
	m := parseExtList("png, JPG,.jpeg ,,")
	require.Equal(t, map[string]bool{"png": true, "jpg": true, "jpeg": true}, m)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_BASE_URL", "http://food.test")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "food")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL_MIN", "60")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("MODEL_SERVER_URL", "http://localhost:8500")
	t.Setenv("UPLOAD_ALLOWED_EXT", "png,jpg")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 60, cfg.SessionTTLMin)
	require.Equal(t, 10, cfg.BcryptCost)
	require.Equal(t, map[string]bool{"png": true, "jpg": true}, cfg.AllowedExt)
	// Unset optionals fall back to their defaults.
	require.Equal(t, "static/uploads", cfg.UploadDir)
	require.Equal(t, "model/class.txt", cfg.LabelsPath)
}
