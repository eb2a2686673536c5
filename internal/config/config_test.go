package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"GRPC_HOST", "GRPC_PORT",
		"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET",
		"CLOUDINARY_UPLOAD_FOLDER", "CLOUDINARY_UPLOAD_PREFIX", "CLOUDINARY_SECURE",
	} {
		unsetForTest(t, key)
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.GrpcHost)
	assert.Equal(t, 5051, cfg.GrpcPort)
	assert.Equal(t, "products", cfg.CloudinaryUploadFolder)
	assert.Empty(t, cfg.CloudinaryUploadPrefix)
	assert.True(t, cfg.CloudinarySecure)
	assert.Empty(t, cfg.CloudinaryCloudName)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GRPC_HOST", "0.0.0.0")
	t.Setenv("GRPC_PORT", "9090")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")
	t.Setenv("CLOUDINARY_UPLOAD_FOLDER", "catalog")
	t.Setenv("CLOUDINARY_SECURE", "false")

	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.GrpcHost)
	assert.Equal(t, 9090, cfg.GrpcPort)
	assert.Equal(t, "demo", cfg.CloudinaryCloudName)
	assert.Equal(t, "key", cfg.CloudinaryAPIKey)
	assert.Equal(t, "secret", cfg.CloudinaryAPISecret)
	assert.Equal(t, "catalog", cfg.CloudinaryUploadFolder)
	assert.False(t, cfg.CloudinarySecure)
}

func TestLoadEnvFile_ExportsLogLevel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nCLOUDINARY_CLOUD_NAME=from-file\n"), 0o600))
	t.Chdir(dir)
	unsetForTest(t, "LOG_LEVEL")
	unsetForTest(t, "CLOUDINARY_CLOUD_NAME")

	require.NoError(t, LoadEnvFile())

	assert.Equal(t, "debug", os.Getenv("LOG_LEVEL"))
	assert.Equal(t, "from-file", Load().CloudinaryCloudName)
}

func TestLoadEnvFile_KeepsProcessEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "warn")

	require.NoError(t, LoadEnvFile())

	assert.Equal(t, "warn", os.Getenv("LOG_LEVEL"))
}

func TestLoadEnvFile_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.Error(t, LoadEnvFile())
}

// unsetForTest removes key for the duration of the test, restoring it afterwards.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
