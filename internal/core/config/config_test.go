package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  name: smartfarm-api
  env: production
  http:
    host: 0.0.0.0
    port: 5000
log:
  level: info
  json: true
  rotate:
    enable: true
    filename: ./logs/app.log
    max_size_mb: 50
    max_backups: 3
    max_age_days: 7
    compress: true
jwt:
  secret: s3cret
  issuer: smartfarm-api
db:
  driver: sqlite
  dsn: ./test.db
`)

	c := Load(path)

	assert.True(t, c.Production())
	assert.Equal(t, 5000, c.App.HTTP.Port)
	assert.Equal(t, "sqlite", c.DB.Driver)

	// 日志切割段完整落到结构
	assert.True(t, c.Log.Rotate.Enable)
	assert.Equal(t, "./logs/app.log", c.Log.Rotate.Filename)
	assert.Equal(t, 50, c.Log.Rotate.MaxSizeMB)
	assert.Equal(t, 3, c.Log.Rotate.MaxBackups)
	assert.Equal(t, 7, c.Log.Rotate.MaxAgeDays)
	assert.True(t, c.Log.Rotate.Compress)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
app:
  env: local
jwt:
  secret: s3cret
db:
  driver: sqlite
  dsn: ./test.db
`)

	c := Load(path)

	assert.False(t, c.Production())
	assert.Equal(t, 30, c.JWT.AccessTokenTTLDays)
	assert.Equal(t, "./uploads", c.Upload.Dir)
	assert.False(t, c.Log.Rotate.Enable)
}
