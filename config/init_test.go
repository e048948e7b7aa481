package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "5555", c.Port)
	require.Equal(t, ModeDebug, c.Mode)
	require.Equal(t, DriverSqlite, c.Database.Driver)
	require.Equal(t, "app.db", c.Database.Sqlite.Path)
	require.Equal(t, "info", c.Log.Level)
	require.False(t, c.ExposeErrorOrigin)
	require.Empty(t, c.AllowOrigins)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
port: "8080"
mode: release
expose_error_origin: true
allow_origins:
  - https://camp.example.com
database:
  driver: mysql
  mysql:
    host: db.internal
    db_name: camp
log:
  level: warn
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	t.Setenv("CAMP_PORT", "9090")
	t.Setenv("CAMP_DATABASE_MYSQL_USERNAME", "camp")
	t.Setenv("CAMP_ALLOW_ORIGINS", "https://a.example.com,https://b.example.com")

	c, err := Load(dir)
	require.NoError(t, err)

	require.Equal(t, "9090", c.Port)
	require.Equal(t, ModeRelease, c.Mode)
	require.Equal(t, DriverMysql, c.Database.Driver)
	require.Equal(t, "db.internal", c.Database.Mysql.Host)
	require.Equal(t, "camp", c.Database.Mysql.DBName)
	require.Equal(t, "camp", c.Database.Mysql.Username)
	require.Equal(t, "3306", c.Database.Mysql.Port)
	require.Equal(t, "warn", c.Log.Level)
	require.True(t, c.ExposeErrorOrigin)
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.AllowOrigins)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: [unclosed"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
