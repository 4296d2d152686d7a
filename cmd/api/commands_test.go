package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"serve", "migrate", "seed"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, defaultConfigPath, flag.DefValue)
}

func TestSeedCommand_AgainstSQLite(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := "database:\n  driver: sqlite\n  path: " + filepath.Join(dir, "cli.db") + "\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	for _, args := range [][]string{{"migrate"}, {"seed"}, {"seed"}} {
		cmd := newRootCmd()
		cmd.SetArgs(append(args, "--config", configPath))
		require.NoError(t, cmd.Execute(), args)
	}

	_, err := os.Stat(filepath.Join(dir, "cli.db"))
	assert.NoError(t, err)
}

func TestMigrateCommand_BadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("database:\n  driver: oracle\n"), 0o600))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--config", configPath})
	assert.Error(t, cmd.Execute())
}
