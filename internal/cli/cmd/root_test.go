package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	want := []string{"run", "status", "watch", "history", "doctor", "config", "about", "autostart"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}

	prune, _, err := rootCmd.Find([]string{"history", "prune"})
	require.NoError(t, err)
	assert.Equal(t, "prune", prune.Name())

	schema, _, err := rootCmd.Find([]string{"config", "schema"})
	require.NoError(t, err)
	assert.Equal(t, "schema", schema.Name())
}

func TestRunCommand_Flags(t *testing.T) {
	assert.NotNil(t, runCmd.Flags().Lookup("listen"))
	assert.NotNil(t, runCmd.Flags().Lookup("no-server"))
	assert.Equal(t, defaultWatchInterval.String(), watchCmd.Flags().Lookup("interval").DefValue)
}

func TestConfigFileOf_NilManager(t *testing.T) {
	assert.Empty(t, configFileOf(nil))
}

func TestRunAbout_RequiresApp(t *testing.T) {
	app = nil
	assert.EqualError(t, runAbout(nil, nil), "app not initialized")
}
