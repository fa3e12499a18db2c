package commands

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlforge/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordsCommand_Check(t *testing.T) {
	cfg := testConfig("postgres")
	cfg.Output = config.OutputJSON

	out, err := runCommand(t, NewKeywordsCommand(), cfg, "select", "zebra")
	require.NoError(t, err)
	assert.Contains(t, out, `"word": "SELECT"`)
	assert.Contains(t, out, `"postgres": true`)
	assert.Contains(t, out, `"postgres": false`)
}

func TestKeywordsCommand_AllDialects(t *testing.T) {
	out, err := runCommand(t, NewKeywordsCommand(), testConfig(config.AllDialects), "from")
	require.NoError(t, err)
	for _, name := range DialectNames(false) {
		assert.Contains(t, out, name)
	}
}

func TestKeywordsCommand_List(t *testing.T) {
	out, err := runCommand(t, NewKeywordsCommand(), testConfig("sqlite"), "--list")
	require.NoError(t, err)

	words := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, words, "SELECT")
	assert.IsIncreasing(t, words)
}

func TestKeywordsCommand_Errors(t *testing.T) {
	_, err := runCommand(t, NewKeywordsCommand(), testConfig("postgres"))
	assert.Error(t, err, "no words")

	_, err = runCommand(t, NewKeywordsCommand(), testConfig(config.AllDialects), "--list")
	assert.Error(t, err, "list needs one dialect")

	_, err = runCommand(t, NewKeywordsCommand(), testConfig("postgres"), "--list", "--version", "0.0")
	assert.Error(t, err, "unknown version")
}
