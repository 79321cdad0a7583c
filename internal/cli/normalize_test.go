package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNormalize(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runNormalize(cmd, []string{"Level1", "Assets/Boss.unity", "Levels/Cave"})
	require.NoError(t, err)

	assert.Equal(t,
		"Assets/Level1.unity\nAssets/Boss.unity\nAssets/Levels/Cave.unity\n",
		buf.String())
}

func TestRunNormalizeRejectsEmptyPath(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runNormalize(cmd, []string{"Level1", "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty scene path")
}
