package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	cmd := Generate()

	require.NotNil(t, cmd)
	assert.Equal(t, "generate", cmd.Use)
	assert.Equal(t, "Generate configuration files locally", cmd.Short)
}

func TestGenerate_Flags(t *testing.T) {
	cmd := Generate()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag, "config flag should exist")
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "stackgen.yaml", configFlag.DefValue)

	outputFlag := cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag, "output flag should exist")
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, ".", outputFlag.DefValue)
}

func TestGenerate_RunE(t *testing.T) {
	cmd := Generate()
	assert.NotNil(t, cmd.RunE, "Generate command should have RunE function")
}
