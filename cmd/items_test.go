package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scaffolddemo/internal/config"
)

func TestPrintItems(t *testing.T) {
	var buf bytes.Buffer
	printItems(&buf, config.GetDefaultConfig())

	out := buf.String()
	assert.Contains(t, out, "Bottom navigation:\n  1. ① Item 1\n")
	assert.Contains(t, out, "Drawer:\n  1. ① Section 1\n")
	assert.Contains(t, out, "Backdrop menu:\n  1. Item 1\n")
	assert.Contains(t, out, "  10. Item 10\n")
}

func TestItemsCommand_CustomConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", "menuItems: [Alpha, Beta]\n")

	cmd := newItemsCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--config", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "  1. Alpha\n  2. Beta\n")
	assert.NotContains(t, buf.String(), "Item 10")
}

func TestItemsCommand_InvalidConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", "menuItems: [Alpha, Alpha]\n")

	cmd := newItemsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrDuplicateTitle)
}
