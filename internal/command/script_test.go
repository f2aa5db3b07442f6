package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadScriptAcceptsCommentsAndTrailingCommas(t *testing.T) {
	src := `[
	  // groceries
	  "add buy milk",
	  "add   ",
	  /* done already */
	  "toggle 1",
	]`
	lines, err := LoadScript(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []string{"add buy milk", "add   ", "toggle 1"}, lines)
}

func TestLoadScriptErrors(t *testing.T) {
	_, err := LoadScript(strings.NewReader(`[ "add x" `))
	require.ErrorContains(t, err, "parse script")

	_, err = LoadScript(strings.NewReader(`{"commands": []}`))
	require.ErrorContains(t, err, "decode script")
}
