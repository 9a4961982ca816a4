package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldFlags_AddTo(t *testing.T) {
	var sf ScaffoldFlags
	cmd := &cobra.Command{Use: "test"}
	sf.AddTo(cmd)

	base := cmd.Flags().Lookup("base")
	require.NotNil(t, base)
	assert.Equal(t, "b", base.Shorthand)
	assert.Equal(t, "", base.DefValue)

	out := cmd.Flags().Lookup("output")
	require.NotNil(t, out)
	assert.Equal(t, "o", out.Shorthand)
	assert.Equal(t, "text", out.DefValue)

	year := cmd.Flags().Lookup("year")
	require.NotNil(t, year)
	assert.Equal(t, "int", year.Value.Type())

	for _, name := range []string{"namespace", "skip-existing", "strict", "dry-run"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestScaffoldFlags_Parse(t *testing.T) {
	var sf ScaffoldFlags
	cmd := &cobra.Command{Use: "test"}
	sf.AddTo(cmd)

	require.NoError(t, cmd.Flags().Parse([]string{
		"-b", "src/Modules", "--skip-existing", "--year", "2020", "-o", "json",
	}))

	assert.Equal(t, "src/Modules", sf.BasePath)
	assert.True(t, sf.SkipExisting)
	assert.Equal(t, 2020, sf.Year)
	assert.Equal(t, "json", sf.Output)
	assert.False(t, sf.DryRun)
}

func TestIfChanged(t *testing.T) {
	var sf ScaffoldFlags
	cmd := &cobra.Command{Use: "test"}
	sf.AddTo(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--base", "x", "--strict"}))

	got := StringIfChanged(cmd, "base", sf.BasePath)
	require.NotNil(t, got)
	assert.Equal(t, "x", *got)
	assert.Nil(t, StringIfChanged(cmd, "namespace", sf.Namespace))

	strict := BoolIfChanged(cmd, "strict", sf.Strict)
	require.NotNil(t, strict)
	assert.True(t, *strict)
	assert.Nil(t, BoolIfChanged(cmd, "dry-run", sf.DryRun))
}
