package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// The checked-in examples are kept in canonical form: formatting them
// must be a no-op.
func TestExamplesAreCanonical(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "examples", "*.ua"))
	require.Nil(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		require.Nil(t, err)

		formatted, err := Source(string(data), path)
		require.Nil(t, err, "example: %s", path)
		require.Equal(t, string(data), formatted, "example: %s", path)
	}
}
