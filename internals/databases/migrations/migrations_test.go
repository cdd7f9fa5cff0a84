package migrations

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_VersionsInOrder(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)
}

func TestSource_CreatesBothTables(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	want := map[uint]string{
		1: "CREATE TABLE IF NOT EXISTS submissions",
		2: "CREATE TABLE IF NOT EXISTS twitter_submissions",
	}
	for version, stmt := range want {
		r, _, err := src.ReadUp(version)
		require.NoError(t, err)
		body, err := io.ReadAll(r)
		_ = r.Close()
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), stmt), "version %d", version)

		down, _, err := src.ReadDown(version)
		require.NoError(t, err)
		_ = down.Close()
	}
}
