package migrations_test

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/db"
	"github.com/oggyb/nearby/migrations"
)

func TestMigrationsHaveUpAndDown(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "postgres/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", name)
		assert.Contains(t, string(body), "-- +goose Down", name)
	}
}

func TestMatchPairCheckUsesByteOrder(t *testing.T) {
	body, err := fs.ReadFile(migrations.FS, "postgres/00002_swipes_matches.sql")
	require.NoError(t, err)

	checks := regexp.MustCompile(`CHECK \(([^)]*user1_id[^)]*)\)`).FindAllStringSubmatch(string(body), -1)
	require.Len(t, checks, 1)
	assert.Equal(t, `user1_id COLLATE "C" < user2_id COLLATE "C"`, strings.TrimSpace(checks[0][1]))

	// ids whose byte order differs from a case-insensitive locale order
	lo, hi := db.CanonicalPair("a0c1", "B7f2")
	assert.Equal(t, "B7f2", lo)
	assert.Equal(t, "a0c1", hi)
}
