package catalog

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Seed(db))
	return db
}

func TestSeedAndLoadPrograms(t *testing.T) {
	db := seededDB(t)

	programs, err := LoadPrograms(db)
	require.NoError(t, err)
	require.Len(t, programs, 20)

	first := programs[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Master of Computer Science", first.Name)
	assert.Equal(t, "Massachusetts Institute of Technology", first.University)
	assert.Equal(t, "United States", first.Country)
	assert.Equal(t, "Computer Science", first.Field)
	assert.Equal(t, "Master", first.Level)
	assert.Equal(t, "English", first.Language)
	assert.InDelta(t, 50000, first.TuitionPerYear, 1e-9)
	require.NotNil(t, first.RankGlobal)
	assert.Equal(t, 1, *first.RankGlobal)
	require.NotNil(t, first.DurationYears)
	assert.Equal(t, 2, *first.DurationYears)

	// Rows come back ordered by program id.
	for i := 1; i < len(programs); i++ {
		assert.Greater(t, programs[i].ID, programs[i-1].ID)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := seededDB(t)
	require.NoError(t, Seed(db))

	programs, err := LoadPrograms(db)
	require.NoError(t, err)
	assert.Len(t, programs, 20)
}

func TestLoadProgramsNullableColumns(t *testing.T) {
	db := seededDB(t)

	_, err := db.Exec(`UPDATE universities SET ranking_global = NULL WHERE id = 1`)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE programs SET duration = NULL, language = NULL WHERE id = 1`)
	require.NoError(t, err)

	programs, err := LoadPrograms(db)
	require.NoError(t, err)
	require.NotEmpty(t, programs)

	first := programs[0]
	assert.Nil(t, first.RankGlobal)
	assert.Nil(t, first.DurationYears)
	assert.Empty(t, first.Language)
}

func TestLoadCountries(t *testing.T) {
	db := seededDB(t)

	countries, err := LoadCountries(db)
	require.NoError(t, err)
	require.Len(t, countries, 10)

	var germany *Country
	for i := range countries {
		if countries[i].Name == "Germany" {
			germany = &countries[i]
		}
	}
	require.NotNil(t, germany)
	assert.Equal(t, "DE", germany.Code)
	assert.Equal(t, "Europe", germany.Region)
	assert.InDelta(t, 1000, germany.AverageLivingCost, 1e-9)
	assert.Equal(t, 80, germany.SafetyIndex)
}

func TestLoadCountriesMissingTable(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer db.Close()

	countries, err := LoadCountries(db)
	require.NoError(t, err)
	assert.Nil(t, countries)
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "no-such-dir", "catalog.db"))
	assert.Error(t, err)
}
