package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialects(t *testing.T) {
	assert.Equal(t, []string{
		"ansi", "db2", "duckdb", "firebird", "mssql", "mysql", "oracle", "postgres", "sqlite",
	}, Dialects())
}

func TestLoad_EveryDialect(t *testing.T) {
	for _, name := range Dialects() {
		t.Run(name, func(t *testing.T) {
			set, err := Load(name, "")
			require.NoError(t, err)
			assert.Positive(t, set.Len())
			assert.True(t, set.Contains("SELECT"), "%s must reserve SELECT", name)
			assert.True(t, set.Contains("from"), "lookup is case-insensitive")
			assert.False(t, set.Contains("users"))
		})
	}
}

func TestLoad_Versions(t *testing.T) {
	old, err := Load("postgres", "9.4")
	require.NoError(t, err)
	latest, err := Load("postgres", "")
	require.NoError(t, err)

	assert.False(t, old.Contains("TABLESAMPLE"))
	assert.True(t, latest.Contains("TABLESAMPLE"))

	versions, err := Versions("postgres")
	require.NoError(t, err)
	assert.Equal(t, []string{"9.4", "16"}, versions)
}

func TestLoad_MySQLWindowWords(t *testing.T) {
	v57, err := Load("mysql", "5.7")
	require.NoError(t, err)
	v80, err := Load("mysql", "8.0")
	require.NoError(t, err)

	assert.False(t, v57.Contains("WINDOW"))
	assert.True(t, v80.Contains("WINDOW"))
	assert.True(t, v80.Contains("XOR"))
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load("informix", "")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = Load("postgres", "7.4")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"7.4"`)
}

func TestSet(t *testing.T) {
	s := NewSet("select", " From ", "")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"FROM", "SELECT"}, s.Words())
	assert.True(t, s.Contains("Select"))
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"9.4", "16", -1},
		{"16", "9.4", 1},
		{"8.0", "8.0", 0},
		{"5.7", "8.0", -1},
		{"11.5", "11", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := compareVersions(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}
