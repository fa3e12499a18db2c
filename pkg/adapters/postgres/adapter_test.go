package postgres

import (
	"context"
	"testing"

	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   adapter.Config
		expected string
	}{
		{
			name: "basic connection",
			config: adapter.Config{
				Host:     "localhost",
				Port:     5432,
				Database: "testdb",
				Username: "user",
				Password: "pass",
			},
			expected: "host=localhost port=5432 dbname=testdb sslmode=disable user=user password=pass",
		},
		{
			name: "with custom sslmode",
			config: adapter.Config{
				Host:     "prod.example.com",
				Port:     5432,
				Database: "proddb",
				Username: "admin",
				Options:  map[string]string{"sslmode": "require"},
			},
			expected: "host=prod.example.com port=5432 dbname=proddb sslmode=require user=admin",
		},
		{
			name: "defaults",
			config: adapter.Config{
				Database: "mydb",
			},
			expected: "host=localhost port=5432 dbname=mydb sslmode=disable",
		},
		{
			name: "custom port",
			config: adapter.Config{
				Host:     "db.example.com",
				Port:     5433,
				Database: "analytics",
				Username: "analyst",
			},
			expected: "host=db.example.com port=5433 dbname=analytics sslmode=disable user=analyst",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := buildPostgresDSN(tt.config)
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestDriverName(t *testing.T) {
	assert.Equal(t, DriverPgx, driverName(adapter.Config{}))
	assert.Equal(t, DriverPgx, driverName(adapter.Config{Options: map[string]string{"driver": "pgx"}}))
	assert.Equal(t, DriverPq, driverName(adapter.Config{Options: map[string]string{"driver": "pq"}}))
}

func TestAdapter_Quote(t *testing.T) {
	a := New(nil)

	tests := []struct {
		name     string
		input    string
		escape   string
		expected string
	}{
		{"plain", "alice", "", `'alice'`},
		{"single quote", "it's", "", `'it''s'`},
		{"backslash", `C:\tmp`, "", `E'C:\\tmp'`},
		{"like escape", `50%`, `\`, `'50%' ESCAPE`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, a.Quote(tt.input, tt.escape), tt.expected)
		})
	}
}

func TestNew(t *testing.T) {
	a := New(nil)
	require.NotNil(t, a)
	assert.Equal(t, "postgres", a.Dialect().Name)
	assert.False(t, a.IsConnected())
}

func TestAdapter_NotConnected(t *testing.T) {
	a := New(nil)
	ctx := context.Background()

	_, err := a.Exec(ctx, "SELECT 1")
	require.ErrorIs(t, err, adapter.ErrNotConnected)

	_, err = a.Query(ctx, "SELECT 1")
	require.ErrorIs(t, err, adapter.ErrNotConnected)

	assert.NoError(t, a.Close())
}

func TestAdapter_Registry(t *testing.T) {
	assert.True(t, adapter.IsRegistered("postgres"))

	conn, err := adapter.New(adapter.Config{Type: "postgres"}, nil)
	require.NoError(t, err)
	_, ok := conn.(*Adapter)
	assert.True(t, ok)
}
