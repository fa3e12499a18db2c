package adapter

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConnection struct {
	BaseSQLAdapter
}

var _ Connection = (*stubConnection)(nil)

func (s *stubConnection) Connect(context.Context, Config) error { return nil }

func TestUnknownAdapterError_Error(t *testing.T) {
	err := &UnknownAdapterError{
		Type:      "fake_db",
		Available: []string{"duckdb", "postgres"},
	}

	msg := err.Error()

	assert.NotEmpty(t, msg, "error message should not be empty")
	assert.Contains(t, msg, "fake_db", "error should mention the unknown type 'fake_db'")
	assert.Contains(t, msg, "sqlforge.yaml", "error should mention config file")
}

func TestRegister(t *testing.T) {
	Register("test_adapter_internal", func(l *slog.Logger) Connection {
		return &stubConnection{BaseSQLAdapter: NewBase(testDialect(), l)}
	})

	assert.True(t, IsRegistered("test_adapter_internal"), "test_adapter_internal should be registered after Register()")
	assert.Contains(t, List(), "test_adapter_internal")

	factory, ok := Get("test_adapter_internal")
	assert.True(t, ok, "Get(test_adapter_internal) should return true after Register()")
	assert.NotNil(t, factory, "Get(test_adapter_internal) should return non-nil factory")

	conn, err := New(Config{Type: "test_adapter_internal"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "test", conn.Dialect().Name)
}

func TestNew_EmptyType(t *testing.T) {
	_, err := New(Config{}, nil)
	require.Error(t, err, "New with empty type should fail")
	assert.Equal(t, "adapter type not specified", err.Error(), "error message")
}

func TestNew_UnknownType(t *testing.T) {
	_, err := New(Config{Type: "nonexistent"}, nil)
	require.Error(t, err)

	var unknown *UnknownAdapterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nonexistent", unknown.Type)
	assert.False(t, IsRegistered("nonexistent"))
}
