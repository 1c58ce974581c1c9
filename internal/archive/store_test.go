package archive

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zurustar/sorbitol/internal/parser"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndCount(t *testing.T) {
	store := openTestStore(t)

	p := parser.NewParser()
	messages, err := p.ParseLines("PING :a\n:src PRIVMSG #chan :hello")
	require.NoError(t, err)

	for i, msg := range messages {
		require.NoError(t, store.Save("run-1", "raw line", msg), "message %d", i)
	}

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountByCommand(t *testing.T) {
	store := openTestStore(t)

	p := parser.NewParser()
	lines := []string{
		"PING :a",
		"PING :b",
		"PRIVMSG #chan :hello",
	}
	for _, line := range lines {
		msg, err := p.Parse(line)
		require.NoError(t, err)
		require.NoError(t, store.Save("run-1", line, msg))
	}

	counts, err := store.CountByCommand()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"PING": 2, "PRIVMSG": 1}, counts)
}

func TestEmptyStoreCount(t *testing.T) {
	store := openTestStore(t)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
