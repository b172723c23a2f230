package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioBot/internal/finance"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "portfolio.json"), zerolog.Nop())
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	snap := tempStore(t).Load()
	assert.Empty(t, snap.Stocks)
	assert.Empty(t, snap.SIPs)
	assert.NotNil(t, snap.Stocks)
	assert.NotNil(t, snap.SIPs)
}

func TestLoad_MalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	snap := NewFileStore(path, zerolog.Nop()).Load()
	assert.Empty(t, snap.Stocks)
	assert.Empty(t, snap.SIPs)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := tempStore(t)
	snap := finance.Snapshot{}.
		UpsertHolding("Suzlon Energy", 10, decimal.RequireFromString("52.30")).
		UpsertPlan("Goal SIP", decimal.NewFromInt(2000), 19)
	require.NoError(t, s.Save(snap))

	got := s.Load()
	require.Len(t, got.Stocks, 1)
	assert.Equal(t, "Suzlon Energy", got.Stocks[0].Name)
	assert.Equal(t, int64(10), got.Stocks[0].Qty)
	assert.True(t, got.Stocks[0].BuyPrice.Equal(decimal.RequireFromString("52.30")))
	require.Len(t, got.SIPs, 1)
	assert.Equal(t, 19, got.SIPs[0].Day)

	// Save(Load()) leaves the observable content unchanged
	require.NoError(t, s.Save(got))
	again := s.Load()
	assert.Equal(t, got, again)
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "portfolio.json")
	s := NewFileStore(path, zerolog.Nop())
	require.NoError(t, s.Save(finance.Snapshot{}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestUpdate_UnchangedDoesNotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	s := NewFileStore(path, zerolog.Nop())

	require.NoError(t, s.Update(func(snap finance.Snapshot) (finance.Snapshot, bool) {
		next, found := snap.DeleteHolding("Foo")
		return next, found
	}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no-op update must not create the file")
}

func TestUpdate_PersistsChange(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Update(func(snap finance.Snapshot) (finance.Snapshot, bool) {
		return snap.UpsertHolding("HOC", 5, decimal.NewFromInt(10)), true
	}))
	assert.Len(t, s.Load().Stocks, 1)
}
