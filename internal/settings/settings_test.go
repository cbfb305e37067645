package settings

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	settings, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "৳", settings.CurrencySymbol)
	assert.Equal(t, "left", settings.CurrencyPosition)
	assert.Equal(t, "light", settings.Theme)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	saved := Defaults()
	saved.Company.Name = "Dhaka Exchange House"
	saved.Company.Phone = "01712345678"
	saved.CurrencyPosition = "right"
	saved.Theme = "dark"
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoad_PartialFileKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o644))

	settings, err := NewStore(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, "৳", settings.CurrencySymbol)
	assert.Equal(t, "02 Jan 2006", settings.DateFormat)
}

func TestLoad_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":`), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestSave_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "settings.json"))
	require.NoError(t, store.Save(Defaults()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "settings.json", entries[0].Name())
}

func TestUpdate_AppliesChangeOnTopOfCurrent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	first, err := store.Update(func(s *Settings) { s.Company.Name = "Chittagong Branch" })
	require.NoError(t, err)
	assert.Equal(t, "Chittagong Branch", first.Company.Name)

	second, err := store.Update(func(s *Settings) { s.Theme = "dark" })
	require.NoError(t, err)
	assert.Equal(t, "Chittagong Branch", second.Company.Name)
	assert.Equal(t, "dark", second.Theme)
}

func TestConcurrentSaves(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(Defaults())
		}()
	}
	wg.Wait()

	_, err := store.Load()
	assert.NoError(t, err)
}
