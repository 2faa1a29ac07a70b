package records

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failNthRename makes the n-th rename (1-based) fail for the rest of the test.
func failNthRename(t *testing.T, n int) {
	t.Helper()
	calls := 0
	rename = func(oldpath, newpath string) error {
		calls++
		if calls == n {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: errors.New("injected")}
		}
		return os.Rename(oldpath, newpath)
	}
	t.Cleanup(func() { rename = os.Rename })
}

func oneRow(col, val string) *Table {
	t := NewTable(col)
	t.Append(Row{col: val})
	return t
}

func TestSaveAll_SecondRenameFailsRestoresFirst(t *testing.T) {
	dir := t.TempDir()
	games := filepath.Join(dir, "games.csv")
	wish := filepath.Join(dir, "wishlist.csv")
	require.NoError(t, Save(games, oneRow("title", "Hades")))
	require.NoError(t, Save(wish, oneRow("title", "Tunic")))
	gamesBefore, err := os.ReadFile(games)
	require.NoError(t, err)
	wishBefore, err := os.ReadFile(wish)
	require.NoError(t, err)

	failNthRename(t, 2)
	err = SaveAll(
		Pending{Path: games, Table: oneRow("title", "Tunic")},
		Pending{Path: wish, Table: NewTable("title")},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSave)

	gamesAfter, err := os.ReadFile(games)
	require.NoError(t, err)
	wishAfter, err := os.ReadFile(wish)
	require.NoError(t, err)
	assert.Equal(t, gamesBefore, gamesAfter)
	assert.Equal(t, wishBefore, wishAfter)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp and backup files should be cleaned up")
}

func TestSaveAll_SecondRenameFailsRemovesNewFirstFile(t *testing.T) {
	dir := t.TempDir()
	games := filepath.Join(dir, "games.csv")
	wish := filepath.Join(dir, "wishlist.csv")

	failNthRename(t, 2)
	err := SaveAll(
		Pending{Path: games, Table: oneRow("title", "Hades")},
		Pending{Path: wish, Table: NewTable("title")},
	)
	require.Error(t, err)

	_, err = os.Stat(games)
	assert.True(t, os.IsNotExist(err), "file created by the failed batch should be gone")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
