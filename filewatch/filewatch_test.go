package filewatch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguxez/foodpick/models"
)

func TestReadFoods(t *testing.T) {
	in := "Food Name\n便當\n\n\"麵食, 湯\"\nBuffet\n"
	foods, err := ReadFoods(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"便當", "麵食, 湯", "Buffet"}, foods)
}

func TestReadFoodsWithBOM(t *testing.T) {
	foods, err := ReadFoods(strings.NewReader("\ufeffFood Name\nx\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, foods)
}

func TestReadFoodsErrors(t *testing.T) {
	tests := map[string]string{
		"empty":      "",
		"bad header": "Name\nx\n",
		"two cols":   "Food Name\na,b\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadFoods(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestWriteFoodsRoundTrip(t *testing.T) {
	names := []string{"火鍋", "with, comma", `with "quote"`}
	var buf bytes.Buffer
	require.NoError(t, WriteFoods(&buf, names))

	got, err := ReadFoods(&buf)
	require.NoError(t, err)
	assert.Equal(t, names, got)
}

func TestGroupTitle(t *testing.T) {
	assert.Equal(t, "日常吃飯", GroupTitle("/tmp/lists/日常吃飯.csv"))
	assert.Equal(t, "a.b", GroupTitle("a.b.CSV"))
}

type recordingImporter struct {
	mu    sync.Mutex
	store *models.StateManager
	calls []string
}

func (r *recordingImporter) ImportFoods(title string, names []string) models.Group {
	r.mu.Lock()
	r.calls = append(r.calls, title)
	r.mu.Unlock()
	return r.store.ReplaceFoods(title, names)
}

func (r *recordingImporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func writeCSV(t *testing.T, path string, names ...string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteFoods(&buf, names))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestHandleFileChange(t *testing.T) {
	dir := t.TempDir()
	imp := &recordingImporter{store: models.NewStateManager(models.SeedGroups())}
	fw, err := NewFileWatcher([]string{dir}, imp)
	require.NoError(t, err)
	defer fw.Close()

	path := filepath.Join(dir, "日常吃飯.csv")
	writeCSV(t, path, "粥", "飯糰")
	fw.HandleFileChange(path)

	groups := imp.store.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, []string{"粥", "飯糰"}, groups[0].Names())

	bad := filepath.Join(dir, "broken.csv")
	require.NoError(t, os.WriteFile(bad, []byte("nope\n"), 0644))
	fw.HandleFileChange(bad)
	assert.Equal(t, 3, imp.store.Len())

	fw.HandleFileChange(filepath.Join(dir, "notes.txt"))
	assert.Equal(t, 1, imp.count())
}

func TestWatcherImportsNewFiles(t *testing.T) {
	dir := t.TempDir()
	imp := &recordingImporter{store: models.NewStateManager(nil)}
	fw, err := NewFileWatcher([]string{dir}, imp)
	require.NoError(t, err)
	fw.Start()
	defer fw.Close()

	writeCSV(t, filepath.Join(dir, "宵夜.csv"), "鹽酥雞")

	assert.Eventually(t, func() bool {
		for _, g := range imp.store.Groups() {
			if g.Title == "宵夜" && len(g.Foods) == 1 {
				return true
			}
		}
		return false
	}, 2*time.Second, 20*time.Millisecond)

	assert.Equal(t, 1, imp.store.Len())
}

func TestNewFileWatcherMissingDir(t *testing.T) {
	_, err := NewFileWatcher([]string{filepath.Join(t.TempDir(), "missing")}, &recordingImporter{})
	assert.Error(t, err)
}
