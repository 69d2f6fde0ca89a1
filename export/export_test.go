package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aguxez/foodpick/models"
)

func TestFormatFor(t *testing.T) {
	tests := map[string]Format{
		"out.xlsx":  FormatXLSX,
		"OUT.YML":   FormatYAML,
		"a/b.yaml":  FormatYAML,
		"dump.json": FormatJSON,
	}
	for path, want := range tests {
		got, err := FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFor("notes.txt")
	assert.Error(t, err)
}

func TestXLSXColumns(t *testing.T) {
	groups := models.SeedGroups()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, groups))

	got, err := ReadXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range groups {
		assert.Equal(t, groups[i].Title, got[i].Title)
		assert.Equal(t, groups[i].Names(), got[i].Names())
	}
}

func TestYAMLAndJSON(t *testing.T) {
	groups := []models.Group{models.NewGroup("宵夜", "鹽酥雞", "滷味")}

	var y bytes.Buffer
	require.NoError(t, Write(&y, FormatYAML, groups))
	var fromYAML []models.Group
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &fromYAML))
	assert.Equal(t, groups, fromYAML)

	var j bytes.Buffer
	require.NoError(t, Write(&j, FormatJSON, groups))
	var fromJSON []models.Group
	require.NoError(t, json.Unmarshal(j.Bytes(), &fromJSON))
	assert.Equal(t, groups, fromJSON)
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.xlsx")
	require.NoError(t, ToFile(path, models.SeedGroups()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, ToFile(filepath.Join(t.TempDir(), "groups.txt"), nil))
}
