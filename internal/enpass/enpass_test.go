package enpass

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `{
  "folders": [
    {"uuid": "6e5575fb-8b4c-4f46-a1f4-14b86e1b3e2c", "title": "Work"},
    {"uuid": "9f2b1ec2-3c2d-4b9e-8e83-0d2a9c6a6f11", "title": "Private"}
  ],
  "items": [
    {
      "uuid": "b2d1de3e-7c52-4a45-a9ff-53f7f2c1f0aa",
      "title": "GitHub",
      "category": "login",
      "folders": ["6e5575fb-8b4c-4f46-a1f4-14b86e1b3e2c"],
      "auto_submit": 1,
      "trashed": 0,
      "archived": 0,
      "fields": [
        {"uid": 101, "label": "Username", "type": "username", "value": "octocat", "order": 1, "sensitive": 0, "deleted": 0},
        {"uid": 102, "label": "Password", "type": "password", "value": "hunter2", "order": 2, "sensitive": 1, "deleted": 0}
      ]
    }
  ]
}`

func TestLoad(t *testing.T) {
	export, err := Load(strings.NewReader(sampleExport))
	require.NoError(t, err)

	require.Len(t, export.Folders, 2)
	assert.Equal(t, "Work", export.Folders[0].Title)

	require.Len(t, export.Items, 1)
	item := export.Items[0]
	assert.Equal(t, "GitHub", item.Title)
	assert.Equal(t, "login", item.Category)
	assert.Equal(t, 1, item.AutoSubmit)
	require.Len(t, item.Fields, 2)
	assert.Equal(t, int64(101), item.Fields[0].UID)
	assert.Equal(t, 1, item.Fields[1].Sensitive)
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load(strings.NewReader("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to load the given Enpass export")
}

func TestLoadRejectsEmptyExport(t *testing.T) {
	_, err := Load(strings.NewReader(`{"folders": [], "items": []}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no items found")
}

func TestFolderTitles(t *testing.T) {
	export, err := Load(strings.NewReader(sampleExport))
	require.NoError(t, err)

	titles := export.FolderTitles()
	require.Len(t, titles, 2)
	assert.Equal(t, "Work", titles[uuid.MustParse("6e5575fb-8b4c-4f46-a1f4-14b86e1b3e2c")])
	assert.Equal(t, "Private", titles[uuid.MustParse("9f2b1ec2-3c2d-4b9e-8e83-0d2a9c6a6f11")])
}
