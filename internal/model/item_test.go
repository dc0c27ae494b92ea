package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	day := time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC)

	t.Run("ok", func(t *testing.T) {
		require.NoError(t, Validate([]Item{{ID: 1, Name: "a", Date: day}, {ID: 2, Name: "b", Date: day}}))
	})
	t.Run("empty collection", func(t *testing.T) {
		require.NoError(t, Validate(nil))
	})
	t.Run("duplicate id", func(t *testing.T) {
		err := Validate([]Item{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})
	t.Run("empty name", func(t *testing.T) {
		err := Validate([]Item{{ID: 3}})
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestExcerpt(t *testing.T) {
	it := Item{Text: "héllo world"}
	assert.Equal(t, "héllo...", it.Excerpt(5))
	assert.Equal(t, "héllo world...", it.Excerpt(100))
}

func TestFind(t *testing.T) {
	items := []Item{{ID: 4, Name: "four"}, {ID: 9, Name: "nine"}}
	got, ok := Find(items, 9)
	require.True(t, ok)
	assert.Equal(t, "nine", got.Name)

	_, ok = Find(items, 5)
	assert.False(t, ok)
}

func TestValidateTree(t *testing.T) {
	good := []Node{{Name: "p", Kind: KindFolder, Children: []Node{{Name: "f", Kind: KindFile}}}}
	require.NoError(t, ValidateTree(good))
	require.NoError(t, ValidateTree(nil))

	bad := []Node{{Name: "p", Kind: KindFolder, Children: []Node{{Name: "ok", Kind: KindFile}, {Name: "x", Kind: "link"}}}}
	err := ValidateTree(bad)
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "Tree[0].Children[1].Kind")
	assert.Contains(t, err.Error(), `"link"`)

	fileWithKids := []Node{{Name: "f", Kind: KindFile, Children: []Node{{Name: "g", Kind: KindFile}}}}
	assert.ErrorIs(t, ValidateTree(fileWithKids), ErrFileChildren)
}

func TestDatasetValidate(t *testing.T) {
	day := time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		ds   Dataset
		is   error
		path string
	}{
		{"empty", Dataset{}, nil, ""},
		{"empty name", Dataset{Cards: []Item{{ID: 1, Name: "a", Date: day}, {ID: 2, Date: day}}}, ErrEmptyName, "Cards[1].Name"},
		{"duplicate id", Dataset{Cards: []Item{{ID: 5, Name: "a"}, {ID: 5, Name: "b"}}}, ErrDuplicateID, "Cards"},
		{"nested kind", Dataset{Tree: []Node{{Name: "d", Kind: KindFolder, Children: []Node{{Name: "e", Kind: KindFolder, Children: []Node{{Name: "z"}}}}}}}, ErrUnknownKind, "Tree[0].Children[0].Children[0].Kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ds.Validate()
			if tt.is == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.is)
			assert.True(t, strings.HasPrefix(err.Error(), tt.path+": "), err.Error())
		})
	}
}
