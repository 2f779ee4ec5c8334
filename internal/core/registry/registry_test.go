package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rendis/resumegen/internal/core/entity"
	"github.com/rendis/resumegen/internal/core/helpers"
)

func TestList_AllTypes(t *testing.T) {
	r := New()
	list := r.List("")
	assert.Contains(t, list[entity.DocumentTypeResume], "classic")
	assert.Contains(t, list[entity.DocumentTypeResume], "two-column")
	assert.Contains(t, list[entity.DocumentTypeCoverLetter], "classic")
}

func TestList_FilteredByType(t *testing.T) {
	r := New()
	list := r.List(entity.DocumentTypeCoverLetter)
	_, hasResume := list[entity.DocumentTypeResume]
	assert.False(t, hasResume)
	assert.Len(t, list[entity.DocumentTypeCoverLetter], 1)
}

func TestGet_Found(t *testing.T) {
	r := New()
	info, ok := r.Get(entity.DocumentTypeResume, "classic")
	require.True(t, ok)
	assert.Equal(t, "classic", info.Name)
	assert.Equal(t, entity.DocumentTypeResume, info.DocumentType)
}

func TestGet_NotFound(t *testing.T) {
	r := New()
	_, ok := r.Get(entity.DocumentTypeResume, "nonexistent")
	assert.False(t, ok)
}

func TestHelperOf_ConstructsWorkingHelper(t *testing.T) {
	r := New()
	ctor, ok := r.HelperOf(entity.DocumentTypeResume, "classic")
	require.True(t, ok)

	h := ctor(entity.Data{"personalInfo": map[string]any{"name": "Ada", "email": "a@example.com"}}, helpers.Config{})
	assert.Nil(t, h.ValidateData())
	assert.Contains(t, h.Render(), "Ada")
}

func TestAvailableNames_SortedAndScoped(t *testing.T) {
	r := New()
	names := r.AvailableNames(entity.DocumentTypeResume)
	assert.Equal(t, []string{"classic", "two-column"}, names)
}
