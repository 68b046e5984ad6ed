package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codetrove/internal/model"
)

func sampleSnippets() []model.Snippet {
	return []model.Snippet{
		{ID: "1", Title: "Hello", Code: "console.log(1)"},
		{ID: "2", Title: "Bye", Code: "x=2"},
	}
}

func TestDerive_NoSelectionIsIdentity(t *testing.T) {
	snippets := sampleSnippets()
	folders := []model.Folder{{ID: "f1", Name: "js", SnippetIDs: []string{"1"}}}

	for _, sel := range []string{"", FolderAll} {
		got := DeriveVisibleSnippets(snippets, folders, sel, "")
		assert.Equal(t, snippets, got, "selection %q should pass everything through", sel)
	}
}

func TestDerive_FolderFilter(t *testing.T) {
	snippets := sampleSnippets()
	folders := []model.Folder{{ID: "f1", Name: "js", SnippetIDs: []string{"1"}}}

	got := DeriveVisibleSnippets(snippets, folders, "f1", "")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestDerive_FolderMatchedByOptimisticID(t *testing.T) {
	snippets := sampleSnippets()
	folders := []model.Folder{{LocalID: "local-abc", Name: "pending", SnippetIDs: []string{"2"}}}

	got := DeriveVisibleSnippets(snippets, folders, "local-abc", "")
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestDerive_UnknownFolderYieldsEmpty(t *testing.T) {
	got := DeriveVisibleSnippets(sampleSnippets(), nil, "no-such-folder", "")
	assert.NotNil(t, got)
	assert.Empty(t, got, "unknown folder must yield empty, not the full set")
}

func TestDerive_EmptyMembershipYieldsEmpty(t *testing.T) {
	folders := []model.Folder{{ID: "f1", Name: "empty", SnippetIDs: []string{}}}
	got := DeriveVisibleSnippets(sampleSnippets(), folders, "f1", "")
	assert.Empty(t, got)
}

func TestDerive_DanglingReferencesAreOmitted(t *testing.T) {
	// "99" was deleted from the snippet collection; the folder still lists it.
	folders := []model.Folder{{ID: "f1", Name: "js", SnippetIDs: []string{"99", "1"}}}

	got := DeriveVisibleSnippets(sampleSnippets(), folders, "f1", "")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestDerive_SearchMatchesTitleOrCode(t *testing.T) {
	snippets := sampleSnippets()

	byTitle := DeriveVisibleSnippets(snippets, nil, FolderAll, "bye")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "2", byTitle[0].ID)

	byCode := DeriveVisibleSnippets(snippets, nil, FolderAll, "console")
	require.Len(t, byCode, 1)
	assert.Equal(t, "1", byCode[0].ID)
}

func TestDerive_SearchTermIsNormalized(t *testing.T) {
	snippets := sampleSnippets()

	got := DeriveVisibleSnippets(snippets, nil, FolderAll, "  HELLO  ")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Whitespace-only terms are skipped entirely.
	assert.Equal(t, snippets, DeriveVisibleSnippets(snippets, nil, FolderAll, "   "))
}

func TestDerive_SearchAppliesAfterFolderFilter(t *testing.T) {
	snippets := sampleSnippets()
	folders := []model.Folder{{ID: "f1", SnippetIDs: []string{"1"}}}

	// "x=2" matches snippet 2 by code, but 2 is not in the folder.
	got := DeriveVisibleSnippets(snippets, folders, "f1", "x=2")
	assert.Empty(t, got)
}

func TestDerive_PreservesStoreOrder(t *testing.T) {
	snippets := []model.Snippet{
		{ID: "3", Title: "loop c", Code: ""},
		{ID: "1", Title: "loop a", Code: ""},
		{ID: "2", Title: "loop b", Code: ""},
	}
	folders := []model.Folder{{ID: "f1", SnippetIDs: []string{"1", "2", "3"}}}

	got := DeriveVisibleSnippets(snippets, folders, "f1", "loop")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"3", "1", "2"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestDerive_IsPureAndIdempotent(t *testing.T) {
	snippets := sampleSnippets()
	folders := []model.Folder{{ID: "f1", SnippetIDs: []string{"1"}}}

	first := DeriveVisibleSnippets(snippets, folders, "f1", "hello")
	second := DeriveVisibleSnippets(snippets, folders, "f1", "hello")
	assert.Equal(t, first, second)

	// Inputs are not mutated.
	assert.Equal(t, sampleSnippets(), snippets)
	assert.Equal(t, []string{"1"}, folders[0].SnippetIDs)
}

func TestDerive_ResultIsACopy(t *testing.T) {
	snippets := sampleSnippets()
	got := DeriveVisibleSnippets(snippets, nil, FolderAll, "")

	got[0].Title = "mutated"
	assert.Equal(t, "Hello", snippets[0].Title)
}

func TestResolveFolder_FirstMatchWins(t *testing.T) {
	folders := []model.Folder{
		{ID: "f1", Name: "first", SnippetIDs: []string{}},
		{LocalID: "f1", Name: "second", SnippetIDs: []string{}},
	}

	folder, ok := ResolveFolder(folders, "f1")
	require.True(t, ok)
	assert.Equal(t, "first", folder.Name)
}
