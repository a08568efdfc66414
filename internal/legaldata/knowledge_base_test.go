package legaldata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nyaay-saathi/internal/models"
)

func TestLoadKnowledgeBase_WritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")

	pairs, created, err := LoadKnowledgeBase(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, DefaultQAPairs, pairs)

	_, err = os.Stat(path)
	require.NoError(t, err)

	again, created, err := LoadKnowledgeBase(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, DefaultQAPairs, again)
}

func TestLoadKnowledgeBase_PreservesFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	want := []models.QAEntry{
		{Question: "zeta question", Answer: "z"},
		{Question: "alpha question", Answer: "a"},
	}
	require.NoError(t, WriteKnowledgeBase(path, want))

	got, _, err := LoadKnowledgeBase(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadKnowledgeBase_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, err := LoadKnowledgeBase(path)
	assert.Error(t, err)
}

func TestTables_AreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, j := range Jargon {
		assert.False(t, seen[j.Term], "duplicate jargon term %q", j.Term)
		seen[j.Term] = true
	}

	for _, tbl := range PhraseTables {
		assert.NotEmpty(t, tbl.Phrases, tbl.Language)
	}
	assert.Len(t, PhraseTables, 7)
	assert.Len(t, DocumentTemplates, 4)
	assert.Len(t, Timelines, 3)
}

func TestMergeQAPairs(t *testing.T) {
	base := []models.QAEntry{{Question: "What is an FIR?", Answer: "A First Information Report."}}
	extra := []models.QAEntry{
		{Question: "  what is an fir? ", Answer: "duplicate"},
		{Question: "What is bail?", Answer: "Temporary release."},
		{Question: "What is bail?", Answer: "second copy"},
		{Question: "No answer", Answer: " "},
		{Question: "", Answer: "no question"},
	}

	merged, added := MergeQAPairs(base, extra)
	assert.Equal(t, 1, added)
	require.Len(t, merged, 2)
	assert.Equal(t, "A First Information Report.", merged[0].Answer)
	assert.Equal(t, "Temporary release.", merged[1].Answer)
	assert.Len(t, base, 1)
}
