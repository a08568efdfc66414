package legaldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"nyaay-saathi/internal/models"
)

// LoadKnowledgeBase reads the Q/A table from path. When the file does not exist
// the built-in table is returned and written to path so operators can edit it.
// The returned bool reports whether the file was created.
func LoadKnowledgeBase(path string) ([]models.QAEntry, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := WriteKnowledgeBase(path, DefaultQAPairs); err != nil {
			return DefaultQAPairs, false, err
		}
		return DefaultQAPairs, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read knowledge base: %w", err)
	}

	var kb models.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, false, fmt.Errorf("failed to parse knowledge base %s: %w", path, err)
	}
	return kb.QAPairs, false, nil
}

func WriteKnowledgeBase(path string, pairs []models.QAEntry) error {
	data, err := json.MarshalIndent(models.KnowledgeBase{QAPairs: pairs}, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal knowledge base: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write knowledge base: %w", err)
	}
	return nil
}

// MergeQAPairs appends the entries of extra whose question is not already in
// base. Questions are compared case-insensitively after trimming.
func MergeQAPairs(base, extra []models.QAEntry) ([]models.QAEntry, int) {
	seen := make(map[string]struct{}, len(base))
	for _, e := range base {
		seen[questionKey(e.Question)] = struct{}{}
	}

	merged := append([]models.QAEntry(nil), base...)
	added := 0
	for _, e := range extra {
		key := questionKey(e.Question)
		if key == "" || strings.TrimSpace(e.Answer) == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, e)
		added++
	}
	return merged, added
}

func questionKey(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
