package main

import (
	"encoding/base64"
	"encoding/json"

	"github.com/samber/lo"
)

// emptyProgress returns a fresh progress with no found categories and no
// mistakes.
func emptyProgress() UserProgress {
	return UserProgress{FoundCategories: []FoundCategory{}}
}

// decodeProgress parses a progress token. Any malformed or out-of-shape
// token degrades to empty progress instead of failing the request. A token
// without a mistakes field decodes to zero mistakes.
func decodeProgress(token string) UserProgress {
	if token == "" {
		return emptyProgress()
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		logWarn("Discarding progress token with invalid encoding: %v", err)
		return emptyProgress()
	}

	var progress UserProgress
	if err := json.Unmarshal(raw, &progress); err != nil {
		logWarn("Discarding malformed progress token: %v", err)
		return emptyProgress()
	}
	if progress.FoundCategories == nil {
		progress.FoundCategories = []FoundCategory{}
	}

	if len(progress.FoundCategories) > PuzzleCategories || progress.Mistakes < 0 {
		logWarn("Discarding progress token with invalid shape (found: %d, mistakes: %d)",
			len(progress.FoundCategories), progress.Mistakes)
		return emptyProgress()
	}
	names := lo.Map(progress.FoundCategories, func(found FoundCategory, _ int) string {
		return found.Name
	})
	if len(lo.Uniq(names)) != len(names) {
		logWarn("Discarding progress token with duplicate found categories")
		return emptyProgress()
	}
	for _, found := range progress.FoundCategories {
		if len(found.Words) != WordsPerCategory {
			logWarn("Discarding progress token with %d-word found category %q", len(found.Words), found.Name)
			return emptyProgress()
		}
	}

	return progress
}

// encodeProgress serializes progress into its token representation.
// decodeProgress(encodeProgress(p)) == p for any valid progress.
func encodeProgress(progress UserProgress) string {
	data, err := json.Marshal(progress)
	if err != nil {
		logWarn("Failed to marshal progress, encoding empty token: %v", err)
		data, _ = json.Marshal(emptyProgress())
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// rollOver returns progress unchanged when it is stamped with the given date
// key, otherwise a fresh empty progress stamped with it. Yesterday's state
// never leaks into today's puzzle.
func rollOver(progress UserProgress, dateKey string) UserProgress {
	if progress.GameDate == dateKey {
		return progress
	}
	fresh := emptyProgress()
	fresh.GameDate = dateKey
	return fresh
}
