package main

import (
	"strings"

	"github.com/samber/lo"
)

// normalizeWord trims and lowercases a word for comparison. Matching is
// case-insensitive; stored words keep their submitted casing.
func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// wordSet collapses words into a normalized set. Duplicates collapse, so a
// selection with repeated words can never equal a full category.
func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[normalizeWord(word)] = struct{}{}
	}
	return set
}

// sameWordSet reports whether two normalized word sets are equal.
func sameWordSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for word := range a {
		if _, ok := b[word]; !ok {
			return false
		}
	}
	return true
}

// evaluateSelection checks a selection against the daily puzzle and returns
// the outcome together with the progress to re-encode. Categories are
// word-disjoint, so at most one can match. Re-guessing an already-found
// category succeeds without duplicating it or touching the mistake count.
func evaluateSelection(puzzle DailyPuzzle, progress UserProgress, selection []string) (SelectionResult, UserProgress) {
	if len(selection) != WordsPerCategory {
		return SelectionResult{Valid: false, Message: MsgSelectionCount}, progress
	}

	selected := wordSet(selection)
	for _, cat := range puzzle.Categories {
		if !sameWordSet(selected, wordSet(cat.Words)) {
			continue
		}

		alreadyFound := lo.SomeBy(progress.FoundCategories, func(found FoundCategory) bool {
			return found.Name == cat.Name
		})
		if !alreadyFound {
			progress.FoundCategories = append(progress.FoundCategories, FoundCategory{
				Name:  cat.Name,
				Words: append([]string(nil), selection...),
			})
		}

		remaining := PuzzleCategories - len(progress.FoundCategories)
		return SelectionResult{
			Valid:        true,
			CategoryName: cat.Name,
			Remaining:    remaining,
			GameComplete: remaining == 0,
		}, progress
	}

	progress.Mistakes++
	return SelectionResult{
		Valid:           false,
		Message:         MsgNoCategory,
		MistakeRecorded: true,
	}, progress
}
