package main

import (
	"crypto/md5"
	"encoding/hex"
	"math/rand"
	"strconv"

	"github.com/samber/lo"
)

// todayKey returns the current UTC date key. The day boundary is UTC
// midnight regardless of the server's local timezone.
func (app *App) todayKey() string {
	return app.now().UTC().Format(dateKeyLayout)
}

// dateSeed derives the generator seed for a date key by interpreting the
// first 8 hex characters of its MD5 digest as an integer. The digest is not
// security-sensitive; it only has to be stable across runs and platforms.
func dateSeed(dateKey string) int64 {
	sum := md5.Sum([]byte(dateKey))
	digest := hex.EncodeToString(sum[:])
	seed, err := strconv.ParseUint(digest[:8], 16, 64)
	if err != nil {
		logWarn("Failed to parse date seed for %q: %v", dateKey, err)
		return 0
	}
	return int64(seed)
}

// fallbackCategories returns the fixed category set used whenever the pool
// cannot supply four usable categories. Same four categories every time;
// only the word grid is shuffled.
func fallbackCategories() []Category {
	return []Category{
		{Name: "Fruits", Words: []string{"Apple", "Banana", "Orange", "Grape"}},
		{Name: "Animals", Words: []string{"Cat", "Dog", "Horse", "Cow"}},
		{Name: "Colors", Words: []string{"Red", "Blue", "Green", "Yellow"}},
		{Name: "Transport", Words: []string{"Car", "Bus", "Train", "Bicycle"}},
	}
}

// buildDailyPuzzle derives the puzzle for a date key from the category pool.
// The generator is seeded from the date key and scoped to this call, so the
// same inputs always produce byte-identical output, including word order.
func buildDailyPuzzle(dateKey string, pool []Category) DailyPuzzle {
	usable := lo.Filter(pool, func(cat Category, _ int) bool {
		return len(cat.Words) >= WordsPerCategory
	})

	rng := rand.New(rand.NewSource(dateSeed(dateKey)))

	var selected []Category
	if len(usable) >= PuzzleCategories {
		selected = make([]Category, 0, PuzzleCategories)
		for _, idx := range rng.Perm(len(usable))[:PuzzleCategories] {
			cat := usable[idx]
			selected = append(selected, Category{
				Name:  cat.Name,
				Words: append([]string(nil), cat.Words[:WordsPerCategory]...),
			})
		}
	} else {
		if len(pool) > 0 {
			logWarn("Only %d usable categories in pool of %d, using fallback puzzle", len(usable), len(pool))
		}
		selected = fallbackCategories()
	}

	// The word grid is shuffled on every path; an unshuffled grid would
	// hand out the groupings in category order.
	words := flattenWords(selected)
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})

	return DailyPuzzle{
		DateKey:    dateKey,
		Categories: selected,
		Words:      words,
	}
}

// flattenWords concatenates the word lists of the given categories.
func flattenWords(categories []Category) []string {
	return lo.FlatMap(categories, func(cat Category, _ int) []string {
		return append([]string(nil), cat.Words...)
	})
}
