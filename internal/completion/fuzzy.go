package completion

import (
	"sort"
	"strings"
	"unicode"
)

// FuzzyMatch keeps the items whose text contains query as a subsequence,
// best first. An empty query keeps every item in order.
func FuzzyMatch(query string, items []Item) []Item {
	if query == "" {
		return items
	}

	q := []rune(strings.ToLower(query))
	var out []Item
	for _, it := range items {
		if score := score(q, []rune(strings.ToLower(it.Text))); score > 0 {
			it.Score = score
			out = append(out, it)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func score(query, text []rune) int {
	if len(text) == 0 {
		return 0
	}
	if string(query) == string(text) {
		return 1000
	}
	// Prefix matches rank above fuzzy ones, shorter first.
	if strings.HasPrefix(string(text), string(query)) {
		return 800 + max(100-len(text), 0)
	}

	total, qi, last, run := 0, 0, -1, 0
	for i, r := range text {
		if qi == len(query) {
			break
		}
		if r != query[qi] {
			continue
		}
		total += 10
		if i == last+1 {
			run++
			total += run * 5
		} else {
			run = 0
		}
		if i == 0 || isBoundary(text[i-1]) {
			total += 15
		}
		last = i
		qi++
	}
	if qi < len(query) {
		return 0
	}

	total -= len(text) - len(query)
	return max(total, 1)
}

func isBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
