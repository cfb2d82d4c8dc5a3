package completion

import (
	"os"
	"path/filepath"
	"strings"
)

const maxItems = 50

// Paths lists files under root that match query. A query containing a
// slash only lists the directory it names; otherwise the whole tree is
// walked, capped at maxItems entries. Hidden entries are skipped unless
// the query asks for them.
func Paths(root, query string) []Item {
	if i := strings.LastIndex(query, "/"); i >= 0 {
		return listDir(root, query[:i+1], query[i+1:])
	}
	base := query

	var items []Item
	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || path == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && !strings.HasPrefix(base, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		items = append(items, pathItem(filepath.ToSlash(rel), d.IsDir()))
		if len(items) >= maxItems {
			return filepath.SkipAll
		}
		return nil
	})
	return FuzzyMatch(base, items)
}

func listDir(root, dir, base string) []Item {
	full := dir
	if !filepath.IsAbs(dir) {
		full = filepath.Join(root, dir)
	}
	entries, err := os.ReadDir(full)
	if err != nil {
		return nil
	}
	var items []Item
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		items = append(items, pathItem(dir+e.Name(), e.IsDir()))
		if len(items) >= maxItems {
			break
		}
	}
	if base == "" {
		return items
	}
	var out []Item
	for _, it := range FuzzyMatch(base, trimDir(items, dir)) {
		it.Text = dir + it.Text
		out = append(out, it)
	}
	return out
}

func trimDir(items []Item, dir string) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.Text = strings.TrimPrefix(it.Text, dir)
		out[i] = it
	}
	return out
}

func pathItem(path string, isDir bool) Item {
	if isDir {
		return Item{Text: path + "/", Description: "dir"}
	}
	return Item{Text: path}
}
