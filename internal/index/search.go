package index

import (
	"github.com/sahilm/fuzzy"
)

// Match is a search hit with its relevance score.
type Match struct {
	Record
	Score int
}

// source adapts the index to fuzzy.Source, matching on record names.
type source struct {
	records []Record
}

func (s source) String(i int) string { return s.records[i].Name }
func (s source) Len() int            { return len(s.records) }

// Search fuzzy-matches the query against record names and returns hits
// ordered by descending score. An empty query means no active search
// and yields no results.
func (idx *Index) Search(query string) []Match {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, source{records: idx.records})

	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, Match{
			Record: idx.records[m.Index],
			Score:  m.Score,
		})
	}
	return out
}
