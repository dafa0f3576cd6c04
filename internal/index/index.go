package index

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"

	"gqldoc/internal/schema"
)

// Kind classifies a search record.
type Kind string

const (
	KindType         Kind = "type"
	KindField        Kind = "field"
	KindQuery        Kind = "query"
	KindMutation     Kind = "mutation"
	KindSubscription Kind = "subscription"
)

// Record is one searchable schema element. Identity is the
// (Name, Kind) pair; OwnerType is carried along for field records so a
// search hit can be navigated to, and does not participate in
// deduplication.
type Record struct {
	Name      string
	Kind      Kind
	OwnerType string // owning type name, set for field records
}

// Index is a deduplicated flat list of searchable schema elements.
type Index struct {
	records []Record
}

type recordKey struct {
	name string
	kind Kind
}

// Build walks the schema and produces the search index: every named
// non-introspection type tagged as a type record, plus every field
// reachable from the root operation types tagged as a field record.
// The walk uses an explicit worklist with a visited set so cyclic type
// graphs terminate and stack depth stays flat on deep schemas.
func Build(s *schema.Schema) *Index {
	idx := &Index{}
	if s == nil {
		return idx
	}

	seen := make(map[recordKey]struct{})
	add := func(rec Record) {
		key := recordKey{name: rec.Name, kind: rec.Kind}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		idx.records = append(idx.records, rec)
	}

	// All named types, in sorted order for a stable listing
	for _, name := range s.TypeNames() {
		add(Record{Name: name, Kind: KindType})
	}

	// Field graph walk from each root operation type
	var work []*ast.Definition
	for _, root := range s.RootOperations() {
		work = append(work, root.Type)
	}

	visited := make(map[string]struct{})
	for len(work) > 0 {
		def := work[len(work)-1]
		work = work[:len(work)-1]

		if _, ok := visited[def.Name]; ok {
			continue
		}
		visited[def.Name] = struct{}{}

		for _, field := range schema.Fields(def) {
			add(Record{Name: field.Name, Kind: KindField, OwnerType: def.Name})

			under := s.Type(schema.Underlying(field.Type))
			if under == nil || schema.IsIntrospection(under.Name) {
				continue
			}
			if _, ok := visited[under.Name]; ok {
				continue
			}
			if schema.IsObjectLike(under) {
				work = append(work, under)
			}
		}
	}

	return idx
}

// Len returns the number of records in the index.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Records returns all records sorted by name, then kind. The returned
// slice is a copy.
func (idx *Index) Records() []Record {
	out := make([]Record, len(idx.records))
	copy(out, idx.records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}
