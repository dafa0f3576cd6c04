package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gqldoc/internal/schema"
)

func buildFrom(t *testing.T, sdl string) *Index {
	t.Helper()
	s, err := schema.Parse(sdl)
	require.NoError(t, err)
	return Build(s)
}

func has(idx *Index, name string, kind Kind) bool {
	for _, rec := range idx.Records() {
		if rec.Name == name && rec.Kind == kind {
			return true
		}
	}
	return false
}

func TestBuildExampleSchema(t *testing.T) {
	idx := buildFrom(t, `
		type Query { user: User }
		type User { id: ID!, name: String }
	`)

	expected := []struct {
		name string
		kind Kind
	}{
		{"Query", KindType},
		{"user", KindField},
		{"User", KindType},
		{"id", KindField},
		{"ID", KindType},
		{"name", KindField},
		{"String", KindType},
	}
	for _, want := range expected {
		assert.True(t, has(idx, want.name, want.kind), "missing (%s, %s)", want.name, want.kind)
	}
}

func TestBuildNoDuplicates(t *testing.T) {
	idx := buildFrom(t, `
		type Query { me: User, you: User, all: [User!]! }
		type User { id: ID!, friends: [User!]!, name: String }
	`)

	seen := make(map[Record]int)
	for _, rec := range idx.Records() {
		key := Record{Name: rec.Name, Kind: rec.Kind}
		seen[key]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "(%s, %s) appears %d times", key.Name, key.Kind, count)
	}
}

func TestBuildTerminatesOnCycles(t *testing.T) {
	// A and B reference each other; User references itself
	idx := buildFrom(t, `
		type Query { a: A, user: User }
		type A { b: B }
		type B { a: A }
		type User { self: User, id: ID! }
	`)

	assert.True(t, has(idx, "A", KindType))
	assert.True(t, has(idx, "B", KindType))
	assert.True(t, has(idx, "self", KindField))
	assert.True(t, has(idx, "a", KindField))
	assert.True(t, has(idx, "b", KindField))
}

func TestBuildTagsEveryNamedType(t *testing.T) {
	sdl := `
		type Query { user: User }
		type User { id: ID! }
		type Orphan { lost: String }
		enum Mood { GOOD, BAD }
		scalar Money
	`
	s, err := schema.Parse(sdl)
	require.NoError(t, err)
	idx := Build(s)

	for _, name := range s.TypeNames() {
		assert.True(t, has(idx, name, KindType), "type %s missing from index", name)
	}

	// Unreachable from roots, still indexed as a type
	assert.True(t, has(idx, "Orphan", KindType))
	// But its fields are not reachable
	assert.False(t, has(idx, "lost", KindField))
}

func TestBuildExcludesIntrospection(t *testing.T) {
	idx := buildFrom(t, `type Query { ok: Boolean }`)

	for _, rec := range idx.Records() {
		assert.False(t, schema.IsIntrospection(rec.Name), "introspection name %s indexed", rec.Name)
	}
}

func TestBuildWalksAllRoots(t *testing.T) {
	idx := buildFrom(t, `
		type Query { ping: String }
		type Mutation { write(v: String): WriteResult }
		type Subscription { changed: Delta }
		type WriteResult { ok: Boolean }
		type Delta { seq: Int }
	`)

	assert.True(t, has(idx, "write", KindField))
	assert.True(t, has(idx, "ok", KindField))
	assert.True(t, has(idx, "changed", KindField))
	assert.True(t, has(idx, "seq", KindField))
}

func TestFieldRecordsCarryOwner(t *testing.T) {
	idx := buildFrom(t, `
		type Query { user: User }
		type User { id: ID! }
	`)

	for _, rec := range idx.Records() {
		if rec.Name == "user" && rec.Kind == KindField {
			assert.Equal(t, "Query", rec.OwnerType)
		}
		if rec.Name == "id" && rec.Kind == KindField {
			assert.Equal(t, "User", rec.OwnerType)
		}
	}
}

func TestBuildNilSchema(t *testing.T) {
	idx := Build(nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Records())
}
