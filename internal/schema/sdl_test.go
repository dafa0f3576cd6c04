package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSDLObject(t *testing.T) {
	s := mustParse(t)

	sdl := SDL(s.Type("User"))
	assert.Contains(t, sdl, "type User implements Node {")
	assert.Contains(t, sdl, "id: ID!")
	assert.Contains(t, sdl, "posts: [Post!]!")
	assert.Contains(t, sdl, "A registered account.")
}

func TestSDLFieldArguments(t *testing.T) {
	s := mustParse(t)

	sdl := SDL(s.Type("Query"))
	assert.Contains(t, sdl, "user(id: ID!): User")
	assert.NotContains(t, sdl, "__schema")
}

func TestSDLEnumUnionScalar(t *testing.T) {
	s := mustParse(t)

	assert.Contains(t, SDL(s.Type("Role")), "enum Role {")
	assert.Contains(t, SDL(s.Type("Role")), "ADMIN")
	assert.Equal(t, "union SearchResult = User | Post\n", SDL(s.Type("SearchResult")))
	assert.Equal(t, "scalar DateTime\n", SDL(s.Type("DateTime")))
	assert.Equal(t, "", SDL(nil))
}
