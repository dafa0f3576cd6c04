package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

const testSchema = `
type Query {
	user(id: ID!): User
	users: [User!]!
	search(term: String!): SearchResult
	node(id: ID!): Node
}

type Mutation {
	createUser(input: CreateUserInput!): User
}

type Subscription {
	userCreated: User
}

"A registered account."
type User implements Node {
	id: ID!
	name: String!
	email: String
	role: Role!
	posts: [Post!]!
}

type Post implements Node {
	id: ID!
	title: String!
	author: User!
}

interface Node {
	id: ID!
}

union SearchResult = User | Post

input CreateUserInput {
	name: String!
	role: Role
}

enum Role {
	ADMIN
	USER
	GUEST
}

scalar DateTime
`

func mustParse(t *testing.T) *Schema {
	t.Helper()
	s, err := Parse(testSchema)
	require.NoError(t, err)
	return s
}

func TestParseInvalidSDL(t *testing.T) {
	_, err := Parse("type Query {")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.graphql")
	require.NoError(t, os.WriteFile(path, []byte(testSchema), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	assert.NotNil(t, s.Type("User"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.graphql"))
	assert.Error(t, err)
}

func TestRootOperations(t *testing.T) {
	s := mustParse(t)

	roots := s.RootOperations()
	require.Len(t, roots, 3)
	assert.Equal(t, "query", roots[0].Op)
	assert.Equal(t, "Query", roots[0].Type.Name)
	assert.Equal(t, "mutation", roots[1].Op)
	assert.Equal(t, "subscription", roots[2].Op)

	assert.True(t, s.IsRootType(s.Type("Query")))
	assert.False(t, s.IsRootType(s.Type("User")))
}

func TestTypeNamesExcludesIntrospection(t *testing.T) {
	s := mustParse(t)

	for _, name := range s.TypeNames() {
		assert.False(t, IsIntrospection(name), "introspection type %s leaked", name)
	}
	assert.Contains(t, s.TypeNames(), "User")
	assert.Contains(t, s.TypeNames(), "Role")
}

func TestFieldLookup(t *testing.T) {
	s := mustParse(t)

	field := s.Field("User", "posts")
	require.NotNil(t, field)
	assert.Equal(t, "Post", Underlying(field.Type))

	assert.Nil(t, s.Field("User", "nope"))
	assert.Nil(t, s.Field("Nope", "id"))
}

func TestKindPredicates(t *testing.T) {
	s := mustParse(t)

	assert.True(t, IsObjectLike(s.Type("User")))
	assert.True(t, IsObjectLike(s.Type("Node")))
	assert.False(t, IsObjectLike(s.Type("Role")))
	assert.False(t, IsObjectLike(s.Type("SearchResult")))

	assert.True(t, IsLeaf(s.Type("Role")))
	assert.True(t, IsLeaf(s.Type("String")))
	assert.False(t, IsLeaf(s.Type("User")))
}

func TestUnionMembers(t *testing.T) {
	s := mustParse(t)

	assert.Equal(t, []string{"Post", "User"}, s.UnionMembers("SearchResult"))
	assert.Nil(t, s.UnionMembers("User"))
}

func TestImplementors(t *testing.T) {
	s := mustParse(t)

	assert.Equal(t, []string{"Post", "User"}, s.Implementors("Node"))
	assert.Empty(t, s.Implementors("User"))
}

func TestEnumValues(t *testing.T) {
	s := mustParse(t)

	assert.Equal(t, []string{"ADMIN", "USER", "GUEST"}, s.EnumValues("Role"))
	assert.Nil(t, s.EnumValues("User"))
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "type", KindLabel(ast.Object))
	assert.Equal(t, "interface", KindLabel(ast.Interface))
	assert.Equal(t, "union", KindLabel(ast.Union))
	assert.Equal(t, "enum", KindLabel(ast.Enum))
	assert.Equal(t, "scalar", KindLabel(ast.Scalar))
	assert.Equal(t, "input", KindLabel(ast.InputObject))
}

func TestFieldsSkipsIntrospection(t *testing.T) {
	s := mustParse(t)

	for _, field := range Fields(s.Type("Query")) {
		assert.False(t, IsIntrospection(field.Name))
	}
}
