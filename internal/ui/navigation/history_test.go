package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func typeTarget(name string) Target {
	return Target{Type: &ast.Definition{Kind: ast.Object, Name: name}}
}

func TestHistoryStartsAtHome(t *testing.T) {
	h := NewHistory()

	assert.True(t, h.Empty())
	assert.Equal(t, 0, h.Depth())
	assert.True(t, h.Target().IsZero())
	assert.Equal(t, ModeExplorer, h.Mode())
}

func TestNavigatePushesEntries(t *testing.T) {
	h := NewHistory()

	h.Navigate(typeTarget("Query"), ModeExplorer)
	h.Navigate(typeTarget("User"), ModeExplorer)

	assert.Equal(t, 2, h.Depth())
	assert.Equal(t, "User", h.Target().Type.Name)
	assert.Equal(t, ModeExplorer, h.Mode())
}

func TestBackRestoresPriorEntry(t *testing.T) {
	h := NewHistory()

	query := typeTarget("Query")
	user := typeTarget("User")
	field := Target{Type: user.Type, Field: &ast.FieldDefinition{Name: "posts"}}

	h.Navigate(query, ModeExplorer)
	h.Navigate(field, ModeField)

	h.Back()
	assert.Equal(t, 1, h.Depth())
	assert.Equal(t, "Query", h.Target().Type.Name)
	assert.Equal(t, ModeExplorer, h.Mode())
}

func TestBackToEmptyIsHome(t *testing.T) {
	h := NewHistory()

	const n = 5
	for i := 0; i < n; i++ {
		h.Navigate(typeTarget("T"), ModeExplorer)
	}
	for i := 0; i < n; i++ {
		h.Back()
	}

	assert.True(t, h.Empty())
	assert.True(t, h.Target().IsZero())
	assert.Equal(t, ModeExplorer, h.Mode())

	// Back on an empty history stays home
	h.Back()
	assert.True(t, h.Empty())
}

func TestBackRestoresModes(t *testing.T) {
	h := NewHistory()

	h.Navigate(typeTarget("Query"), ModeExplorer)
	h.Navigate(Target{}, ModeSearch)
	h.Navigate(typeTarget("User"), ModeExplorer)

	require.Equal(t, 3, h.Depth())

	h.Back()
	assert.Equal(t, ModeSearch, h.Mode())
	assert.True(t, h.Target().IsZero())

	h.Back()
	assert.Equal(t, ModeExplorer, h.Mode())
	assert.Equal(t, "Query", h.Target().Type.Name)
}

func TestHomeClearsEverything(t *testing.T) {
	h := NewHistory()

	h.Navigate(typeTarget("Query"), ModeExplorer)
	h.Navigate(typeTarget("User"), ModeField)
	h.Home()

	assert.True(t, h.Empty())
	assert.Equal(t, 0, h.Depth())
	assert.Equal(t, ModeExplorer, h.Mode())
}

func TestViewModeString(t *testing.T) {
	assert.Equal(t, "explorer", ModeExplorer.String())
	assert.Equal(t, "search", ModeSearch.String())
	assert.Equal(t, "field", ModeField.String())
}
