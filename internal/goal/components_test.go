package goal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/goal-tracker/internal/goal"
)

func render(t *testing.T, goals []goal.Goal) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, goal.List(goals).Render(&b))
	return b.String()
}

func TestList_Empty(t *testing.T) {
	html := render(t, nil)

	assert.Equal(t, `<ul id="goal-list"><li>No goals found</li></ul>`, html)
	assert.Equal(t, 1, strings.Count(html, "<li>"))
}

func TestList_OneItemPerGoal(t *testing.T) {
	goals := []goal.Goal{
		{ID: 1, Title: "Write tests", IsComplete: false},
		{ID: 2, Title: "Deploy", IsComplete: true},
		{ID: 3, Title: "Celebrate", IsComplete: false},
	}

	html := render(t, goals)

	assert.Equal(t, len(goals), strings.Count(html, "<li>"))
	assert.Equal(t, len(goals), strings.Count(html, "hx-patch="))
	assert.Equal(t, len(goals), strings.Count(html, "hx-delete="))
	assert.NotContains(t, html, "No goals found")

	assert.Contains(t, html, "Write tests - Incomplete")
	assert.Contains(t, html, `hx-patch="/view/goal/1/mark-complete"`)
	assert.Contains(t, html, "Deploy - Complete")
	assert.Contains(t, html, `hx-patch="/view/goal/2/mark-incomplete"`)
	assert.Contains(t, html, `hx-delete="/view/goal/3"`)
	assert.Equal(t, 2*len(goals), strings.Count(html, `hx-target="#goal-list"`))
	assert.Equal(t, 2*len(goals), strings.Count(html, `hx-swap="outerHTML"`))
}

func TestList_EscapesTitles(t *testing.T) {
	html := render(t, []goal.Goal{{ID: 1, Title: "<script>alert(1)</script>"}})

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestCreationForm(t *testing.T) {
	var b strings.Builder
	require.NoError(t, goal.CreationForm().Render(&b))
	html := b.String()

	assert.Contains(t, html, `hx-post="/view/goal"`)
	assert.Contains(t, html, `hx-target="#goal-list"`)
	assert.Contains(t, html, `name="title"`)
}
