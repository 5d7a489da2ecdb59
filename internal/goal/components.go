package goal

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const listTarget = "#goal-list"

// List renders the goal list fragment swapped in by htmx. An empty list
// renders a single placeholder item.
func List(goals []Goal) g.Node {
	if len(goals) == 0 {
		return h.Ul(h.ID("goal-list"),
			h.Li(g.Text("No goals found")),
		)
	}

	return h.Ul(h.ID("goal-list"),
		g.Map(goals, listItem),
	)
}

func listItem(goal Goal) g.Node {
	state, next := "Incomplete", "mark-complete"
	if goal.IsComplete {
		state, next = "Complete", "mark-incomplete"
	}

	return h.Li(
		g.Textf("%s - %s", goal.Title, state),
		h.Button(
			g.Attr("hx-patch", fmt.Sprintf("/view/goal/%d/%s", goal.ID, next)),
			g.Attr("hx-swap", "outerHTML"),
			g.Attr("hx-target", listTarget),
			g.Text("Toggle Completion"),
		),
		h.Button(
			g.Attr("hx-delete", fmt.Sprintf("/view/goal/%d", goal.ID)),
			g.Attr("hx-swap", "outerHTML"),
			g.Attr("hx-target", listTarget),
			g.Text("Delete"),
		),
	)
}

func CreationForm() g.Node {
	return h.Form(
		g.Attr("hx-post", "/view/goal"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-target", listTarget),
		h.Input(h.Name("title"), h.Type("text"), h.Placeholder("Goal title")),
		h.Button(g.Text("Create")),
	)
}
