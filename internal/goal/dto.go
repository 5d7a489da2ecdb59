package goal

type GoalOptions struct {
	Title string `json:"title"`
}

type GoalCompletion struct {
	IsComplete bool `json:"isComplete"`
}
