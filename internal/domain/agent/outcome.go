package agent

// Outcome is the result of one successfully executed intent.
type Outcome struct {
	Message string
	Details map[string]any
}
