package world

// Item is an inventory stack.
type Item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slot  int    `json:"slot"`
}
