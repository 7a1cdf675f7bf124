package world

type GoalKind string

const (
	// GoalBlock targets an exact block coordinate.
	GoalBlock GoalKind = "block"
	// GoalNear targets proximity to a coordinate.
	GoalNear GoalKind = "near"
	// GoalFollow keeps following an entity at a distance; it never
	// completes on its own.
	GoalFollow GoalKind = "follow"
)

// Goal describes a movement destination handed to the pathfinder.
type Goal struct {
	Kind     GoalKind
	Pos      BlockPos
	Range    float64
	EntityID int32
}
