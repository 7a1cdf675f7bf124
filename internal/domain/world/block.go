package world

// Block is a single world block as reported by the bot gateway.
type Block struct {
	Name     string   `json:"name"`
	Pos      BlockPos `json:"position"`
	Solid    bool     `json:"solid"`
	Diggable bool     `json:"diggable"`
}

const AirBlock = "air"

func (b Block) IsAir() bool {
	return b.Name == "" || b.Name == AirBlock
}
