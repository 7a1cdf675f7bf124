package simulated

import (
	"strings"

	"github.com/r3lic-pnw/craftagent/internal/domain/world"
)

// terrainAt is the default flat world under the overlay map: grass on
// top, a few layers of dirt, stone all the way down.
func (g *Gateway) terrainAt(pos world.BlockPos) world.Block {
	switch {
	case pos.Y > g.cfg.GroundLevel:
		return world.Block{Name: world.AirBlock, Pos: pos}
	case pos.Y == g.cfg.GroundLevel:
		return world.Block{Name: "grass_block", Pos: pos, Solid: true, Diggable: true}
	case pos.Y > g.cfg.GroundLevel-4:
		return world.Block{Name: "dirt", Pos: pos, Solid: true, Diggable: true}
	default:
		return world.Block{Name: "stone", Pos: pos, Solid: true, Diggable: true}
	}
}

// terrainDepth maps a terrain block name to the Y offset below ground
// level where the nearest such block sits. Used by FindBlock so gather
// works against the procedural layers, not just the overlay.
var terrainDepth = map[string]int{
	"grass_block": 0,
	"dirt":        -1,
	"stone":       -4,
}

// blockDrops maps a dug block to the item it yields. Unlisted blocks
// drop themselves.
var blockDrops = map[string]string{
	"grass_block": "dirt",
	"stone":       "cobblestone",
}

func dropFor(blockName string) string {
	if item, ok := blockDrops[blockName]; ok {
		return item
	}
	return blockName
}

// craftRecipe inputs keyed with a "#" prefix match by name suffix, the
// way item tags group plank variants.
type craftRecipe struct {
	output int
	inputs map[string]int
}

var craftRecipes = map[string]craftRecipe{
	"stick":          {output: 4, inputs: map[string]int{"#planks": 2}},
	"wooden_pickaxe": {output: 1, inputs: map[string]int{"#planks": 3, "stick": 2}},
	"wooden_axe":     {output: 1, inputs: map[string]int{"#planks": 3, "stick": 2}},
	"crafting_table": {output: 1, inputs: map[string]int{"#planks": 4}},
}

func init() {
	for _, wood := range []string{"oak", "birch", "spruce", "jungle", "acacia", "dark_oak"} {
		craftRecipes[wood+"_planks"] = craftRecipe{
			output: 4,
			inputs: map[string]int{wood + "_log": 1},
		}
	}
}

func matchesIngredient(itemName, ingredient string) bool {
	if tag, ok := strings.CutPrefix(ingredient, "#"); ok {
		return strings.HasSuffix(itemName, tag)
	}
	return itemName == ingredient
}
