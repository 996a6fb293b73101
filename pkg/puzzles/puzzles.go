// Package puzzles provides ready-made packing puzzles
package puzzles

import (
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/packing/pkg/geometry"
	"github.com/limaJavier/packing/pkg/model"
	"github.com/samber/lo"
)

var presets = map[string]func() model.Puzzle{
	"slothouber-graatsma": SlothouberGraatsma,
	"soma":                Soma,
	"dominoes-2x2":        func() model.Puzzle { return Dominoes(2, 2) },
	"dominoes-4x4":        func() model.Puzzle { return Dominoes(4, 4) },
}

// Names returns the names accepted by ByName in alphabetical order
func Names() []string {
	names := lo.Keys(presets)
	slices.Sort(names)
	return names
}

// ByName builds a fresh copy of the named preset
func ByName(name string) (model.Puzzle, error) {
	preset, ok := presets[strings.ToLower(name)]
	if !ok {
		return model.Puzzle{}, fmt.Errorf("unknown puzzle \"%v\", known puzzles are %v", name, Names())
	}
	return preset(), nil
}

// SlothouberGraatsma packs a 3x3x3 cube with six 2x2x1 blocks and three unit cubes
func SlothouberGraatsma() model.Puzzle {
	block := mustTemplate("block", [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}})
	cube := mustTemplate("cube", [][3]int{{0, 0, 0}})

	bag := model.NewBag()
	lo.Must0(bag.Put(block, 6))
	lo.Must0(bag.Put(cube, 3))
	return model.Puzzle{Name: "slothouber-graatsma", Target: lo.Must(model.NewBox(3, 3, 3)), Bag: bag}
}

// Soma packs a 3x3x3 cube with Piet Hein's seven soma pieces
func Soma() model.Puzzle {
	bag := model.NewBag(
		mustTemplate("V", [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}),
		mustTemplate("L", [][3]int{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {0, 1, 0}}),
		mustTemplate("T", [][3]int{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}}),
		mustTemplate("Z", [][3]int{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {2, 1, 0}}),
		mustTemplate("A", [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 0, 1}}),
		mustTemplate("B", [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 1, 1}}),
		mustTemplate("P", [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}),
	)
	return model.Puzzle{Name: "soma", Target: lo.Must(model.NewBox(3, 3, 3)), Bag: bag}
}

// Dominoes tiles a flat dx*dy rectangle with 1x2 dominoes; dx*dy must be even for a tiling to exist and it panics
// below two cells
func Dominoes(dx, dy int) model.Puzzle {
	domino := mustTemplate("domino", [][3]int{{0, 0, 0}, {1, 0, 0}})

	bag := model.NewBag()
	lo.Must0(bag.Put(domino, dx*dy/2))
	return model.Puzzle{Name: fmt.Sprintf("dominoes-%dx%d", dx, dy), Target: lo.Must(model.NewBox(dx, dy, 1)), Bag: bag}
}

func mustTemplate(name string, cells [][3]int) *model.Template {
	coordinates := lo.Map(cells, func(cell [3]int, _ int) geometry.Coordinate { return geometry.Coordinate(cell) })
	return lo.Must(model.NewTemplate(coordinates, model.WithName(name)))
}
