package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/packing/pkg/geometry"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawPiece struct {
	Name        string
	Cells       [][]int
	Count       *int // Absent stands for a single unit
	Reflections bool
}

type RawPuzzleInput struct {
	Name   string
	Box    []int   // Dimensions of a cuboid target, used when Target is empty
	Target [][]int // Explicit target cells
	Pieces []RawPiece
}

// Puzzle is a target together with the bag of pieces meant to pack it
type Puzzle struct {
	Name   string
	Target *Target
	Bag    *Bag
}

// PuzzleFromFile reads a puzzle in JSON or YAML format, chosen by the file's extension
func PuzzleFromFile(file string) (Puzzle, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Puzzle{}, fmt.Errorf("cannot read puzzle file: %w", err)
	}

	var puzzle Puzzle
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		puzzle, err = PuzzleFromYaml(bytes)
	default:
		puzzle, err = PuzzleFromJson(bytes)
	}
	if err != nil {
		return Puzzle{}, fmt.Errorf("invalid puzzle file %v: %w", file, err)
	}
	if puzzle.Name == "" {
		puzzle.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	return puzzle, nil
}

func PuzzleFromJson(bytes []byte) (Puzzle, error) {
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Puzzle{}, err
	}
	return decodeRawInput(inputJson)
}

func PuzzleFromYaml(bytes []byte) (Puzzle, error) {
	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return Puzzle{}, err
	}
	return decodeRawInput(inputYaml)
}

func decodeRawInput(input map[string]any) (Puzzle, error) {
	var rawInput RawPuzzleInput
	if err := mapstructure.Decode(input, &rawInput); err != nil {
		return Puzzle{}, err
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawPuzzleInput) (Puzzle, error) {
	//** Manage target
	var target *Target
	var err error
	if len(rawInput.Target) > 0 {
		cells, err := toCoordinates(rawInput.Target)
		if err != nil {
			return Puzzle{}, fmt.Errorf("invalid target: %w", err)
		}
		target, err = NewTarget(cells)
		if err != nil {
			return Puzzle{}, err
		}
	} else if len(rawInput.Box) == 3 {
		if lo.SomeBy(rawInput.Box, func(side int) bool { return side <= 0 }) {
			return Puzzle{}, fmt.Errorf("box dimensions must be positive: %v", rawInput.Box)
		}
		target, err = NewBox(rawInput.Box[0], rawInput.Box[1], rawInput.Box[2])
		if err != nil {
			return Puzzle{}, err
		}
	} else {
		return Puzzle{}, fmt.Errorf("either a target or a three dimensional box must be specified")
	}

	//** Manage pieces
	if len(rawInput.Pieces) == 0 {
		return Puzzle{}, fmt.Errorf("at least one piece must be specified")
	}
	bag := NewBag()
	for i, rawPiece := range rawInput.Pieces {
		name := rawPiece.Name
		if name == "" {
			name = fmt.Sprintf("piece-%d", i)
		}

		cells, err := toCoordinates(rawPiece.Cells)
		if err != nil {
			return Puzzle{}, fmt.Errorf("invalid piece \"%v\": %w", name, err)
		}

		options := []TemplateOption{WithName(name)}
		if rawPiece.Reflections {
			options = append(options, WithReflections())
		}
		template, err := NewTemplate(cells, options...)
		if err != nil {
			return Puzzle{}, fmt.Errorf("invalid piece \"%v\": %w", name, err)
		}

		count := 1
		if rawPiece.Count != nil {
			count = *rawPiece.Count
		}
		if count <= 0 {
			return Puzzle{}, fmt.Errorf("piece \"%v\" has a non-positive count: %d", name, count)
		}
		if err := bag.Put(template, count); err != nil {
			return Puzzle{}, err
		}
	}

	return Puzzle{Name: rawInput.Name, Target: target, Bag: bag}, nil
}

func toCoordinates(cells [][]int) ([]geometry.Coordinate, error) {
	coordinates := make([]geometry.Coordinate, 0, len(cells))
	for _, cell := range cells {
		switch len(cell) {
		case 2: // Planar puzzles may omit z
			coordinates = append(coordinates, geometry.NewCoordinate(cell[0], cell[1], 0))
		case 3:
			coordinates = append(coordinates, geometry.NewCoordinate(cell[0], cell[1], cell[2]))
		default:
			return nil, fmt.Errorf("cell %v must have two or three components", cell)
		}
	}
	return coordinates, nil
}
