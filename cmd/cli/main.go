package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/limaJavier/packing/pkg/geometry"
	"github.com/limaJavier/packing/pkg/model"
	"github.com/limaJavier/packing/pkg/puzzles"
	"github.com/limaJavier/packing/pkg/sat"
	"github.com/samber/lo"
)

const (
	exitSolved      = 10
	exitUnsolvable  = 20
	configFileName  = "config.json"
	defaultStrategy = "sequential"
)

var (
	validStrategies = []string{"sequential", "parallel"}
	validSolvers    = []string{"gini", "kissat", "cadical", "cryptominisat", "minisat", "glucosesimp", "slime", "ortoolsat"}
	solvers         = map[string]func() sat.SATSolver{
		"gini":          sat.NewGiniSolver,
		"kissat":        sat.NewKissatSolver,
		"cadical":       sat.NewCadicalSolver,
		"cryptominisat": sat.NewCryptominisatSolver,
		"minisat":       sat.NewMinisatSolver,
		"glucosesimp":   sat.NewGlucoseSimpSolver,
		"slime":         sat.NewSlimeSolver,
		"ortoolsat":     sat.NewOrtoolsatSolver,
	}
)

type placementOutput struct {
	Template    string   `json:"template"`
	Orientation int      `json:"orientation"`
	Translation [3]int   `json:"translation"`
	Cells       [][3]int `json:"cells"`
}

type solutionOutput struct {
	Placements []placementOutput `json:"placements"`
	Render     string            `json:"render,omitempty"`
}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to a JSON or YAML puzzle file")
	presetPtr := flag.String("preset", "", fmt.Sprintf("Name of a built-in puzzle, used when no file is given. Allowed values are: %v", strings.Join(puzzles.Names(), ", ")))
	strategyPtr := flag.String("strategy", defaultStrategy, `Search strategy. Allowed values are:
- "sequential" (single backtracking search) and
- "parallel" (top-level branches are explored concurrently, solutions are still reported in sequential order), where "sequential" is the default`)
	workersPtr := flag.Int("workers", 0, "Number of concurrent branches used by the parallel strategy, where 0 stands for the number of CPUs")
	limitPtr := flag.Int("limit", 0, "Stop after this many solutions, where 0 reports every solution")
	renderPtr := flag.Bool("render", false, "Draw every solution layer by layer")
	checkPtr := flag.Bool("check", false, "Decide feasibility with a SAT-Solver before enumerating")
	solverPtr := flag.String("solver", "gini", "SAT-Solver used by -check. Allowed values are: \"gini\", \"kissat\", \"cadical\", \"cryptominisat\", \"minisat\", \"glucosesimp\", \"slime\", \"ortoolsat\", where \"gini\" is the default")
	outFilePathPtr := flag.String("out", "", "Path to the file where the JSON output will be written; if empty, it'll be written into the Standard Output")
	verbosePtr := flag.Bool("verbose", false, "Log search progress to the Standard Error")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	preset := *presetPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	} else if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" && preset == "" {
		log.Fatal("either an input file or a preset must be specified")
	} else if *limitPtr < 0 {
		log.Fatalf("limit must not be negative: %v", *limitPtr)
	}

	logger := logr.Discard()
	if *verbosePtr {
		stdr.SetVerbosity(1)
		logger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	}

	// Extract input
	puzzle, err := loadPuzzle(filePath, preset)
	if err != nil {
		log.Fatalf("cannot load puzzle: %v", err)
	}
	logger.Info("puzzle loaded", "name", puzzle.Name, "cells", puzzle.Target.Size(), "bag", puzzle.Bag.String())

	// Decide feasibility first, unsolvable puzzles need no enumeration
	if *checkPtr {
		if solverStr != "gini" {
			setConfigPath()
		}
		checker := model.NewSatChecker(solvers[solverStr](), model.WithLogger(logger))
		feasible, _, err := checker.Feasible(puzzle.Target, puzzle.Bag)
		if err != nil {
			log.Fatalf("an error occurred during the feasibility check: %v", err)
		} else if !feasible {
			fmt.Println("Solutions: 0")
			os.Exit(exitUnsolvable)
		}
		logger.Info("puzzle is feasible", "solver", solverStr)
	}

	// Enumerate packings
	var packer model.Packer
	if strategy == "parallel" {
		packer = model.NewParallelPacker(*workersPtr, model.WithLogger(logger))
	} else {
		packer = model.NewBacktrackingPacker(model.WithLogger(logger))
	}

	solutions, err := model.Collect(packer, puzzle.Target, puzzle.Bag, nil, *limitPtr)
	if err != nil {
		log.Fatalf("an error occurred during the search: %v", err)
	}

	// Verify packing correctness
	for i, solution := range solutions {
		if !model.Verify(puzzle.Target, puzzle.Bag, solution) {
			log.Fatalf("solution %d is not a valid packing: %v", i, solution)
		}
	}

	// Marshal output into json
	output := buildOutput(solutions, *renderPtr)
	outputJson, err := json.Marshal(output)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		if *renderPtr {
			for i, solution := range solutions {
				fmt.Printf("Solution %d\n%v%v\n", i+1, solution.Legend(), solution.Render())
			}
		} else {
			fmt.Println(string(outputJson))
		}
	} else {
		err := os.WriteFile(outFile, outputJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	fmt.Printf("Solutions: %v\n", len(solutions))
	if len(solutions) == 0 {
		os.Exit(exitUnsolvable)
	}
	os.Exit(exitSolved)
}

func loadPuzzle(filePath, preset string) (model.Puzzle, error) {
	if filePath != "" {
		return model.PuzzleFromFile(filePath)
	}
	return puzzles.ByName(preset)
}

func buildOutput(solutions []*model.Solution, render bool) []solutionOutput {
	return lo.Map(solutions, func(solution *model.Solution, _ int) solutionOutput {
		output := solutionOutput{
			Placements: lo.Map(solution.Placements(), func(placement model.Placement, _ int) placementOutput {
				return placementOutput{
					Template:    placement.Template.Name(),
					Orientation: placement.Orientation,
					Translation: placement.Translation,
					Cells:       lo.Map(placement.Footprint(), func(cell geometry.Coordinate, _ int) [3]int { return cell }),
				}
			}),
		}
		if render {
			output.Render = solution.Render()
		}
		return output
	})
}

// setConfigPath points the external solvers at the config.json lying next to the executable
func setConfigPath() {
	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	execPath = path.Dir(execPath)

	// Verify config.json exists
	files, err := os.ReadDir(execPath)
	if err != nil {
		log.Fatalf("cannot read executable's directory: %v", err)
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	if !slices.Contains(fileNames, configFileName) {
		log.Fatalf("%v file was not found: %v", configFileName, fileNames)
	}

	sat.ConfigPath = path.Join(execPath, configFileName)
}
