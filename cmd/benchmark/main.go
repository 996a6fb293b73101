package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/limaJavier/packing/pkg/model"
	"github.com/limaJavier/packing/pkg/puzzles"

	"github.com/samber/lo"
)

const (
	executablePath         = "../../bin/packing"
	puzzlesDirectory       = "../../test/puzzles/"
	solutionLimit          = 1000
	MB             float32 = 1024 * 1024
)

type StrategyType int

const (
	sequential StrategyType = iota
	parallel
	checked
)

type ResultType int

const (
	solved ResultType = iota
	unsolvable
)

var (
	strategyTypes = map[StrategyType]string{
		sequential: "sequential",
		parallel:   "parallel",
		checked:    "checked",
	}
	resultTypes = map[ResultType]string{
		solved:     "solved",
		unsolvable: "unsolvable",
	}
)

// TestMetadata describes a puzzle, either a file under the puzzles directory or a preset
type TestMetadata struct {
	Name   string
	Preset bool
	Cells  int
	Pieces int
	Kinds  int
}

type BenchmarkResult struct {
	Strategy      StrategyType
	Test          TestMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

func main() {
	tests := getTests()
	strategies := getStrategies()
	results := make([]BenchmarkResult, 0, len(tests)*len(strategies))

	for _, test := range tests {
		for _, strategy := range strategies {
			fmt.Printf("Benchmarking puzzle \"%v\" with strategy \"%v\"\n", test.Name, strategyTypes[strategy])

			duration, maxMemory, cpuPercentage, result := measure(strategy, test)

			results = append(results, BenchmarkResult{
				Strategy:      strategy,
				Test:          test,
				Duration:      duration,
				Memory:        maxMemory,
				CpuPercentage: cpuPercentage,
				Result:        result,
			})
		}
	}

	toCsv(results)
}

func getTests() []TestMetadata {
	tests := make([]TestMetadata, 0)

	files, err := os.ReadDir(puzzlesDirectory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}
	for _, file := range files {
		filename := puzzlesDirectory + file.Name()
		puzzle, err := model.PuzzleFromFile(filename)
		if err != nil {
			// Fixtures exercising invalid input are not benchmarks
			continue
		}
		tests = append(tests, describe(filename, false, puzzle))
	}

	for _, name := range puzzles.Names() {
		puzzle := lo.Must(puzzles.ByName(name))
		tests = append(tests, describe(name, true, puzzle))
	}

	return tests
}

func describe(name string, preset bool, puzzle model.Puzzle) TestMetadata {
	return TestMetadata{
		Name:   name,
		Preset: preset,
		Cells:  puzzle.Target.Size(),
		Pieces: puzzle.Bag.Size(),
		Kinds:  len(puzzle.Bag.Templates()),
	}
}

func getStrategies() []StrategyType {
	return []StrategyType{sequential, parallel, checked}
}

func arguments(strategy StrategyType, test TestMetadata) []string {
	args := []string{"-v", executablePath, "-limit", fmt.Sprint(solutionLimit), "-out", os.DevNull}
	if test.Preset {
		args = append(args, "-preset", test.Name)
	} else {
		args = append(args, "-file", test.Name)
	}

	switch strategy {
	case parallel:
		args = append(args, "-strategy", "parallel")
	case checked:
		args = append(args, "-strategy", "sequential", "-check", "-solver", "gini")
	default:
		args = append(args, "-strategy", "sequential")
	}
	return args
}

func measure(strategy StrategyType, test TestMetadata) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	cmd := exec.Command("/usr/bin/time", arguments(strategy, test)...)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	if cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		log.Fatalf("an error occurred during the execution \"packing\" at puzzle \"%v\" using strategy \"%v\": %v\n", test.Name, strategyTypes[strategy], stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		result = unsolvable
	} else {
		result = solved
	}
	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Strategy", "Puzzle", "Preset", "Cells", "Pieces", "Kinds", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		strategyTypes[result.Strategy],
		result.Test.Name,
		fmt.Sprintf("%v", result.Test.Preset),
		fmt.Sprintf("%d", result.Test.Cells),
		fmt.Sprintf("%d", result.Test.Pieces),
		fmt.Sprintf("%d", result.Test.Kinds),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%.1f", result.Memory),
		fmt.Sprintf("%d", result.CpuPercentage),
		resultTypes[result.Result],
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

// parseMemoryLine converts the resident set size reported in KB into MB
func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) * 1024 / MB
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
