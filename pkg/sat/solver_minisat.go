package sat

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type minisatSolver struct {
	name string
}

// NewMinisatSolver returns a solver running the minisat executable configured under "minisatPath"
func NewMinisatSolver() SATSolver {
	return &minisatSolver{name: "minisat"}
}

// NewGlucoseSimpSolver returns a solver running glucose's simp executable configured under "glucoseSimpPath". Glucose
// derives from minisat and shares its command line and result file
func NewGlucoseSimpSolver() SATSolver {
	return &minisatSolver{name: "glucoseSimp"}
}

func (solver *minisatSolver) Solve(sat SAT) (SATSolution, error) {
	executablePath, err := getExecutablePath(solver.name + "Path")
	if err != nil {
		return nil, err
	}

	// The formula is read from a file and the model is written to another one
	inputFile, err := writeTempDIMACS(sat)
	if err != nil {
		return nil, err
	}
	defer os.Remove(inputFile)

	outputTempFile, err := os.CreateTemp("", solver.name+"_output-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(outputTempFile.Name())
	defer outputTempFile.Close()

	cmd := exec.Command(executablePath, "-verb=0", inputFile, outputTempFile.Name())

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && cmd.ProcessState == nil {
		return nil, fmt.Errorf("cannot run %v: %w", solver.name, err)
	} else if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during %v execution: %v : %v", solver.name, err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	output, err := io.ReadAll(outputTempFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}
	return parseMinisatOutput(string(output))
}

// parseMinisatOutput reads minisat's result file: a "SAT" header followed by the model's literals
func parseMinisatOutput(output string) (SATSolution, error) {
	lines := strings.Split(output, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "SAT" {
		return nil, fmt.Errorf("unexpected minisat output: %q", output)
	}

	var parseErr error
	solution := lo.FilterMap(strings.Fields(lines[1]), func(valueStr string, _ int) (int64, bool) {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			parseErr = fmt.Errorf("invalid literal in minisat output: %w", err)
		}
		return value, err == nil && value != 0
	})
	return solution, parseErr
}
