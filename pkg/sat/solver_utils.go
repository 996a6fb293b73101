package sat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points at the JSON file mapping external solver names to their executables, e.g. {"kissatPath": "/usr/bin/kissat"}
var ConfigPath = "../../config.json"

// parseSolution extracts the literals of the "v" lines of a solver's standard output, dropping the terminating 0
func parseSolution(solverOutput string) SATSolution {
	values := lo.FilterMap(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 1 && line[0] == 'v'
			}),
			func(values []string, line string, _ int) []string {
				return append(values, strings.Fields(line[1:])...)
			},
			[]string{},
		),
		func(valueStr string, _ int) (int64, bool) {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value, value != 0
		},
	)
	return values
}

func getExecutablePath(solver string) (string, error) {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return "", fmt.Errorf("cannot read solver config: %w", err)
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return "", fmt.Errorf("cannot parse solver config: %w", err)
	}

	var config map[string]string
	if err := mapstructure.Decode(inputJson, &config); err != nil {
		return "", fmt.Errorf("cannot decode solver config: %w", err)
	}

	path, ok := config[solver]
	if !ok {
		return "", fmt.Errorf("solver \"%v\" is not present in config", solver)
	}
	return path, nil
}

// runCompetitionSolver feeds sat in DIMACS format to the standard input of the executable configured under
// "<name>Path". Such solvers follow the SAT competition conventions: exit-code 10 stands for satisfiable, exit-code 20
// stands for unsatisfiable and the model is printed on "v" lines
func runCompetitionSolver(sat SAT, name string, args ...string) (SATSolution, error) {
	executablePath, err := getExecutablePath(name + "Path")
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(executablePath, args...)
	cmd.Stdin = strings.NewReader(sat.ToDIMACS())
	return runCompetitionCommand(cmd, name)
}

// runCompetitionSolverOnFile is runCompetitionSolver for executables that only read the formula from a file given as
// their last argument
func runCompetitionSolverOnFile(sat SAT, name string, args ...string) (SATSolution, error) {
	executablePath, err := getExecutablePath(name + "Path")
	if err != nil {
		return nil, err
	}

	inputFile, err := writeTempDIMACS(sat)
	if err != nil {
		return nil, err
	}
	defer os.Remove(inputFile)

	cmd := exec.Command(executablePath, append(args, inputFile)...)
	return runCompetitionCommand(cmd, name)
}

func runCompetitionCommand(cmd *exec.Cmd, name string) (SATSolution, error) {
	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && cmd.ProcessState == nil {
		return nil, fmt.Errorf("cannot run %v: %w", name, err)
	} else if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("an error occurred during %v execution: %v : %v", name, err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}

// writeTempDIMACS stores sat in a temporary file and returns its name; the caller removes it
func writeTempDIMACS(sat SAT) (string, error) {
	file, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	if _, err := file.WriteString(sat.ToDIMACS()); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to write DIMACS to temporary file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	return file.Name(), nil
}
