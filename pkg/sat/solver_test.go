package sat

import (
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDirectory              = "../../test/cnfs/"
	unsatisfiableTestDirectory = "../../test/cnfs-unsat/"
)

func TestGini(t *testing.T) {
	solver := NewGiniSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
	t.Run("Unsatisfiable instances", func(t *testing.T) {
		unsatisfiableExecution(t, solver)
	})
}

func TestKissat(t *testing.T) {
	if _, err := getExecutablePath("kissatPath"); err != nil {
		t.Skipf("kissat is not configured: %v", err)
	}
	solver := NewKissatSolver()
	t.Run("Satisfiable instances", func(t *testing.T) {
		satisfiableExecution(t, solver)
	})
	t.Run("Unsatisfiable instances", func(t *testing.T) {
		unsatisfiableExecution(t, solver)
	})
}

func TestExternalSolvers(t *testing.T) {
	solvers := map[string]func() SATSolver{
		"cadical":       NewCadicalSolver,
		"cryptominisat": NewCryptominisatSolver,
		"minisat":       NewMinisatSolver,
		"glucoseSimp":   NewGlucoseSimpSolver,
		"slime":         NewSlimeSolver,
		"ortoolsat":     NewOrtoolsatSolver,
	}

	for name, newSolver := range solvers {
		t.Run(name, func(t *testing.T) {
			if _, err := getExecutablePath(name + "Path"); err != nil {
				t.Skipf("%v is not configured: %v", name, err)
			}
			solver := newSolver()
			t.Run("Satisfiable instances", func(t *testing.T) {
				satisfiableExecution(t, solver)
			})
			t.Run("Unsatisfiable instances", func(t *testing.T) {
				unsatisfiableExecution(t, solver)
			})
		})
	}
}

func TestAtMostOneEncoding(t *testing.T) {
	for n := 1; n <= 6; n++ {
		// Arrange
		var instance SAT
		literals := make([]int64, n)
		for i := range literals {
			literals[i] = instance.NewVariable()
		}
		instance.ExactlyOne(literals)

		for chosen := range literals {
			// Act
			assumed := instance
			assumed.Clauses = append([][]int64{{literals[chosen]}}, instance.Clauses...)
			solution, err := NewGiniSolver().Solve(assumed)

			// Assert
			require.NoError(t, err)
			require.NotNil(t, solution)
			for i, literal := range literals {
				assert.Equal(t, i == chosen, solution.Value(literal))
			}
		}

		if n >= 2 {
			// Two true literals must be rejected
			forced := instance
			forced.Clauses = append([][]int64{{literals[0]}, {literals[n-1]}}, instance.Clauses...)
			solution, err := NewGiniSolver().Solve(forced)
			assert.NoError(t, err)
			assert.Nil(t, solution)
		}
	}
}

func TestGiniOnRandomInstances(t *testing.T) {
	solver := NewGiniSolver()
	for range 50 {
		// Arrange
		instance := generateSATInstance(8, 20)

		// Act
		solution, err := solver.Solve(instance)

		// Assert
		require.NoError(t, err)
		if solution != nil {
			assert.True(t, assertSATSolution(instance, solution), instance.ToDIMACS())
		}
	}
}

func TestToDIMACSRoundTrip(t *testing.T) {
	instance := SAT{Variables: 3, Clauses: [][]int64{{1, -2}, {2, 3}, {-1}}}

	dimacs := instance.ToDIMACS()
	parsed, err := ParseDIMACS(strings.NewReader(dimacs))

	assert.Equal(t, "p cnf 3 3\n1 -2 0\n2 3 0\n-1 0\n", dimacs)
	assert.NoError(t, err)
	assert.Equal(t, instance, parsed)
}

func TestParseSolution(t *testing.T) {
	output := "s SATISFIABLE\nv 1 -2 3\nv -4 5 0\n"

	assert.Equal(t, SATSolution{1, -2, 3, -4, 5}, parseSolution(output))
}

func TestParseMinisatOutput(t *testing.T) {
	solution, err := parseMinisatOutput("SAT\n-1 2 -3 0\n")
	assert.NoError(t, err)
	assert.Equal(t, SATSolution{-1, 2, -3}, solution)

	_, err = parseMinisatOutput("UNSAT\n")
	assert.Error(t, err)
}

func satisfiableExecution(t *testing.T, solver SATSolver) {
	for _, sat := range readInstances(t, testDirectory) {
		// Act
		solution, err := solver.Solve(sat)
		require.NoError(t, err)

		// Assert
		assert.True(t, assertSATSolution(sat, solution))
	}
}

func unsatisfiableExecution(t *testing.T, solver SATSolver) {
	for _, sat := range readInstances(t, unsatisfiableTestDirectory) {
		// Act
		solution, err := solver.Solve(sat)

		// Assert
		assert.NoError(t, err)
		assert.Nil(t, solution)
	}
}

func readInstances(t *testing.T, directory string) []SAT {
	testFiles, err := os.ReadDir(directory)
	require.NoError(t, err)

	instances := make([]SAT, 0, len(testFiles))
	for _, file := range testFiles {
		// Arrange
		reader, err := os.Open(directory + file.Name())
		require.NoError(t, err)
		sat, err := ParseDIMACS(reader)
		reader.Close()
		require.NoError(t, err)
		instances = append(instances, sat)
	}
	return instances
}

// generateSATInstance builds a random formula, every clause holding at least one literal
func generateSATInstance(variables uint64, clauses int) SAT {
	instance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	sign := func() int64 {
		if rand.Float32() < 0.5 {
			return -1
		}
		return 1
	}

	for i := range clauses {
		instance.Clauses[i] = make([]int64, 0, variables)
		for j := range variables {
			if rand.Float32() < 0.3 {
				instance.Clauses[i] = append(instance.Clauses[i], sign()*(1+int64(j)))
			}
		}

		if len(instance.Clauses[i]) == 0 {
			instance.Clauses[i] = append(instance.Clauses[i], sign()*(1+rand.Int64N(int64(variables))))
		}
	}

	return instance
}

func assertSATSolution(satInstance SAT, satSolution SATSolution) bool {
	if satSolution == nil {
		return false
	}

	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range satSolution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range satInstance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
