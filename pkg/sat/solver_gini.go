package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const (
	giniSatisfiable   = 1
	giniUnsatisfiable = -1
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver, it needs no external executable
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(sat SAT) (SATSolution, error) {
	g := gini.New()
	for _, clause := range sat.Clauses {
		for _, literal := range clause {
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull) // Terminate clause
	}

	switch g.Solve() {
	case giniUnsatisfiable:
		return nil, nil
	case giniSatisfiable:
	default:
		return nil, fmt.Errorf("gini could not decide the instance")
	}

	maxVar := int64(g.MaxVar())
	solution := make(SATSolution, 0, sat.Variables)
	for variable := int64(1); variable <= int64(sat.Variables); variable++ {
		// Variables absent from every clause are unconstrained, report them as false
		if variable <= maxVar && g.Value(z.Dimacs2Lit(int(variable))) {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return solution, nil
}
