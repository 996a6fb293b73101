package sat

type slimeSolver struct{}

// NewSlimeSolver returns a solver running the slime executable configured under "slimePath"
func NewSlimeSolver() SATSolver {
	return &slimeSolver{}
}

func (solver *slimeSolver) Solve(sat SAT) (SATSolution, error) {
	return runCompetitionSolverOnFile(sat, "slime")
}
