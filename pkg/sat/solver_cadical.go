package sat

type cadicalSolver struct{}

// NewCadicalSolver returns a solver running the cadical executable configured under "cadicalPath"
func NewCadicalSolver() SATSolver {
	return &cadicalSolver{}
}

func (solver *cadicalSolver) Solve(sat SAT) (SATSolution, error) {
	return runCompetitionSolver(sat, "cadical", "-q")
}
