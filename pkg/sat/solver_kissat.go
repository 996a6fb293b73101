package sat

type kissatSolver struct{}

// NewKissatSolver returns a solver running the kissat executable configured under "kissatPath"
func NewKissatSolver() SATSolver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(sat SAT) (SATSolution, error) {
	return runCompetitionSolver(sat, "kissat", "-q", "--relaxed")
}
