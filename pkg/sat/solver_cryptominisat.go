package sat

type cryptominisatSolver struct{}

func NewCryptominisatSolver() SATSolver {
	return &cryptominisatSolver{}
}

func (solver *cryptominisatSolver) Solve(sat SAT) (SATSolution, error) {
	return runCompetitionSolver(sat, "cryptominisat", "--verb", "0")
}
