package sat

type ortoolsatSolver struct{}

// NewOrtoolsatSolver returns a solver running the OR-tools CP-SAT wrapper configured under "ortoolsatPath". The wrapper
// takes a DIMACS file and answers like a competition solver
func NewOrtoolsatSolver() SATSolver {
	return &ortoolsatSolver{}
}

func (solver *ortoolsatSolver) Solve(sat SAT) (SATSolution, error) {
	return runCompetitionSolverOnFile(sat, "ortoolsat")
}
