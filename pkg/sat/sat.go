package sat

import (
	"fmt"
	"strings"
)

// SATSolution lists one literal per variable: positive when the variable is true, negative when it is false
type SATSolution []int64

// Value reports whether variable is true in the solution
func (solution SATSolution) Value(variable int64) bool {
	for _, literal := range solution {
		if literal == variable {
			return true
		}
	}
	return false
}

// SAT is a CNF formula over the variables 1..Variables
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// NewVariable allocates a fresh variable and returns it
func (s *SAT) NewVariable() int64 {
	s.Variables++
	return int64(s.Variables)
}

func (s *SAT) AddClause(literals ...int64) {
	s.Clauses = append(s.Clauses, literals)
}

// AtMostOne constrains at most one of literals to be true using the sequential (ladder) encoding, which needs
// len(literals)-1 auxiliary variables and a linear number of clauses
func (s *SAT) AtMostOne(literals []int64) {
	if len(literals) < 2 {
		return
	}

	previous := s.NewVariable() // previous is true when some literal up to the current one is true
	s.AddClause(-literals[0], previous)
	for _, literal := range literals[1 : len(literals)-1] {
		current := s.NewVariable()
		s.AddClause(-literal, current)
		s.AddClause(-previous, current)
		s.AddClause(-literal, -previous)
		previous = current
	}
	s.AddClause(-literals[len(literals)-1], -previous)
}

// ExactlyOne constrains exactly one of literals to be true
func (s *SAT) ExactlyOne(literals []int64) {
	s.AddClause(literals...)
	s.AtMostOne(literals)
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

type SATSolver interface {
	Solve(sat SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}
