package coinchange

// Solver is the contract the benchmark harness and the CLI drive. Both
// implementations are stateless and safe for concurrent use.
type Solver interface {
	// Name identifies the solver in reports and charts.
	Name() string
	Solve(denominations []int, amount int) (Result, error)
}

// GreedySolver adapts Greedy to the Solver interface.
type GreedySolver struct{}

func (GreedySolver) Name() string { return "greedy" }

func (GreedySolver) Solve(denominations []int, amount int) (Result, error) {
	return Greedy(denominations, amount)
}

// ExactSolver adapts Exact to the Solver interface.
type ExactSolver struct{}

func (ExactSolver) Name() string { return "exact" }

func (ExactSolver) Solve(denominations []int, amount int) (Result, error) {
	return Exact(denominations, amount)
}

// Solvers returns every built-in solver, greedy first.
func Solvers() []Solver {
	return []Solver{GreedySolver{}, ExactSolver{}}
}

// SolverByName looks up a built-in solver.
func SolverByName(name string) (Solver, bool) {
	for _, s := range Solvers() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
