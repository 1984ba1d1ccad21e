package search

import (
	"os"
	"testing"

	"github.com/trainline-solver/railcore/pkg/puzzle"
)

// loadScenario reads a fixture from testdata, parses it, and validates it
// through Build so a malformed fixture fails loudly at the call site rather
// than inside Solve.
func loadScenario(t *testing.T, name string) *puzzle.Puzzle {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	p, err := puzzle.FromYAML(data)
	if err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}
	if _, err := p.Build(); err != nil {
		t.Fatalf("building %s: %v", name, err)
	}
	return p
}

func TestSolveSingleCartLRoute(t *testing.T) {
	p := loadScenario(t, "single_cart_l_route.yaml")
	res, err := Solve(p, ModeDFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Solved {
		t.Fatal("expected solvable")
	}
	if res.TracksRemaining != 0 {
		t.Fatalf("TracksRemaining = %d, want 0", res.TracksRemaining)
	}
}

func TestSolveStraightCorridorLeavesSpareBudget(t *testing.T) {
	p := loadScenario(t, "straight_corridor.yaml")
	res, err := Solve(p, ModeDFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Solved {
		t.Fatal("expected solvable")
	}
	if res.TracksRemaining != 1 {
		t.Fatalf("TracksRemaining = %d, want 1", res.TracksRemaining)
	}
}

func TestSolveBudgetTooSmallForTwoCarts(t *testing.T) {
	p := loadScenario(t, "budget_too_small_for_two_carts.yaml")
	res, err := Solve(p, ModeDFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Solved {
		t.Fatalf("expected unsolvable, got TracksRemaining=%d", res.TracksRemaining)
	}
}

func TestSolveDecoyForcedBorderCrash(t *testing.T) {
	p := loadScenario(t, "decoy_forced_border_crash.yaml")
	res, err := Solve(p, ModeDFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Solved {
		t.Fatal("expected solvable")
	}
	if res.TracksRemaining != 0 {
		t.Fatalf("TracksRemaining = %d, want 0", res.TracksRemaining)
	}
}

func TestSolveSwitchGateTiming(t *testing.T) {
	p := loadScenario(t, "switch_gate_timing.yaml")
	res, err := Solve(p, ModeDFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Solved {
		t.Fatal("expected the switch to open the gate in time")
	}
	if res.TracksRemaining != 0 {
		t.Fatalf("TracksRemaining = %d, want 0", res.TracksRemaining)
	}
}

func TestSolveTunnelPreservesFacing(t *testing.T) {
	p := loadScenario(t, "tunnel_preserves_facing.yaml")
	res, err := Solve(p, ModeDFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Solved {
		t.Fatal("expected solvable")
	}
	if res.TracksRemaining != 0 {
		t.Fatalf("TracksRemaining = %d, want 0", res.TracksRemaining)
	}
}

func TestSolveMultiStationGroupRequiresAllDeactivated(t *testing.T) {
	p := loadScenario(t, "multi_station_group.yaml")
	res, err := Solve(p, ModeDFS)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Solved {
		t.Fatalf("expected unsolvable (an unreachable station in the cart's group never deactivates), got TracksRemaining=%d", res.TracksRemaining)
	}
}

// Both modes must agree on every fixture: BFS's early return on the first
// solved bucket should land on the same tracks_remaining DFS finds by
// exhaustive comparison.
func TestSolveModesAgreeAcrossScenarios(t *testing.T) {
	names := []string{
		"single_cart_l_route.yaml",
		"straight_corridor.yaml",
		"decoy_forced_border_crash.yaml",
		"switch_gate_timing.yaml",
		"tunnel_preserves_facing.yaml",
	}
	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			p := loadScenario(t, name)
			dfs, err := Solve(p, ModeDFS)
			if err != nil {
				t.Fatalf("Solve(DFS): %v", err)
			}
			bfs, err := Solve(p, ModeBFS)
			if err != nil {
				t.Fatalf("Solve(BFS): %v", err)
			}
			if dfs.Solved != bfs.Solved || dfs.TracksRemaining != bfs.TracksRemaining {
				t.Fatalf("DFS=%+v BFS=%+v disagree", dfs, bfs)
			}
		})
	}
}
