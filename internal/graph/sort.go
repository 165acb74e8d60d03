package graph

// Resolve computes the execution order: a topological sort of the dependency
// relation with declaration order as the tie-break. When several tasks are
// simultaneously eligible, the earliest declared one runs first, so for the
// strictly sequential workflows this system ships the resolved order always
// equals declaration order. The sort exists to prove that declared order is
// dependency-consistent, not to reorder anything.
//
// The order is a pure function of the declared graph. Resolve assumes
// Validate has passed; an unresolvable graph (a cycle) still surfaces as
// ErrCycleDetected rather than looping.
func (g *Graph) Resolve() ([]string, error) {
	placed := make(map[string]bool, len(g.tasks))
	order := make([]string, 0, len(g.tasks))

	for len(order) < len(g.tasks) {
		progressed := false
		// Scan in declaration order and place the first eligible task,
		// then restart the scan. Quadratic, but workflows here hold a
		// handful of tasks and the earliest-declared guarantee stays
		// trivially correct.
		for _, t := range g.tasks {
			if placed[t.Name] {
				continue
			}
			if !g.depsPlaced(t, placed) {
				continue
			}
			placed[t.Name] = true
			order = append(order, t.Name)
			progressed = true
			break
		}
		if !progressed {
			return nil, NewGraphError("Resolve", "", ErrCycleDetected)
		}
	}

	return order, nil
}

func (g *Graph) depsPlaced(t Task, placed map[string]bool) bool {
	for _, dep := range t.DependsOn {
		if !placed[dep] {
			return false
		}
	}
	return true
}
