package catalog

import (
	"context"
	"log"
)

// resolveClosure computes the transitive dependency closure of project in
// priority order: later entries override earlier ones during the merge.
// Each dependency appears exactly once, at its first point of discovery,
// after its own dependencies.
func (s *session) resolveClosure(ctx context.Context, project string) []string {
	visiting := map[string]bool{project: true}
	var order []string
	s.expandDependencies(ctx, project, visiting, &order)
	return order
}

// expandDependencies walks project's declared dependencies depth-first.
// visiting spans the whole top-level resolution and only grows, so it
// doubles as the already-placed check: an id is skipped whether it sits
// above us in the recursion or was appended by an earlier branch. Cycles
// are broken silently. Metadata failures end the branch; the dependency
// itself was already appended by the caller, so its documents still
// participate in the merge.
func (s *session) expandDependencies(ctx context.Context, project string, visiting map[string]bool, order *[]string) {
	meta, err := s.metadata(ctx, project)
	if err != nil {
		log.Printf("catalog: resolve dependencies of %s: %v", project, err)
		return
	}
	if meta == nil {
		return
	}
	for _, dep := range meta.Dependencies {
		if dep == "" || visiting[dep] {
			continue
		}
		visiting[dep] = true
		s.expandDependencies(ctx, dep, visiting, order)
		*order = append(*order, dep)
	}
}
