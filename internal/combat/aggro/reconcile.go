package aggro

// Opponent describes what reconciliation needs to know about a tracked entity
type Opponent struct {
	Alive    bool
	Distance float64
}

// Lookup resolves a tracked id. It reports false when the entity no longer exists.
type Lookup func(id string) (Opponent, bool)

// ReconcileInput is the state one reconciliation pass works from
type ReconcileInput struct {
	CurrentTargetID string
	PursuitRadius   float64
	MaxRange        float64
	Lookup          Lookup
}

// Reconciliation is the outcome of a pass
type Reconciliation struct {
	Pruned      []string
	Disengage   bool
	NewTargetID string
}

// Retarget reports whether the current target should change
func (r *Reconciliation) Retarget() bool {
	return r.NewTargetID != ""
}

// Reconcile prunes entries that are gone, dead or beyond the maximum tracking range,
// then decides whether the owner should disengage or switch targets. With several
// opponents left, only those inside the pursuit radius are considered, and the target
// only changes when another one holds strictly more aggro than the current target.
func (t *Table) Reconcile(input *ReconcileInput) *Reconciliation {
	result := &Reconciliation{}
	distances := make(map[string]float64, len(t.entries))

	for _, entry := range t.All() {
		opponent, ok := input.Lookup(entry.ID)
		if !ok || !opponent.Alive || (input.MaxRange > 0 && opponent.Distance > input.MaxRange) {
			t.Remove(entry.ID)
			result.Pruned = append(result.Pruned, entry.ID)
			continue
		}
		distances[entry.ID] = opponent.Distance
	}

	switch len(t.entries) {
	case 0:
		result.Disengage = true
		return result
	case 1:
		if only := t.entries[0]; only.ID != input.CurrentTargetID {
			result.NewTargetID = only.ID
		}
		return result
	}

	var best *Entry
	for _, entry := range t.entries {
		if distances[entry.ID] > input.PursuitRadius {
			continue
		}
		if best == nil || entry.Value > best.Value {
			best = entry
		}
	}
	if best == nil || best.ID == input.CurrentTargetID {
		return result
	}

	current, tracked := t.index[input.CurrentTargetID]
	if !tracked || best.Value > current.Value {
		result.NewTargetID = best.ID
	}
	return result
}
