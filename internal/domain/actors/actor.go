package actors

// Actor is a typed view of a host actor document. Its inventory lives in
// separate item documents keyed by the actor ID; only generated effects are
// embedded here.
type Actor struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Effects []*Effect `json:"effects,omitempty"`
}

// FindEffects returns the actor's effects carrying the given marker flag.
func (a *Actor) FindEffects(marker string) []*Effect {
	var found []*Effect
	for _, e := range a.Effects {
		if e != nil && e.Flags[marker] {
			found = append(found, e)
		}
	}
	return found
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	cp := *a
	if a.Effects != nil {
		cp.Effects = make([]*Effect, len(a.Effects))
		for i, e := range a.Effects {
			ec := *e
			ec.Changes = append([]EffectChange(nil), e.Changes...)
			if e.Flags != nil {
				ec.Flags = make(map[string]bool, len(e.Flags))
				for k, v := range e.Flags {
					ec.Flags[k] = v
				}
			}
			cp.Effects[i] = &ec
		}
	}
	return &cp
}
