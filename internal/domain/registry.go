package domain

// Snapshot of a location registry.
// Pending is the coordinate held by the input form; Locations is the
// ordered, append-only list of committed coordinates.
// A State is never mutated once produced; Reduce always returns a new one.
type State struct {
	Pending   Coordinate
	Locations []Coordinate
}

// Action is an operator event applied to a State by Reduce.
type Action interface {
	isAction()
}

// SetLatitude replaces the pending latitude text.
type SetLatitude struct{ Value string }

// SetLongitude replaces the pending longitude text.
type SetLongitude struct{ Value string }

// Submit commits the pending coordinate when both fields are filled.
type Submit struct{}

func (SetLatitude) isAction()  {}
func (SetLongitude) isAction() {}
func (Submit) isAction()       {}

// Reduce applies a single action to s and returns the resulting snapshot.
// A Submit with an incomplete pending coordinate returns s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetLatitude:
		s.Pending.Lat = a.Value
		return s
	case SetLongitude:
		s.Pending.Lng = a.Value
		return s
	case Submit:
		if !s.Pending.Complete() {
			return s
		}
		// Copy so older snapshots never observe the appended entry.
		locations := make([]Coordinate, len(s.Locations), len(s.Locations)+1)
		copy(locations, s.Locations)
		return State{
			Pending:   Coordinate{},
			Locations: append(locations, s.Pending),
		}
	default:
		return s
	}
}

// Registry holds the current snapshot of one operator's registry and
// applies actions to it through Reduce.
type Registry struct {
	state State
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Registry resumed from an existing snapshot.
func RegistryFrom(s State) *Registry {
	return &Registry{state: s}
}

func (r *Registry) SetLatitude(text string) { r.state = Reduce(r.state, SetLatitude{Value: text}) }

func (r *Registry) SetLongitude(text string) { r.state = Reduce(r.state, SetLongitude{Value: text}) }

// Submit commits the pending coordinate and reports whether it did.
// An incomplete pending coordinate is left in place without error.
func (r *Registry) Submit() bool {
	before := len(r.state.Locations)
	r.state = Reduce(r.state, Submit{})
	return len(r.state.Locations) > before
}

// Apply runs actions in order against the current snapshot.
func (r *Registry) Apply(actions ...Action) State {
	for _, a := range actions {
		r.state = Reduce(r.state, a)
	}
	return r.state
}

// Outcome is the snapshot left by a batch of actions and how many
// coordinates that batch committed.
type Outcome struct {
	State     State
	Committed int
}

// Dispatch runs actions in order like Apply and also counts the commits
// they produced, so callers need no second read to learn what happened.
func (r *Registry) Dispatch(actions ...Action) Outcome {
	before := len(r.state.Locations)
	state := r.Apply(actions...)
	return Outcome{State: state, Committed: len(state.Locations) - before}
}

func (r *Registry) State() State { return r.state }

func (r *Registry) Pending() Coordinate { return r.state.Pending }

// Committed coordinates in submission order. The returned slice is a copy.
func (r *Registry) Locations() []Coordinate {
	out := make([]Coordinate, len(r.state.Locations))
	copy(out, r.state.Locations)
	return out
}
