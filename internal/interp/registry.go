package interp

// Panel interprets the parameters belonging to one laboratory panel.
type Panel interface {
	// Name is the registry key ("CBC", "LFT").
	Name() string
	// Parameters lists the parameter names the panel owns.
	Parameters() []string
	// Analyze classifies the supplied values and aggregates findings.
	Analyze(values map[string]Value, sex Sex) *Result
}

// Registry routes parameters to panels. The first registered panel is the
// fallback for parameters no panel claims.
type Registry struct {
	order   []string
	panels  map[string]Panel
	byParam map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		panels:  make(map[string]Panel),
		byParam: make(map[string]string),
	}
}

// Register adds a panel. Re-registering a name replaces the panel but keeps
// its position; parameter claims are first-come.
func (r *Registry) Register(p Panel) {
	name := p.Name()
	if _, exists := r.panels[name]; !exists {
		r.order = append(r.order, name)
	}
	r.panels[name] = p
	for _, param := range p.Parameters() {
		if _, claimed := r.byParam[param]; !claimed {
			r.byParam[param] = name
		}
	}
}

// Get returns a panel by name.
func (r *Registry) Get(name string) (Panel, bool) {
	p, ok := r.panels[name]
	return p, ok
}

// Names lists panel names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// PanelFor returns the panel owning a parameter, falling back to the first
// registered panel for unrecognized names.
func (r *Registry) PanelFor(param string) (Panel, bool) {
	if name, ok := r.byParam[param]; ok {
		return r.panels[name], true
	}
	if len(r.order) == 0 {
		return nil, false
	}
	return r.panels[r.order[0]], true
}

// Borrower is implemented by panels whose derived indices need parameters
// owned by another panel (corrected calcium needs albumin).
type Borrower interface {
	Borrows() []string
}

// AnalyzeAll splits a value map across the owning panels and runs each
// panel that received at least one value. Borrowed parameters are copied
// into the borrowing panel's input without transferring ownership. Results
// are keyed by panel name.
func (r *Registry) AnalyzeAll(values map[string]Value, sex Sex) map[string]*Result {
	grouped := make(map[string]map[string]Value)
	for param, v := range values {
		p, ok := r.PanelFor(param)
		if !ok {
			continue
		}
		g := grouped[p.Name()]
		if g == nil {
			g = make(map[string]Value)
			grouped[p.Name()] = g
		}
		g[param] = v
	}

	for name, vals := range grouped {
		b, ok := r.panels[name].(Borrower)
		if !ok {
			continue
		}
		for _, param := range b.Borrows() {
			if v, present := values[param]; present {
				if _, owned := vals[param]; !owned {
					vals[param] = v
				}
			}
		}
	}

	results := make(map[string]*Result, len(grouped))
	for name, vals := range grouped {
		results[name] = r.panels[name].Analyze(vals, sex)
	}
	return results
}
