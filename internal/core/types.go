package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract between a growth simulation and its front ends.
// Grow runs one complete response to an external trigger; Cells exposes the
// grid in row-major order for rendering.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Grow() error
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// StatusProvider is implemented by sims that report run progress as text.
type StatusProvider interface {
	Status() []string
}
