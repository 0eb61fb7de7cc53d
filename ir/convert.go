package ir

// Converter is satisfied by anything that can produce a value of the core
// model. Adapters for foreign container types live outside this package and
// plug in through it; the core never depends on any particular adapter.
type Converter interface {
	ToJSON() (*Node, error)
}
