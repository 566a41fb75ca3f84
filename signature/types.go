package signature

// MaxVariables bounds the signature size. Every operation over the world space
// is O(2^n); 20 variables keep a world index inside uint32 and a full world
// list around a million entries.
const MaxVariables = 20

// Variable is an atomic propositional symbol. Equality and ordering are by value.
type Variable string

// World is the canonical index of a truth assignment: bit i is set iff the
// i-th variable of the signature is true.
type World uint32

// Literal is one variable together with its truth value.
type Literal struct {
	Variable Variable
	Value    bool
}

// Assignment is a total truth assignment listed in signature order.
type Assignment []Literal

// Signature is an ordered, duplicate-free, non-empty list of variables.
// It is immutable once built; copies share the same read-only storage.
type Signature struct {
	vars []Variable
	pos  map[Variable]int
}
