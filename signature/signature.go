package signature

import (
	"fmt"
	"strings"
	"unicode"
)

// New builds a Signature from vars, keeping their order.
// Returns ErrEmptySignature, ErrTooManyVariables, ErrInvalidVariable or
// ErrDuplicateVariable (wrapped with the offending name).
// Complexity: O(n).
func New(vars ...Variable) (Signature, error) {
	if len(vars) == 0 {
		return Signature{}, ErrEmptySignature
	}
	if len(vars) > MaxVariables {
		return Signature{}, fmt.Errorf("%w: %d > %d", ErrTooManyVariables, len(vars), MaxVariables)
	}
	s := Signature{
		vars: make([]Variable, len(vars)),
		pos:  make(map[Variable]int, len(vars)),
	}
	for i, v := range vars {
		if !validName(v) {
			return Signature{}, fmt.Errorf("%w: %q", ErrInvalidVariable, string(v))
		}
		if _, dup := s.pos[v]; dup {
			return Signature{}, fmt.Errorf("%w: %q", ErrDuplicateVariable, string(v))
		}
		s.vars[i] = v
		s.pos[v] = i
	}

	return s, nil
}

// MustNew is like New but panics on error. Intended for fixtures and examples.
func MustNew(vars ...Variable) Signature {
	s, err := New(vars...)
	if err != nil {
		panic(err)
	}

	return s
}

// Parse reads a comma-separated variable list such as "a, b, c".
// Surrounding braces are accepted, so String output parses back.
func Parse(text string) (Signature, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(strings.TrimPrefix(text, "{"), "}")
	if strings.TrimSpace(text) == "" {
		return Signature{}, ErrEmptySignature
	}
	parts := strings.Split(text, ",")
	vars := make([]Variable, len(parts))
	for i, p := range parts {
		vars[i] = Variable(strings.TrimSpace(p))
	}

	return New(vars...)
}

// validName accepts non-empty names without whitespace, commas, braces or a
// leading '!', so that worlds and signatures render unambiguously.
func validName(v Variable) bool {
	if v == "" || v[0] == '!' {
		return false
	}
	for _, r := range string(v) {
		if unicode.IsSpace(r) || r == ',' || r == '{' || r == '}' {
			return false
		}
	}

	return true
}

// IsZero reports whether s is the zero Signature (not built by New).
func (s Signature) IsZero() bool { return len(s.vars) == 0 }

// Len returns the number of variables n.
func (s Signature) Len() int { return len(s.vars) }

// Variables returns a copy of the variables in signature order.
func (s Signature) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)

	return out
}

// Variable returns the i-th variable. It panics if i is out of range.
func (s Signature) Variable(i int) Variable { return s.vars[i] }

// Position returns the bit position of v and whether v belongs to s.
func (s Signature) Position(v Variable) (int, bool) {
	i, ok := s.pos[v]
	return i, ok
}

// WorldCount returns 2^n.
func (s Signature) WorldCount() int { return 1 << len(s.vars) }

// Contains reports whether w is a valid world index for s.
func (s Signature) Contains(w World) bool { return int(w) < s.WorldCount() && !s.IsZero() }

// Worlds lists every world in canonical order 0..2^n-1.
// Complexity: O(2^n).
func (s Signature) Worlds() []World {
	out := make([]World, s.WorldCount())
	for i := range out {
		out[i] = World(i)
	}

	return out
}

// Equal reports whether s and o list the same variables in the same order.
func (s Signature) Equal(o Signature) bool {
	if len(s.vars) != len(o.vars) {
		return false
	}
	for i := range s.vars {
		if s.vars[i] != o.vars[i] {
			return false
		}
	}

	return true
}

// String renders the signature as "{a, b, c}".
func (s Signature) String() string {
	names := make([]string, len(s.vars))
	for i, v := range s.vars {
		names[i] = string(v)
	}

	return "{" + strings.Join(names, ", ") + "}"
}
