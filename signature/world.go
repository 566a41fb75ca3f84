package signature

import (
	"fmt"
	"strings"
)

// Index maps a total assignment to its canonical World.
// Every variable of s must be present; extra keys are rejected.
// Returns ErrUnknownVariable or ErrIncompleteAssignment.
// Complexity: O(n).
func (s Signature) Index(assignment map[Variable]bool) (World, error) {
	var w World
	for v, val := range assignment {
		i, ok := s.pos[v]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownVariable, string(v))
		}
		if val {
			w |= 1 << uint(i)
		}
	}
	if len(assignment) != len(s.vars) {
		return 0, fmt.Errorf("%w: got %d of %d variables", ErrIncompleteAssignment, len(assignment), len(s.vars))
	}

	return w, nil
}

// Assignment maps w back to its truth assignment in signature order.
// Returns ErrWorldOutOfRange if w is not in [0, 2^n).
// Complexity: O(n).
func (s Signature) Assignment(w World) (Assignment, error) {
	if !s.Contains(w) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrWorldOutOfRange, w, s.WorldCount())
	}
	out := make(Assignment, len(s.vars))
	for i, v := range s.vars {
		out[i] = Literal{Variable: v, Value: w&(1<<uint(i)) != 0}
	}

	return out, nil
}

// ParseWorld reads a literal list such as "a, !b" (braces optional) and
// returns its World. Every variable must appear exactly once.
func (s Signature) ParseWorld(text string) (World, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(strings.TrimPrefix(text, "{"), "}")
	asg := make(map[Variable]bool, len(s.vars))
	if strings.TrimSpace(text) != "" {
		for _, part := range strings.Split(text, ",") {
			lit := strings.TrimSpace(part)
			val := true
			if strings.HasPrefix(lit, "!") {
				val = false
				lit = strings.TrimSpace(lit[1:])
			}
			v := Variable(lit)
			if _, seen := asg[v]; seen {
				return 0, fmt.Errorf("%w: %q", ErrDuplicateVariable, lit)
			}
			asg[v] = val
		}
	}

	return s.Index(asg)
}

// Map returns the assignment as a variable → value map.
func (a Assignment) Map() map[Variable]bool {
	m := make(map[Variable]bool, len(a))
	for _, l := range a {
		m[l.Variable] = l.Value
	}

	return m
}

// String renders the assignment as "{a, !b}".
func (a Assignment) String() string {
	parts := make([]string, len(a))
	for i, l := range a {
		if l.Value {
			parts[i] = string(l.Variable)
		} else {
			parts[i] = "!" + string(l.Variable)
		}
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
