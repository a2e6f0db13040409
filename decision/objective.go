// SPDX-License-Identifier: MIT

package decision

import (
	"fmt"
	"strings"
)

// Objective is the optimization direction of a single criterion.
// It orients dominance comparisons and the inversion logic of scoring
// methods: a Minimize criterion prefers smaller raw values, a Maximize
// criterion prefers larger ones.
type Objective int

const (
	// Minimize marks a cost criterion: smaller raw values are better.
	Minimize Objective = iota

	// Maximize marks a benefit criterion: larger raw values are better.
	Maximize
)

// valid reports whether o is one of the declared directions.
func (o Objective) valid() bool { return o == Minimize || o == Maximize }

// String implements fmt.Stringer using the conventional MCDA short forms.
func (o Objective) String() string {
	switch o {
	case Minimize:
		return "MIN"
	case Maximize:
		return "MAX"
	default:
		return fmt.Sprintf("Objective(%d)", int(o))
	}
}

// ParseObjective maps the textual forms used by dataset tooling onto an
// Objective. Accepted (case-insensitive): "min", "minimize", "max",
// "maximize". Anything else yields ErrBadObjective.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MIN", "MINIMIZE":
		return Minimize, nil
	case "MAX", "MAXIMIZE":
		return Maximize, nil
	default:
		return Minimize, fmt.Errorf("ParseObjective(%q): %w", s, ErrBadObjective)
	}
}
