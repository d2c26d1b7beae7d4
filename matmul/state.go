// SPDX-License-Identifier: MIT

package matmul

// State is a phase of one Multiply call.
type State uint8

const (
	ValidatingShapes State = iota
	Dispatching
	Collecting
	Succeeded
	Failed
)

var stateNames = [...]string{
	ValidatingShapes: "ValidatingShapes",
	Dispatching:      "Dispatching",
	Collecting:       "Collecting",
	Succeeded:        "Succeeded",
	Failed:           "Failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "State(?)"
}

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool { return s == Succeeded || s == Failed }

// Observer is called synchronously on the coordinating goroutine at every
// state entry. It must not block.
type Observer func(State)
