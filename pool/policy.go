// SPDX-License-Identifier: MIT

package pool

import "github.com/cockroachdb/errors"

// Default sizing thresholds, in output cells.
const (
	DefaultSmallCells  = 100  // below: DefaultSmall workers
	DefaultMediumCells = 1000 // below: DefaultMedium workers
	DefaultSmall       = 1
	DefaultMedium      = 2
	DefaultLarge       = 4
)

// Policy maps the number of output cells of a product to a worker count.
// It is a tunable heuristic trading parallelism against per-task channel
// overhead, not a correctness contract: any value >= 1 yields the same result.
type Policy struct {
	SmallCells  int `yaml:"small_cells"`  // cells < SmallCells → Small workers
	MediumCells int `yaml:"medium_cells"` // cells < MediumCells → Medium workers
	Small       int `yaml:"small"`
	Medium      int `yaml:"medium"`
	Large       int `yaml:"large"` // everything else
}

// DefaultPolicy is <100 cells → 1 worker, <1000 → 2, otherwise 4.
var DefaultPolicy = Policy{
	SmallCells:  DefaultSmallCells,
	MediumCells: DefaultMediumCells,
	Small:       DefaultSmall,
	Medium:      DefaultMedium,
	Large:       DefaultLarge,
}

// Validate checks 0 <= SmallCells <= MediumCells and every worker count >= 1.
func (p Policy) Validate() error {
	if p.SmallCells < 0 || p.MediumCells < p.SmallCells {
		return errors.Wrapf(ErrBadPolicy, "thresholds %d/%d", p.SmallCells, p.MediumCells)
	}
	if p.Small < 1 || p.Medium < 1 || p.Large < 1 {
		return errors.Wrapf(ErrBadPolicy, "worker counts %d/%d/%d", p.Small, p.Medium, p.Large)
	}

	return nil
}

// Workers returns the worker count for a product with the given cell count.
// Complexity: O(1).
func (p Policy) Workers(cells int) int {
	switch {
	case cells < p.SmallCells:
		return p.Small
	case cells < p.MediumCells:
		return p.Medium
	default:
		return p.Large
	}
}

// Max returns the largest worker count the policy can ask for; the size a
// long-lived pool needs to serve every problem size.
func (p Policy) Max() int {
	return max(p.Small, p.Medium, p.Large)
}

// SizeFor applies DefaultPolicy to cells.
func SizeFor(cells int) int { return DefaultPolicy.Workers(cells) }
