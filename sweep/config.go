package sweep

import (
	"github.com/yangl1996/slotted-backoff/backoff"
)

// Config describes a grid of simulations: every window size is paired with
// every node count in [MinNodes, MaxNodes], and each pair is simulated Trials
// times.
type Config struct {
	WindowSizes []int
	MinNodes    int
	MaxNodes    int
	Slots       int
	Trials      int
	Seed        int64
	Workers     int // 0 to use all CPUs
}

// DefaultConfig sweeps window sizes 8, 16 and 32 over 1 to 32 nodes.
func DefaultConfig() Config {
	return Config{
		WindowSizes: []int{8, 16, 32},
		MinNodes:    1,
		MaxNodes:    32,
		Slots:       backoff.Slots,
		Trials:      1,
		Seed:        0,
		Workers:     0,
	}
}

func (c Config) Validate() error {
	if err := backoff.AtLeast("number of window sizes", len(c.WindowSizes), 1); err != nil {
		return err
	}
	for _, w := range c.WindowSizes {
		if err := backoff.AtLeast("window size", w, 1); err != nil {
			return err
		}
	}
	if err := backoff.AtLeast("min node count", c.MinNodes, 1); err != nil {
		return err
	}
	if err := backoff.AtLeast("max node count", c.MaxNodes, c.MinNodes); err != nil {
		return err
	}
	if err := backoff.AtLeast("slot count", c.Slots, 1); err != nil {
		return err
	}
	if err := backoff.AtLeast("trial count", c.Trials, 1); err != nil {
		return err
	}
	return backoff.AtLeast("worker count", c.Workers, 0)
}

// points returns the number of grid points.
func (c Config) points() int {
	return len(c.WindowSizes) * (c.MaxNodes - c.MinNodes + 1)
}
