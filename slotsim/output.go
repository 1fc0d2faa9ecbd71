package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yangl1996/slotted-backoff/sweep"
	"golang.org/x/crypto/blake2b"
)

// configDigest identifies the configuration a table was produced with.
func configDigest(cfg *sweep.Config) (string, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:8]), nil
}

// writeTable writes one gnuplot data block per window size.
func writeTable(w io.Writer, digest string, series []sweep.Series) error {
	if _, err := fmt.Fprintf(w, "# config %s\n", digest); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "# nodes  efficiency  stddev  min  max  idle  collision  delay-p50  delay-p95"); err != nil {
		return err
	}
	for i, s := range series {
		if i != 0 {
			// for gnuplot
			if _, err := fmt.Fprint(w, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\"W = %d\"\n", s.Window); err != nil {
			return err
		}
		for _, p := range s.Points {
			_, err := fmt.Fprintf(w, "%d %.6f %.6f %.6f %.6f %.6f %.6f %.2f %.2f\n",
				p.Nodes, p.Efficiency, p.StdDev, p.Min, p.Max, p.Idle, p.Collision, p.DelayP50, p.DelayP95)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// writePlotScript writes a gnuplot script plotting efficiency against node
// count, one line per window size, from the table at dataPath.
func writePlotScript(w io.Writer, dataPath string, cfg *sweep.Config) error {
	_, err := fmt.Fprintf(w, `set xlabel "# of Nodes"
set ylabel "Slot Efficiency"
set key top right
set grid dashtype 2
set xrange [0:%d]
set yrange [0:1]
plot for [i=0:%d] %q index i using 1:2 with linespoints title columnheader(1)
pause mouse close
`, cfg.MaxNodes, len(cfg.WindowSizes)-1, dataPath)
	return err
}
