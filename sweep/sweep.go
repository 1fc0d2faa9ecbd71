package sweep

import (
	"runtime"
	"sort"
	"sync"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/aclements/go-moremath/stats"
	"github.com/yangl1996/slotted-backoff/backoff"
)

// Point summarizes all trials of one (window size, node count) pair.
type Point struct {
	Window     int
	Nodes      int
	Efficiency float64 // mean over trials
	StdDev     float64
	Min        float64
	Max        float64
	Idle       float64 // mean fraction of idle slots
	Collision  float64 // mean fraction of collided slots
	DelayP50   float64 // access delay in slots, pooled over trials
	DelayP95   float64
	Trials     []backoff.Stats
}

// Series holds the points of one window size in increasing node count.
type Series struct {
	Window int
	Points []Point
}

type job struct {
	point int
	trial int
}

type result struct {
	job
	stats backoff.Stats
	delay *ddsketch.DDSketch
	err   error
}

func (c Config) coords(point int) (w, n int) {
	span := c.MaxNodes - c.MinNodes + 1
	return c.WindowSizes[point/span], c.MinNodes + point%span
}

func (c Config) simulate(j job) result {
	w, n := c.coords(j.point)
	res := result{job: j}
	s, err := backoff.New(newRand(c.Seed, w, n, j.trial), w, n)
	if err != nil {
		res.err = err
		return res
	}
	delay := newAccessDelay(n)
	s.Observer = delay
	res.stats, res.err = s.Run(c.Slots)
	res.delay = delay.sketch
	return res
}

// Run simulates every point of the grid and returns one Series per window
// size, in the order of cfg.WindowSizes. If progress is not nil, it is called
// from the calling goroutine each time all trials of a point are done.
func Run(cfg Config, progress func(Point)) ([]Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	npoints := cfg.points()

	jobs := make(chan job)
	results := make(chan result)
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- cfg.simulate(j)
			}
		}()
	}
	go func() {
		for p := 0; p < npoints; p++ {
			for t := 0; t < cfg.Trials; t++ {
				jobs <- job{p, t}
			}
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	span := cfg.MaxNodes - cfg.MinNodes + 1
	series := make([]Series, len(cfg.WindowSizes))
	for i, w := range cfg.WindowSizes {
		series[i] = Series{w, make([]Point, span)}
	}
	trials := make([][]backoff.Stats, npoints)
	delays := make([][]*ddsketch.DDSketch, npoints)
	pending := make([]int, npoints)
	for p := range pending {
		trials[p] = make([]backoff.Stats, cfg.Trials)
		delays[p] = make([]*ddsketch.DDSketch, cfg.Trials)
		pending[p] = cfg.Trials
	}

	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		trials[r.point][r.trial] = r.stats
		delays[r.point][r.trial] = r.delay
		pending[r.point] -= 1
		if pending[r.point] > 0 {
			continue
		}
		w, n := cfg.coords(r.point)
		pt := summarize(w, n, trials[r.point], delays[r.point])
		delays[r.point] = nil
		series[r.point/span].Points[r.point%span] = pt
		if progress != nil {
			progress(pt)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return series, nil
}

func summarize(w, n int, trials []backoff.Stats, delays []*ddsketch.DDSketch) Point {
	p := Point{Window: w, Nodes: n, Trials: trials}

	eff := stats.Sample{}
	idle := stats.Sample{}
	coll := stats.Sample{}
	for _, st := range trials {
		eff.Xs = append(eff.Xs, st.Efficiency())
		idle.Xs = append(idle.Xs, st.IdleFraction())
		coll.Xs = append(coll.Xs, st.CollisionFraction())
	}
	sort.Float64s(eff.Xs)
	eff.Sorted = true
	p.Efficiency = eff.Mean()
	p.StdDev = eff.StdDev()
	p.Min, p.Max = eff.Bounds()
	p.Idle = idle.Mean()
	p.Collision = coll.Mean()

	pooled := delays[0]
	for _, d := range delays[1:] {
		if err := pooled.MergeWith(d); err != nil {
			panic(err)
		}
	}
	q := quantiles(pooled, []float64{0.50, 0.95})
	p.DelayP50, p.DelayP95 = q[0], q[1]
	return p
}
