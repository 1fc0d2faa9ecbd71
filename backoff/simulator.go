package backoff

// Slots is the number of slots simulated by Simulate.
const Slots = 100000

// Outcome is what happened on the channel in one slot.
type Outcome int

const (
	Idle Outcome = iota
	Success
	Collision
)

func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Success:
		return "success"
	case Collision:
		return "collision"
	default:
		return "unknown"
	}
}

// Observer is notified after every slot with the indices of the nodes that
// transmitted in it. The slice is reused across slots.
type Observer interface {
	ObserveSlot(slot int, transmitters []int)
}

// Stats counts slot outcomes of a run.
type Stats struct {
	Slots         int
	Successes     int
	Idle          int
	Collisions    int
	Transmissions int // sum over slots of the number of transmitters
}

// Efficiency is the fraction of slots carrying exactly one transmission.
func (s Stats) Efficiency() float64 {
	return ratio(s.Successes, s.Slots)
}

func (s Stats) IdleFraction() float64 {
	return ratio(s.Idle, s.Slots)
}

func (s Stats) CollisionFraction() float64 {
	return ratio(s.Collisions, s.Slots)
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// Simulator runs the slotted contention of a fixed set of nodes sharing one
// channel.
type Simulator struct {
	src      Source
	window   int
	nodes    []Node
	txBuf    []int
	stats    Stats
	Observer Observer
}

// New creates a simulator with n nodes whose countdowns are drawn from
// [0, w), so that they do not start synchronized.
func New(src Source, w, n int) (*Simulator, error) {
	if err := validate("window size", w); err != nil {
		return nil, err
	}
	if err := validate("node count", n); err != nil {
		return nil, err
	}
	s := &Simulator{
		src:    src,
		window: w,
		nodes:  make([]Node, n),
		txBuf:  make([]int, 0, n),
	}
	for i := range s.nodes {
		s.nodes[i].Reset(src, w)
	}
	return s, nil
}

// Nodes exposes the node states. Callers must not modify them.
func (s *Simulator) Nodes() []Node {
	return s.nodes
}

func (s *Simulator) Stats() Stats {
	return s.stats
}

// Step simulates one slot. Each node either transmits (TTL 0) and redraws its
// countdown, or ticks. When two or more nodes transmit, each of them redraws
// its countdown once more, discarding the first draw.
func (s *Simulator) Step() Outcome {
	tx := s.txBuf[:0]
	for i := range s.nodes {
		n := &s.nodes[i]
		if n.TTL == 0 {
			tx = append(tx, i)
			n.Reset(s.src, s.window)
		} else {
			n.Tick()
		}
	}
	s.txBuf = tx

	var o Outcome
	switch len(tx) {
	case 0:
		o = Idle
		s.stats.Idle += 1
	case 1:
		o = Success
		s.stats.Successes += 1
	default:
		o = Collision
		s.stats.Collisions += 1
		for _, i := range tx {
			s.nodes[i].Reset(s.src, s.window)
		}
	}
	s.stats.Transmissions += len(tx)
	if s.Observer != nil {
		s.Observer.ObserveSlot(s.stats.Slots, tx)
	}
	s.stats.Slots += 1
	return o
}

// Run simulates the given number of slots and returns the cumulative stats.
func (s *Simulator) Run(slots int) (Stats, error) {
	if err := validate("slot count", slots); err != nil {
		return s.stats, err
	}
	for i := 0; i < slots; i++ {
		s.Step()
	}
	return s.stats, nil
}

// Simulate runs n nodes with backoff window w for Slots slots and returns the
// slot efficiency.
func Simulate(src Source, w, n int) (float64, error) {
	s, err := New(src, w, n)
	if err != nil {
		return 0, err
	}
	st, err := s.Run(Slots)
	if err != nil {
		return 0, err
	}
	return st.Efficiency(), nil
}
