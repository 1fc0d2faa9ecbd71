package backoff

// Node is the countdown of one contending node. A node transmits in the slot
// where its TTL is 0.
type Node struct {
	TTL int
}

// Tick advances the countdown by one slot.
func (n *Node) Tick() {
	if n.TTL <= 0 {
		panic("tick on expired countdown")
	}
	n.TTL -= 1
}

// Reset draws a fresh countdown uniformly from [0, w).
func (n *Node) Reset(src Source, w int) {
	n.TTL = src.Intn(w)
}
