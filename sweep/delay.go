package sweep

import (
	"math"

	"github.com/DataDog/sketches-go/ddsketch"
)

// accessDelay records, for every successful transmission, the number of slots
// since the same node last transmitted successfully (or since the start of
// the run).
type accessDelay struct {
	last   []int
	sketch *ddsketch.DDSketch
}

func newAccessDelay(nodes int) *accessDelay {
	sketch, err := ddsketch.NewDefaultDDSketch(0.01)
	if err != nil {
		panic(err)
	}
	last := make([]int, nodes)
	for i := range last {
		last[i] = -1
	}
	return &accessDelay{last, sketch}
}

func (a *accessDelay) ObserveSlot(slot int, transmitters []int) {
	if len(transmitters) != 1 {
		return
	}
	i := transmitters[0]
	if err := a.sketch.Add(float64(slot - a.last[i])); err != nil {
		panic(err)
	}
	a.last[i] = slot
}

// quantiles returns NaN for every quantile when no transmission succeeded.
func quantiles(sketch *ddsketch.DDSketch, q []float64) []float64 {
	if sketch.GetCount() == 0 {
		res := make([]float64, len(q))
		for i := range res {
			res[i] = math.NaN()
		}
		return res
	}
	res, err := sketch.GetValuesAtQuantiles(q)
	if err != nil {
		panic(err)
	}
	return res
}
