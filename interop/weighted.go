package interop

import (
	"math"

	"github.com/katalvlaran/graphcore/core"
	"gonum.org/v1/gonum/graph"
)

// WeightedAdapter extends Adapter with gonum's graph.Weighted contract,
// reading edge weights from a core.Weights[float64] container attached
// to the wrapped store under the given key.
type WeightedAdapter struct {
	*Adapter
	weights *core.Weights[float64]
}

// NewWeighted wraps g and a float64 edge weight container registered
// under key on reg.
func NewWeighted(g core.TopologyStore, reg *core.WeightsRegistry, key string) (*WeightedAdapter, error) {
	w, err := core.GetWeights[float64](reg, key)
	if err != nil {
		return nil, err
	}

	return &WeightedAdapter{Adapter: New(g), weights: w}, nil
}

var _ graph.Weighted = (*WeightedAdapter)(nil)

// Weight returns the weight of the edge between xid and yid, and whether
// one exists. When no edge joins them, a pair with xid == yid reports
// (0, true), an implicit zero-weight self loop, and any other pair reports
// (math.Inf(1), false).
func (a *WeightedAdapter) Weight(xid, yid int64) (float64, bool) {
	e, ok, _ := a.g.GetEdge(int(xid), int(yid))
	if !ok {
		if xid == yid {
			return 0, true // zero-weight implicit self loop, per graph.Weighted convention
		}

		return math.Inf(1), false
	}

	return a.weights.Get(e), true
}
