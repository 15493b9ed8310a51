package builder

import (
	"github.com/katalvlaran/stepviz/snapshot"
)

const methodArray = "Array"

// Array returns WithSize values drawn uniformly from WithValueRange, all in
// the default status. Requires a random source.
func Array(opts ...Option) ([]snapshot.Element, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodArray, ErrNeedRandSource, "size=%d", cfg.size)
	}
	values := make([]int, cfg.size)
	span := cfg.valueMax - cfg.valueMin + 1
	for i := range values {
		values[i] = cfg.valueMin + cfg.rng.Intn(span)
	}

	return snapshot.NewElements(values), nil
}

// Sequence returns the values unchanged as default-status elements. It is the
// deterministic counterpart of Array for fixtures and scenarios.
func Sequence(values ...int) []snapshot.Element {
	return snapshot.NewElements(values)
}
