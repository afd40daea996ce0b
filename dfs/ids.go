package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/buckets/core"
)

// IDS runs iterative deepening: depth-limited searches from start with
// bounds 0, 1, 2, … up to MaxDepth, stopping at the first success.
// Every attempt starts from a fresh branch, so nothing leaks between bounds.
//
// Result.Bound is the bound of the successful attempt and Result.Visited
// sums the nodes entered across attempts. Past MaxDepth it returns an
// error wrapping ErrDepthExhausted.
func IDS(start core.State, opts ...Option) (*DFSResult, error) {
	o, err := buildOptions(start, opts)
	if err != nil {
		return nil, err
	}

	res := &DFSResult{}
	for bound := 0; bound <= o.MaxDepth; bound++ {
		if o.OnDeepen != nil {
			o.OnDeepen(bound)
		}
		err = attempt(o, start, bound, res)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrDepthExhausted) {
			return res, err
		}
	}

	return res, fmt.Errorf("%w: tried bounds 0..%d", ErrDepthExhausted, o.MaxDepth)
}
