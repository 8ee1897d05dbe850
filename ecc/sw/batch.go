package sw

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/consensys/ecgroup/field"
	"github.com/consensys/ecgroup/logger"
)

// batchAffineParallelThreshold is the input size above which the per-point
// affine conversion fans out across CPUs.
const batchAffineParallelThreshold = 256

// BatchJacobianToAffine converts points to their canonical affine
// representatives, preserving order. The whole Z column is inverted with
// one shared field inversion (Montgomery's trick); identity inputs are
// excluded from the shared product and mapped to the affine identity
// marker.
//
// The prefix/suffix product passes of the batch inversion are inherently
// sequential; the final per-point conversion is independent across points
// and runs in parallel for large inputs.
func BatchJacobianToAffine[B any, PB field.Element[B], C Config[B, PB]](points []PointJac[B, PB, C]) []PointAffine[B, PB, C] {
	result := make([]PointAffine[B, PB, C], len(points))
	if len(points) == 0 {
		return result
	}

	zs := make([]B, len(points))
	for i := range points {
		PB(&zs[i]).Set(&points[i].Z)
	}

	// one inversion for the whole column; zero Z's are skipped
	field.BatchInvert[B, PB](zs)

	convert := func(start, end int) {
		var zinv2, zinv3 B
		for i := start; i < end; i++ {
			if points[i].IsInfinity() {
				result[i].SetInfinity()
				continue
			}
			PB(&zinv2).Square(&zs[i])
			PB(&zinv3).Mul(&zinv2, &zs[i])
			PB(&result[i].X).Mul(&points[i].X, &zinv2)
			PB(&result[i].Y).Mul(&points[i].Y, &zinv3)
		}
	}

	n := len(points)
	if n < batchAffineParallelThreshold {
		convert(0, n)
		return result
	}

	nbTasks := runtime.GOMAXPROCS(0)
	log := logger.Logger()
	log.Debug().Int("n", n).Int("tasks", nbTasks).Msg("batch affine conversion")
	chunk := (n + nbTasks - 1) / nbTasks
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			convert(start, end)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return result
}
