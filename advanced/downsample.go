package advanced

// Downsampler keeps n points evenly spaced by index, always including the
// first and last.
type Downsampler struct{}

func (Downsampler) Strategy() Strategy {
	return Downsampling
}

func (Downsampler) Reduce(points Sequence, n int) (*Reduction, error) {
	if n <= 2 {
		return nil, invalidTargetCount(n)
	}
	if n >= len(points) {
		return noOp(points, n), nil
	}
	kept := DownsampleIndexes(len(points), n)
	return &Reduction{Points: points.Pick(kept), Kept: kept}, nil
}

// floor(k*(m-1)/(n-1)) for k in [0, n). Integer division keeps the floor
// exact, and for 2 <= n <= m the indexes are strictly ascending.
func DownsampleIndexes(m, n int) []int {
	if n <= 0 || m <= 0 {
		return []int{}
	}
	if n == 1 {
		return []int{0}
	}
	indexes := make([]int, n)
	for k := range indexes {
		indexes[k] = k * (m - 1) / (n - 1)
	}
	return indexes
}
