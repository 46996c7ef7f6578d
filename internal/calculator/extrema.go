package calculator

// FindPeaks returns the indices of local maxima, keeping only peaks at least
// minDistance bars after the previously kept one. Candidates are taken in index
// order, so the earliest peak of a crowded stretch wins.
func FindPeaks(values []float64, minDistance int) []int {
	return enforceSpacing(localMaxima(values), minDistance)
}

// FindTroughs is FindPeaks over the negated series.
func FindTroughs(values []float64, minDistance int) []int {
	neg := make([]float64, len(values))
	for i, v := range values {
		neg[i] = -v
	}
	return FindPeaks(neg, minDistance)
}

// localMaxima finds strict local maxima, excluding both endpoints.
// A flat top counts when both sides are lower; its middle index (rounded down) is reported.
func localMaxima(x []float64) []int {
	var peaks []int
	last := len(x) - 1
	i := 1
	for i < last {
		if x[i-1] < x[i] {
			ahead := i + 1
			for ahead < last && x[ahead] == x[i] {
				ahead++
			}
			if x[ahead] < x[i] {
				peaks = append(peaks, (i+ahead-1)/2)
				i = ahead
			}
		}
		i++
	}
	return peaks
}

func enforceSpacing(indices []int, minDistance int) []int {
	kept := make([]int, 0, len(indices))
	for _, idx := range indices {
		if len(kept) > 0 && idx-kept[len(kept)-1] < minDistance {
			continue
		}
		kept = append(kept, idx)
	}
	return kept
}
