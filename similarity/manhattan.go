package similarity

// ManhattanDistance computes the L1 distance sum(|a[i] - b[i]|).
// Empty columns have distance 0.
func ManhattanDistance(a, b []int) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	var sum int
	for i := range a {
		sum += abs(a[i] - b[i])
	}

	return sum, nil
}

// Differences returns |a[i] - b[i]| for every pair.
func Differences(a, b []int) ([]int, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	diffs := make([]int, len(a))
	for i := range a {
		diffs[i] = abs(a[i] - b[i])
	}
	return diffs, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
