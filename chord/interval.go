package chord

// Normalize reduces semitone offsets to a sorted set of pitch-class offsets
// in 0..11. Negative offsets wrap.
func Normalize(offsets []int) []int {
	var seen [12]bool
	for _, o := range offsets {
		seen[mod12(o)] = true
	}
	res := make([]int, 0, len(offsets))
	for pc, ok := range seen {
		if ok {
			res = append(res, pc)
		}
	}
	return res
}

func mod12(n int) int {
	m := n % 12
	if m < 0 {
		m += 12
	}
	return m
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
