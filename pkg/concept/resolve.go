package concept

// DefaultThreshold is the minimum similarity ratio at which a candidate
// norm is folded into an existing one.
const DefaultThreshold = 0.92

// Resolve maps candidate onto an existing norm when the two are close
// enough, otherwise returns candidate unchanged. An exact match short
// circuits before any ratio is computed. Among multiple known norms the
// highest ratio wins; ties keep the earliest entry. The threshold
// comparison is inclusive.
func Resolve(candidate string, known []string, threshold float64) string {
	if len(known) == 0 {
		return candidate
	}
	for _, n := range known {
		if n == candidate {
			return candidate
		}
	}

	a := []rune(candidate)
	bestRatio := 0.0
	bestMatch := ""
	for _, n := range known {
		r := Ratio(a, []rune(n))
		if r > bestRatio {
			bestRatio = r
			bestMatch = n
		}
	}
	if bestRatio >= threshold && bestMatch != "" {
		return bestMatch
	}
	return candidate
}

// Ratio returns the Ratcliff/Obershelp similarity of two rune sequences:
// twice the number of matching characters over the combined length. Two
// empty sequences are considered identical.
func Ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	matched := matchSize(a, b, 0, len(a), 0, len(b))
	return 2.0 * float64(matched) / float64(total)
}

// matchSize sums the lengths of all matching blocks by recursively
// splitting around the longest common block, mirroring how
// SequenceMatcher.get_matching_blocks walks the sequences.
func matchSize(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	total := size
	total += matchSize(a, b, alo, i, blo, j)
	total += matchSize(a, b, i+size, ahi, j+size, bhi)
	return total
}

// longestMatch finds the longest block of runes common to a[alo:ahi] and
// b[blo:bhi]. When several blocks share the maximal length the one
// starting earliest in a, then earliest in b, is chosen.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
