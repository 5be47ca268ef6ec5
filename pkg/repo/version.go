package repo

import (
	"strconv"
	"strings"
)

// CompareVersions imposes a total order on free-form version strings.
// It returns -1, 0 or 1 and never fails, whatever the input looks like.
//
// Both inputs are trimmed and stripped of a single leading "v"/"V" before
// comparison. Numeric dot-separated components are compared position by
// position with missing positions treated as zero, so "1.2" equals "1.2.0".
// Strings without any numeric content fall back to plain lexicographic order.
func CompareVersions(a, b string) int {
	cleanA := cleanVersion(a)
	cleanB := cleanVersion(b)

	if cleanA == cleanB {
		return 0
	}

	partsA := versionComponents(cleanA)
	partsB := versionComponents(cleanB)

	if len(partsA) == 0 && len(partsB) == 0 {
		return strings.Compare(cleanA, cleanB)
	}

	n := len(partsA)
	if len(partsB) > n {
		n = len(partsB)
	}
	for i := 0; i < n; i++ {
		var va, vb int64
		if i < len(partsA) {
			va = partsA[i]
		}
		if i < len(partsB) {
			vb = partsB[i]
		}
		if va < vb {
			return -1
		}
		if va > vb {
			return 1
		}
	}

	return 0
}

func cleanVersion(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
		s = s[1:]
	}
	return strings.TrimSpace(s)
}

// versionComponents extracts the numeric dot-separated components of a version
// string, dropping every non-digit non-dot character first. Pieces that still
// fail to parse (for example from consecutive dots) are discarded.
func versionComponents(s string) []int64 {
	var numeric strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			numeric.WriteRune(r)
		}
	}

	var parts []int64
	for _, piece := range strings.Split(numeric.String(), ".") {
		n, err := strconv.ParseInt(piece, 10, 64)
		if err != nil {
			continue
		}
		parts = append(parts, n)
	}
	return parts
}
