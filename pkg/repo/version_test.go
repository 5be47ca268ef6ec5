package repo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal plain", "1.0", "1.0", 0},
		{"equal after v prefix", "v2.0", "2.0", 0},
		{"equal with zero padding", "1.2", "1.2.0", 0},
		{"capital V prefix", "V1.5", "1.5", 0},
		{"simple greater", "2.0", "1.9", 1},
		{"simple lesser", "1.9", "2.0", -1},
		{"numeric not lexicographic", "10.0", "9.0", 1},
		{"patch level", "1.0.1", "1.0", 1},
		{"multi digit components", "1.10.0", "1.9.9", 1},
		{"whitespace trimmed", "  1.0  ", "1.0", 0},
		{"build suffix ignored", "1.0-beta", "1.0", 0},
		{"non numeric lexicographic", "Beta", "Alpha", 1},
		{"non numeric equal", "Beta", "Beta", 0},
		{"empty both", "", "", 0},
		{"empty vs version", "", "1.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CompareVersions(tt.a, tt.b))
		})
	}
}

func TestCompareVersionsAntisymmetric(t *testing.T) {
	pairs := [][2]string{
		{"1.0", "2.0"},
		{"9.0", "10.0"},
		{"1.2.3", "1.2.4"},
		{"Alpha", "Beta"},
	}

	for _, p := range pairs {
		require.Equal(t, -CompareVersions(p[1], p[0]), CompareVersions(p[0], p[1]),
			"comparing %q and %q", p[0], p[1])
	}
}
