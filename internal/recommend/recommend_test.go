package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierTruncation(t *testing.T) {
	tests := []struct {
		percent int
		want    int
	}{
		{100, 2},
		{80, 2}, // inclusive boundary
		{79, 3},
		{60, 3},
		{59, 4},
		{40, 4},
		{39, 5},
		{0, 5},
	}
	for _, tt := range tests {
		assert.Len(t, For("policy", tt.percent), tt.want, "percent %d", tt.percent)
	}
}

func TestUnknownCategory(t *testing.T) {
	assert.Empty(t, For("nope", 10))
}

func TestCountNonIncreasingAsPercentRises(t *testing.T) {
	for _, id := range []string{"policy", "access", "data", "network", "training"} {
		prev := len(For(id, 0))
		for p := 1; p <= 100; p++ {
			n := len(For(id, p))
			assert.LessOrEqual(t, n, prev, "category %s at %d%%", id, p)
			prev = n
		}
	}
}

func TestOrderPreserved(t *testing.T) {
	all := For("network", 0)
	top := For("network", 90)
	assert.Equal(t, all[:2], top)
}
