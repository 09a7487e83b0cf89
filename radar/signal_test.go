package radar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSynthesize(t *testing.T) {
	times := []float64{0, 0.25, 0.5, 0.75}
	sig := Synthesize(times, []float64{1})
	assert.InDelta(t, 0, sig[0], 1e-12)
	assert.InDelta(t, 1, sig[1], 1e-12)
	assert.InDelta(t, 0, sig[2], 1e-12)
	assert.InDelta(t, -1, sig[3], 1e-12)

	// No tones renders silence.
	if diff := cmp.Diff([]float64{0, 0, 0, 0}, Synthesize(times, nil)); diff != "" {
		t.Fatalf("unexpected signal (-want +got):\n%s", diff)
	}
}

func TestSynthesizeSumsTones(t *testing.T) {
	times := []float64{0, 0.1, 0.2, 0.3}
	a := Synthesize(times, []float64{3})
	b := Synthesize(times, []float64{7})
	sum := Synthesize(times, []float64{3, 7})
	for i := range times {
		assert.InDelta(t, a[i]+b[i], sum[i], 1e-12, "i=%d", i)
	}
}

func TestNearestIndex(t *testing.T) {
	times := []float64{0, 1, 2, 3}
	assert.Equal(t, 0, NearestIndex(times, -5))
	assert.Equal(t, 2, NearestIndex(times, 1.9))
	assert.Equal(t, 3, NearestIndex(times, 99))
	// Ties go to the earlier sample.
	assert.Equal(t, 1, NearestIndex(times, 1.5))
}
