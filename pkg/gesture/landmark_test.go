package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLandmarks(t *testing.T) {
	raw := make([]float32, LandmarkCount*3)
	for i := 0; i < LandmarkCount; i++ {
		raw[i*3] = float32(i) * 10
		raw[i*3+1] = 112
		raw[i*3+2] = -22.4
	}

	hand, err := DecodeLandmarks(raw, 224)
	require.NoError(t, err)

	assert.InDelta(t, 40.0/224, hand.Landmarks[ThumbTip].X, 1e-6)
	assert.InDelta(t, 80.0/224, hand.Landmarks[IndexFingerTip].X, 1e-6)
	assert.InDelta(t, 0.5, hand.Landmarks[Wrist].Y, 1e-6)
	assert.InDelta(t, -0.1, hand.Landmarks[Wrist].Z, 1e-6)
}

func TestDecodeLandmarksErrors(t *testing.T) {
	_, err := DecodeLandmarks(make([]float32, 10), 224)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")

	_, err = DecodeLandmarks(make([]float32, LandmarkCount*3), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input size")
}
