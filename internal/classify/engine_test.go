package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binsight/internal/model"
)

// stubDetector returns canned labels or a canned error.
type stubDetector struct {
	labels []model.Label
	err    error
	calls  int
}

func (s *stubDetector) DetectLabels(_ context.Context, _ string) ([]model.Label, error) {
	s.calls++
	return s.labels, s.err
}

func newTestEngine(detector LabelDetector) *Engine {
	return NewEngine(Config{Detector: detector, FallbackDelay: -1})
}

func TestClassifyUsesDetectorLabels(t *testing.T) {
	detector := &stubDetector{labels: []model.Label{{Description: "Plastic bottle", Score: 0.93}}}
	engine := newTestEngine(detector)

	result, err := engine.Classify(context.Background(), "file:///tmp/img.jpg")
	require.NoError(t, err)

	assert.Equal(t, model.CategoryPlastic, result.Category)
	assert.InDelta(t, 0.93, result.Confidence, 0.001)
	assert.Equal(t, 1, detector.calls)
}

func TestClassifyFallsBackOnDetectorError(t *testing.T) {
	detector := &stubDetector{err: errors.New("connection refused")}
	engine := newTestEngine(detector)

	result, err := engine.Classify(context.Background(), "file:///tmp/img.jpg")
	require.NoError(t, err, "detector failures must not surface")

	heuristic := heuristicClassify("file:///tmp/img.jpg")
	assert.Equal(t, heuristic, result)
}

func TestClassifyFallsBackOnEmptyLabelSet(t *testing.T) {
	detector := &stubDetector{labels: nil}
	engine := newTestEngine(detector)

	result, err := engine.Classify(context.Background(), "file:///tmp/img.jpg")
	require.NoError(t, err)
	assert.Equal(t, heuristicClassify("file:///tmp/img.jpg"), result)
}

func TestClassifyWithoutDetectorIsHeuristicOnly(t *testing.T) {
	engine := newTestEngine(nil)

	first, err := engine.Classify(context.Background(), "photo.png")
	require.NoError(t, err)
	second, err := engine.Classify(context.Background(), "photo.png")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassifyRejectsEmptyImageRef(t *testing.T) {
	engine := newTestEngine(nil)

	_, err := engine.Classify(context.Background(), "   ")
	assert.Error(t, err)
}

func TestClassifyHonorsContextDuringFallbackDelay(t *testing.T) {
	engine := NewEngine(Config{FallbackDelay: DefaultFallbackDelay})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Classify(ctx, "photo.png")
	assert.ErrorIs(t, err, context.Canceled)
}
