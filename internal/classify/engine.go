package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"binsight/internal/model"
)

// DefaultFallbackDelay approximates on-device processing latency for the
// heuristic path.
const DefaultFallbackDelay = 1200 * time.Millisecond

// LabelDetector fetches (description, score) annotations for an image from
// an external service. Implemented by the vision client; nil means the
// service is unconfigured and classification goes straight to the
// heuristic.
type LabelDetector interface {
	DetectLabels(ctx context.Context, imageRef string) ([]model.Label, error)
}

// Engine classifies waste images. It owns no persistent state; the caller
// decides whether to persist a result as a complaint.
type Engine struct {
	detector      LabelDetector
	fallbackDelay time.Duration
}

// Config configures an Engine.
type Config struct {
	// Detector is the external annotation service; nil disables the
	// network path entirely.
	Detector LabelDetector
	// FallbackDelay overrides the simulated processing latency of the
	// heuristic path. Negative disables the delay (tests); zero means
	// DefaultFallbackDelay.
	FallbackDelay time.Duration
}

// NewEngine creates a classification engine.
func NewEngine(cfg Config) *Engine {
	delay := cfg.FallbackDelay
	if delay == 0 {
		delay = DefaultFallbackDelay
	}
	if delay < 0 {
		delay = 0
	}
	return &Engine{
		detector:      cfg.Detector,
		fallbackDelay: delay,
	}
}

// Classify turns an image reference into a waste category with confidence.
// Service failures are never surfaced: a network error, bad status, or an
// empty label set all degrade to the deterministic heuristic. The only
// error returned is for an empty image reference.
func (e *Engine) Classify(ctx context.Context, imageRef string) (model.ClassificationResult, error) {
	if strings.TrimSpace(imageRef) == "" {
		return model.ClassificationResult{}, fmt.Errorf("image reference cannot be empty")
	}

	if e.detector != nil {
		labels, err := e.detector.DetectLabels(ctx, imageRef)
		switch {
		case err != nil:
			slog.Warn("label detection failed, using heuristic fallback", "error", err)
		case len(labels) == 0:
			slog.Warn("label detection returned no labels, using heuristic fallback")
		default:
			result := matchLabels(labels)
			slog.Debug("classified via label detection",
				"category", result.Category,
				"confidence", result.Confidence,
				"labels", len(labels))
			return result, nil
		}
	} else {
		slog.Debug("no label detector configured, using heuristic fallback")
	}

	if e.fallbackDelay > 0 {
		select {
		case <-ctx.Done():
			return model.ClassificationResult{}, ctx.Err()
		case <-time.After(e.fallbackDelay):
		}
	}

	result := heuristicClassify(imageRef)
	slog.Debug("classified via heuristic",
		"category", result.Category,
		"confidence", result.Confidence)
	return result, nil
}
