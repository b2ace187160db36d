// Package storage provides the SQLite persistence layer for the local
// complaint log and user profile.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"binsight/internal/model"
	"binsight/internal/service"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidCategory = errors.New("invalid waste category")
	ErrInvalidStatus   = errors.New("invalid complaint status")
	ErrBadConfidence   = errors.New("confidence must be between 0 and 1")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateFileComplaintInput checks a filing before any state changes.
func validateFileComplaintInput(input *service.FileComplaintInput) error {
	if err := validateString(input.ImageURI, "imageUri"); err != nil {
		return err
	}
	if !input.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, input.Category)
	}
	if input.Confidence < 0 || input.Confidence > 1 {
		return fmt.Errorf("%w: %v", ErrBadConfidence, input.Confidence)
	}
	return nil
}

// validateProfile checks a profile before persisting it.
func validateProfile(profile *model.UserProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile", ErrNilParameter)
	}
	if err := validateString(profile.ID, "profile.id"); err != nil {
		return err
	}
	if profile.TotalPoints < 0 || profile.TotalReports < 0 || profile.Streak < 0 {
		return fmt.Errorf("profile counters cannot be negative")
	}
	return nil
}
