// Package service defines the interfaces consumed by commands and
// higher-level components, so storage implementations can be swapped in
// tests.
package service

import (
	"context"

	"binsight/internal/model"
)

// FileComplaintInput carries a confirmed classification into the store.
type FileComplaintInput struct {
	ImageURI    string
	Category    model.WasteCategory
	Confidence  float64
	Label       string
	Description string
	Location    *model.GeoLocation
}

// FileComplaintResult is what a successful filing returns: the persisted
// complaint, the updated profile, and the points awarded for this report.
type FileComplaintResult struct {
	Complaint     model.Complaint
	Profile       model.UserProfile
	PointsAwarded int
}

// Store owns the local installation's profile and complaint log. No other
// component mutates them.
type Store interface {
	// GetUserProfile returns the persisted profile, or a freshly
	// initialized default when none exists. Read problems degrade to the
	// default rather than erroring.
	GetUserProfile(ctx context.Context) (*model.UserProfile, error)

	// SaveUserProfile persists the profile as-is.
	SaveUserProfile(ctx context.Context, profile *model.UserProfile) error

	// UpdateUserName overwrites the display name and returns the updated
	// profile. Validation (non-empty, trimmed) is the caller's job.
	UpdateUserName(ctx context.Context, name string) (*model.UserProfile, error)

	// FileComplaint persists a new complaint and applies the streak and
	// point updates to the profile in one atomic step. Safe to retry: a
	// failed call leaves no partial state behind.
	FileComplaint(ctx context.Context, input FileComplaintInput) (*FileComplaintResult, error)

	// GetComplaints returns all complaints, newest first.
	GetComplaints(ctx context.Context) ([]model.Complaint, error)

	// GetComplaintByID returns one complaint, or nil when absent.
	GetComplaintByID(ctx context.Context, id string) (*model.Complaint, error)

	// GetStats summarizes the reporting history. Totals and streak come
	// from the profile; category counts are tallied from the log.
	GetStats(ctx context.Context) (*model.Stats, error)

	// UpdateComplaintStatus is the hook for the external moderation
	// process that moves complaints through their lifecycle.
	UpdateComplaintStatus(ctx context.Context, id string, status model.ComplaintStatus) error

	// Migrate brings the schema up to date.
	Migrate(ctx context.Context) error

	// Close releases the underlying database.
	Close() error
}
