package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"binsight/internal/common"
	"binsight/internal/model"
)

// The profile is a singleton per installation; its row id is fixed so the
// default stays stable across reads before the first write.
const (
	localUserID     = "local-user"
	defaultUserName = "Citizen"
)

// defaultProfile is what GetUserProfile returns before anything has been
// persisted.
func defaultProfile(now time.Time) *model.UserProfile {
	return &model.UserProfile{
		ID:       localUserID,
		Name:     defaultUserName,
		JoinedAt: now,
	}
}

// GetUserProfile returns the persisted profile, or a freshly initialized
// default when none exists. Read failures are logged and degrade to the
// default; the caller never sees them.
func (s *SQLiteStorage) GetUserProfile(ctx context.Context) (*model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.getUserProfile(ctx), nil
}

func (s *SQLiteStorage) getUserProfile(ctx context.Context) *model.UserProfile {
	query := `
		SELECT id, name, total_points, total_reports, streak, last_report_date, joined_at
		FROM profile
		WHERE id = ?`

	var (
		profile    model.UserProfile
		lastReport sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, localUserID).Scan(
		&profile.ID, &profile.Name, &profile.TotalPoints, &profile.TotalReports,
		&profile.Streak, &lastReport, &profile.JoinedAt,
	)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return defaultProfile(s.now())
	case err != nil:
		slog.Warn("failed to read profile, using default", "error", err)
		return defaultProfile(s.now())
	}

	if lastReport.Valid {
		t := lastReport.Time
		profile.LastReportDate = &t
	}
	return &profile
}

// SaveUserProfile persists the profile as-is.
func (s *SQLiteStorage) SaveUserProfile(ctx context.Context, profile *model.UserProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProfile(profile); err != nil {
		return err
	}
	if err := s.upsertProfile(ctx, s.db, profile); err != nil {
		return common.NewStorageError("save profile", err)
	}
	return nil
}

// execer covers *sql.DB and *sql.Tx so profile writes can join the
// FileComplaint transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLiteStorage) upsertProfile(ctx context.Context, db execer, profile *model.UserProfile) error {
	query := `
		INSERT INTO profile (id, name, total_points, total_reports, streak, last_report_date, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			total_points = excluded.total_points,
			total_reports = excluded.total_reports,
			streak = excluded.streak,
			last_report_date = excluded.last_report_date`

	var lastReport any
	if profile.LastReportDate != nil {
		lastReport = *profile.LastReportDate
	}

	_, err := db.ExecContext(ctx, query,
		profile.ID, profile.Name, profile.TotalPoints, profile.TotalReports,
		profile.Streak, lastReport, profile.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// UpdateUserName overwrites the display name and persists the profile.
// Validation beyond non-empty trimming belongs to the caller.
func (s *SQLiteStorage) UpdateUserName(ctx context.Context, name string) (*model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	profile := s.getUserProfile(ctx)
	profile.Name = strings.TrimSpace(name)

	if err := s.upsertProfile(ctx, s.db, profile); err != nil {
		return nil, common.NewStorageError("update user name", err)
	}

	slog.Info("updated display name", "name", profile.Name)
	return profile, nil
}
