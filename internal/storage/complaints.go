package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"binsight/internal/common"
	"binsight/internal/gamify"
	"binsight/internal/model"
	"binsight/internal/service"
)

// FileComplaint persists a new complaint and applies the streak and point
// updates to the profile. The whole read-modify-write runs under fileMu and
// the two writes share one SQL transaction, so a failure leaves totals and
// the log untouched and a retry cannot double-award points.
func (s *SQLiteStorage) FileComplaint(ctx context.Context, input service.FileComplaintInput) (*service.FileComplaintResult, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateFileComplaintInput(&input); err != nil {
		return nil, err
	}

	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	now := s.now()
	profile := s.getUserProfile(ctx)

	newStreak := gamify.ComputeStreak(profile.LastReportDate, profile.Streak, now)
	points := gamify.CalculatePoints(input.Category, input.Confidence, newStreak)

	complaint := model.Complaint{
		ID:            uuid.NewString(),
		ImageURI:      input.ImageURI,
		WasteCategory: input.Category,
		Confidence:    input.Confidence,
		WasteLabel:    input.Label,
		Description:   input.Description,
		Location:      input.Location,
		PointsAwarded: points,
		Status:        model.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	profile.TotalPoints += points
	profile.TotalReports++
	profile.Streak = newStreak
	profile.LastReportDate = &now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewStorageError("file complaint", err)
	}

	if err := insertComplaint(ctx, tx, &complaint); err != nil {
		_ = tx.Rollback()
		return nil, common.NewStorageError("file complaint", err)
	}
	if err := s.upsertProfile(ctx, tx, profile); err != nil {
		_ = tx.Rollback()
		return nil, common.NewStorageError("file complaint", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, common.NewStorageError("file complaint", err)
	}

	slog.Info("filed complaint",
		"id", complaint.ID,
		"category", complaint.WasteCategory,
		"points", points,
		"streak", newStreak)

	return &service.FileComplaintResult{
		Complaint:     complaint,
		Profile:       *profile,
		PointsAwarded: points,
	}, nil
}

func insertComplaint(ctx context.Context, tx *sql.Tx, c *model.Complaint) error {
	query := `
		INSERT INTO complaints (
			id, image_uri, category, confidence, label, description,
			latitude, longitude, accuracy, address,
			points_awarded, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var lat, lng, acc, addr any
	if c.Location != nil {
		lat = c.Location.Latitude
		lng = c.Location.Longitude
		if c.Location.Accuracy != nil {
			acc = *c.Location.Accuracy
		}
		if c.Location.Address != "" {
			addr = c.Location.Address
		}
	}

	_, err := tx.ExecContext(ctx, query,
		c.ID, c.ImageURI, string(c.WasteCategory), c.Confidence, c.WasteLabel, c.Description,
		lat, lng, acc, addr,
		c.PointsAwarded, string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert complaint: %w", err)
	}
	return nil
}

const complaintColumns = `
	id, image_uri, category, confidence, label, description,
	latitude, longitude, accuracy, address,
	points_awarded, status, created_at, updated_at`

// GetComplaints returns all complaints, newest first. Rows that fail to
// scan are logged and skipped rather than failing the whole read.
func (s *SQLiteStorage) GetComplaints(ctx context.Context) ([]model.Complaint, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT` + complaintColumns + `
		FROM complaints
		ORDER BY created_at DESC, rowid DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		slog.Warn("failed to query complaints, returning empty log", "error", err)
		return []model.Complaint{}, nil
	}
	defer func() { _ = rows.Close() }()

	complaints := make([]model.Complaint, 0)
	for rows.Next() {
		complaint, scanErr := scanComplaint(rows)
		if scanErr != nil {
			slog.Warn("skipping unreadable complaint row", "error", scanErr)
			continue
		}
		complaints = append(complaints, *complaint)
	}

	if err := rows.Err(); err != nil {
		slog.Warn("error iterating complaints", "error", err)
	}

	slog.Debug("retrieved complaints", "count", len(complaints))
	return complaints, nil
}

// GetComplaintByID returns one complaint, or nil when absent.
func (s *SQLiteStorage) GetComplaintByID(ctx context.Context, id string) (*model.Complaint, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	query := `SELECT` + complaintColumns + `
		FROM complaints
		WHERE id = ?`

	complaint, err := scanComplaint(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query complaint: %w", err)
	}
	return complaint, nil
}

// UpdateComplaintStatus moves a complaint through its lifecycle. Points are
// never touched: the award is fixed at creation time.
func (s *SQLiteStorage) UpdateComplaintStatus(ctx context.Context, id string, status model.ComplaintStatus) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if !model.ValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE complaints SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), s.now(), id,
	)
	if err != nil {
		return common.NewStorageError("update complaint status", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return common.NewStorageError("update complaint status", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: complaint %s", common.ErrNotFound, id)
	}

	slog.Info("updated complaint status", "id", id, "status", status)
	return nil
}

// GetStats summarizes the reporting history. Totals and streak come from
// the profile, which is authoritative; only the per-category tally is
// derived from the log.
func (s *SQLiteStorage) GetStats(ctx context.Context) (*model.Stats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	profile := s.getUserProfile(ctx)
	stats := &model.Stats{
		TotalReports:   profile.TotalReports,
		TotalPoints:    profile.TotalPoints,
		Streak:         profile.Streak,
		CategoryCounts: make(map[model.WasteCategory]int),
	}

	rows, err := s.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM complaints GROUP BY category`)
	if err != nil {
		slog.Warn("failed to tally categories", "error", err)
		return stats, nil
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			category string
			count    int
		)
		if err := rows.Scan(&category, &count); err != nil {
			slog.Warn("skipping unreadable category tally", "error", err)
			continue
		}
		stats.CategoryCounts[model.ParseCategory(category)] = count
	}
	if err := rows.Err(); err != nil {
		slog.Warn("error iterating category tallies", "error", err)
	}

	return stats, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanComplaint(row rowScanner) (*model.Complaint, error) {
	var (
		c        model.Complaint
		category string
		status   string
		label    sql.NullString
		desc     sql.NullString
		lat      sql.NullFloat64
		lng      sql.NullFloat64
		acc      sql.NullFloat64
		addr     sql.NullString
	)

	err := row.Scan(
		&c.ID, &c.ImageURI, &category, &c.Confidence, &label, &desc,
		&lat, &lng, &acc, &addr,
		&c.PointsAwarded, &status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.WasteCategory = model.ParseCategory(category)
	c.Status = model.ComplaintStatus(status)
	c.WasteLabel = label.String
	c.Description = desc.String

	if lat.Valid && lng.Valid {
		loc := &model.GeoLocation{Latitude: lat.Float64, Longitude: lng.Float64}
		if acc.Valid {
			a := acc.Float64
			loc.Accuracy = &a
		}
		loc.Address = addr.String
		c.Location = loc
	}

	return &c, nil
}
