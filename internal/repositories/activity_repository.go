package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/examdesk/admin-console/internal/models"
	"go.uber.org/zap"
)

type activityRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewActivityRepository creates a new activity repository backed by MySQL
func NewActivityRepository(db *sql.DB, logger *zap.Logger) *activityRepository {
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new activity entry
func (r *activityRepository) Create(ctx context.Context, entry *models.ActivityEntry) error {
	query := `
		INSERT INTO admin_activity (kind, action, entity_id, outcome, http_status, error, request_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.Kind, entry.Action, entry.EntityID, entry.Outcome, entry.HTTPStatus, entry.Error, entry.RequestID)
	if err != nil {
		r.logger.Error("failed to insert activity entry", zap.Error(err))
		return fmt.Errorf("failed to create activity entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	entry.ID = int(id)
	return nil
}

// GetAll retrieves a page of activity entries, newest first, optionally filtered by kind
func (r *activityRepository) GetAll(ctx context.Context, page, count int, kind models.EntityKind) ([]models.ActivityEntry, error) {
	whereClause := ""
	var args []any
	if kind != "" {
		whereClause = "WHERE kind = ?"
		args = append(args, kind)
	}

	offset := (page - 1) * count

	query := fmt.Sprintf(`
		SELECT id, kind, action, entity_id, outcome, http_status, error, request_id, created_at
		FROM admin_activity
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, count, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to query activity", zap.Error(err))
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		var entry models.ActivityEntry
		var errText sql.NullString
		if err := rows.Scan(
			&entry.ID,
			&entry.Kind,
			&entry.Action,
			&entry.EntityID,
			&entry.Outcome,
			&entry.HTTPStatus,
			&errText,
			&entry.RequestID,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entry.Error = errText.String
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return entries, nil
}
