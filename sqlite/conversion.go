package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/ampconv"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ampconv.ConversionService = (*ConversionService)(nil)

// ConversionService implements ampconv.ConversionService using SQLite.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// CreateConversion records a conversion and its actions in one transaction.
// ID, ContentHash and ConvertedAt are set on conv.
func (s *ConversionService) CreateConversion(ctx context.Context, conv *ampconv.Conversion) error {
	if err := conv.Validate(); err != nil {
		return err
	}

	conv.ID = uuid.New().String()
	conv.ContentHash = hashContent(conv.HTML)
	conv.ConvertedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO conversions (id, source, html, content_hash, converted_at)
		VALUES (?, ?, ?, ?, ?)
	`, conv.ID, conv.Source, conv.HTML, conv.ContentHash, conv.ConvertedAt.Format(timeFormat)); err != nil {
		return err
	}

	for i, a := range conv.Actions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO actions (conversion_id, position, subject, kind, line, context)
			VALUES (?, ?, ?, ?, ?, ?)
		`, conv.ID, i, a.Subject, string(a.Kind), a.Line, a.Context); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindConversionByID retrieves a conversion and its actions.
func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*ampconv.Conversion, error) {
	var conv ampconv.Conversion
	var convertedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, html, content_hash, converted_at
		FROM conversions
		WHERE id = ?
	`, id).Scan(&conv.ID, &conv.Source, &conv.HTML, &conv.ContentHash, &convertedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ampconv.Errorf(ampconv.ENOTFOUND, "conversion not found")
	}
	if err != nil {
		return nil, err
	}

	if conv.ConvertedAt, err = parseTime(convertedAt, "converted_at"); err != nil {
		return nil, err
	}

	if conv.Actions, err = s.findActions(ctx, conv.ID); err != nil {
		return nil, err
	}

	return &conv, nil
}

func (s *ConversionService) findActions(ctx context.Context, conversionID string) ([]ampconv.ActionTaken, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT subject, kind, line, context
		FROM actions
		WHERE conversion_id = ?
		ORDER BY position ASC
	`, conversionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []ampconv.ActionTaken
	for rows.Next() {
		var a ampconv.ActionTaken
		var kind string
		if err := rows.Scan(&a.Subject, &kind, &a.Line, &a.Context); err != nil {
			return nil, err
		}
		a.Kind = ampconv.ActionKind(kind)
		actions = append(actions, a)
	}

	return actions, rows.Err()
}

// FindConversions retrieves conversions matching the filter, newest first.
// The HTML and actions of listed conversions are not loaded.
func (s *ConversionService) FindConversions(ctx context.Context, filter ampconv.ConversionFilter) ([]*ampconv.Conversion, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, content_hash, converted_at FROM conversions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY converted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []*ampconv.Conversion
	for rows.Next() {
		var conv ampconv.Conversion
		var convertedAt string

		if err := rows.Scan(&conv.ID, &conv.Source, &conv.ContentHash, &convertedAt); err != nil {
			return nil, err
		}

		if conv.ConvertedAt, err = parseTime(convertedAt, "converted_at"); err != nil {
			return nil, err
		}

		convs = append(convs, &conv)
	}

	return convs, rows.Err()
}

// DeleteConversion permanently removes a conversion and its actions.
func (s *ConversionService) DeleteConversion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM conversions WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ampconv.Errorf(ampconv.ENOTFOUND, "conversion not found")
	}

	return nil
}
