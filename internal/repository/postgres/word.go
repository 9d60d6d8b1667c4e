package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ReshadVerse/english-bot/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// AddWord inserts a word at stage 1, due in one day. The unique index on
// (user_id, word) plus ON CONFLICT DO NOTHING makes the check-and-insert
// atomic, so concurrent saves of the same word cannot both succeed.
func (r *WordRepo) AddWord(ctx context.Context, userID int64, word, translation string) (bool, error) {
	query := `
		INSERT INTO words (user_id, word, translation, stage, next_review)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, word) DO NOTHING
	`
	stage := domain.InitialStage
	nextReview := domain.NextReview(stage, time.Now())

	res, err := r.db.ExecContext(ctx, query, userID, word, translation, stage, nextReview)
	if err != nil {
		return false, fmt.Errorf("add word: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add word: %w", err)
	}
	return inserted > 0, nil
}

// ListWords returns all entries for the user, most recently added first
func (r *WordRepo) ListWords(ctx context.Context, userID int64) ([]domain.WordEntry, error) {
	query := `
		SELECT id, user_id, word, translation, stage, next_review, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// DueWords returns every entry across all users whose next_review has passed
func (r *WordRepo) DueWords(ctx context.Context, now time.Time) ([]domain.WordEntry, error) {
	query := `
		SELECT id, user_id, word, translation, stage, next_review, created_at
		FROM words
		WHERE next_review <= $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("due words: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// UpdateStage sets the stage and pushes next_review forward by the stage's
// interval. Unknown ids update zero rows, which is not an error.
func (r *WordRepo) UpdateStage(ctx context.Context, id int64, stage int) error {
	query := `
		UPDATE words
		SET stage = $1, next_review = $2
		WHERE id = $3
	`
	nextReview := domain.NextReview(stage, time.Now())

	if _, err := r.db.ExecContext(ctx, query, stage, nextReview, id); err != nil {
		return fmt.Errorf("update stage: %w", err)
	}
	return nil
}

// DeleteByName removes a user's entry, reporting whether a row was removed
func (r *WordRepo) DeleteByName(ctx context.Context, userID int64, word string) (bool, error) {
	query := `
		DELETE FROM words
		WHERE user_id = $1 AND word = $2
	`

	res, err := r.db.ExecContext(ctx, query, userID, word)
	if err != nil {
		return false, fmt.Errorf("delete word: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete word: %w", err)
	}
	return removed > 0, nil
}

// DeleteByID removes an entry unconditionally; deleting an absent id is a no-op
func (r *WordRepo) DeleteByID(ctx context.Context, id int64) error {
	query := `
		DELETE FROM words
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete word by id: %w", err)
	}
	return nil
}

// GetByID returns the entry or nil when absent
func (r *WordRepo) GetByID(ctx context.Context, id int64) (*domain.WordEntry, error) {
	query := `
		SELECT id, user_id, word, translation, stage, next_review, created_at
		FROM words
		WHERE id = $1
	`

	var w domain.WordEntry
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.UserID, &w.Word, &w.Translation, &w.Stage, &w.NextReview, &w.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get word by id: %w", err)
	}

	return &w, nil
}

func scanEntries(rows *sql.Rows) ([]domain.WordEntry, error) {
	var entries []domain.WordEntry
	for rows.Next() {
		var w domain.WordEntry
		if err := rows.Scan(&w.ID, &w.UserID, &w.Word, &w.Translation, &w.Stage, &w.NextReview, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan word row: %w", err)
		}
		entries = append(entries, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan word rows: %w", err)
	}
	return entries, nil
}
