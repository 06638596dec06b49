package dashboard

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

type Stats struct {
	Journals     int `json:"journals"`
	Articles     int `json:"articles"`
	BoardMembers int `json:"board_members"`
	Users        int `json:"users"`
}

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	row := r.DB.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM journals),
			(SELECT COUNT(*) FROM articles),
			(SELECT COUNT(*) FROM board_members),
			(SELECT COUNT(*) FROM users)
	`)
	if err := row.Scan(&s.Journals, &s.Articles, &s.BoardMembers, &s.Users); err != nil {
		return s, fmt.Errorf("dashboard stats: %w", err)
	}
	return s, nil
}

// RecentArticles returns the latest n created articles across all journals.
func (r *Repo) RecentArticles(ctx context.Context, n int) ([]models.Article, error) {
	if n <= 0 || n > 50 {
		n = 10
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, journal_id, title, authors, created_at
		FROM articles
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("recent articles: %w", err)
	}
	defer rows.Close()

	var out []models.Article
	for rows.Next() {
		var a models.Article
		var authors sql.NullString
		if err := rows.Scan(&a.ID, &a.JournalID, &a.Title, &authors, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent article: %w", err)
		}
		a.Authors = authors.String
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
