package article

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

const articleColumns = `id, journal_id, title, authors, abstract, content, pdf_url, published_at, created_at, updated_at`

// ListByJournal returns a page of a journal's articles, newest first, plus
// the total count for pagination.
func (r *Repo) ListByJournal(ctx context.Context, journalID int64, limit, offset int) ([]models.Article, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM articles WHERE journal_id = ?
	`, journalID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE journal_id = ?
		ORDER BY published_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, journalID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	out := make([]models.Article, 0, limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows err: %w", err)
	}
	return out, total, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE id = ?
	`, id)

	a, err := scanArticle(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

func (r *Repo) Create(ctx context.Context, a models.Article) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO articles (journal_id, title, authors, abstract, content, pdf_url, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.JournalID, a.Title, a.Authors, a.Abstract, a.Content, a.PDFURL, a.PublishedAt)
	if err != nil {
		return 0, fmt.Errorf("create article: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create article id: %w", err)
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, id int64, p models.ArticlePatch) (bool, error) {
	var set []string
	var args []any

	addString := func(column string, f models.Opt[string]) {
		if !f.Set {
			return
		}
		set = append(set, column+" = ?")
		if f.Value == nil {
			args = append(args, nil)
		} else {
			args = append(args, *f.Value)
		}
	}

	if p.Title.Set && p.Title.Value != nil {
		set = append(set, "title = ?")
		args = append(args, *p.Title.Value)
	}
	addString("authors", p.Authors)
	addString("abstract", p.Abstract)
	addString("content", p.Content)
	addString("pdf_url", p.PDFURL)

	if p.PublishedAt.Set {
		set = append(set, "published_at = ?")
		if p.PublishedAt.Value == nil {
			args = append(args, nil)
		} else {
			args = append(args, *p.PublishedAt.Value)
		}
	}

	if len(set) == 0 {
		var exists int
		err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM articles WHERE id = ?`, id).Scan(&exists)
		if err == sql.ErrNoRows {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("update article check: %w", err)
		}
		return true, nil
	}

	set = append(set, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx, `
		UPDATE articles SET `+strings.Join(set, ", ")+` WHERE id = ?
	`, args...)
	if err != nil {
		return false, fmt.Errorf("update article: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update article rows: %w", err)
	}
	return n > 0, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete article: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (models.Article, error) {
	var (
		a           models.Article
		authors     sql.NullString
		abstract    sql.NullString
		content     sql.NullString
		pdfURL      sql.NullString
		publishedAt sql.NullTime
	)

	if err := row.Scan(
		&a.ID, &a.JournalID, &a.Title, &authors, &abstract, &content, &pdfURL,
		&publishedAt, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return a, err
	}

	a.Authors = authors.String
	a.Abstract = abstract.String
	a.Content = content.String
	a.PDFURL = pdfURL.String
	if publishedAt.Valid {
		t := publishedAt.Time
		a.PublishedAt = &t
	}
	return a, nil
}
