package journal

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kamal464/wissen-publication-group-sub000/internal/assets"
	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

type Repo struct {
	DB *sql.DB
	RW assets.Rewriter
}

func NewRepo(db *sql.DB, rw assets.Rewriter) *Repo {
	return &Repo{DB: db, RW: rw}
}

const journalColumns = `
	j.id, j.title, j.shortcode, j.description, j.aims_scope, j.guidelines,
	j.editorial_board, j.home_page_content, j.current_issue, j.archive,
	j.category, j.subject_area, j.issn,
	j.banner_image, j.cover_image, j.flyer_image, j.flyer_pdf,
	j.google_indexing_image, j.editor_image,
	j.created_at, j.updated_at,
	COUNT(a.id) AS article_count
`

// ListAll returns every journal, duplicates collapsed by normalized title and
// asset URLs rewritten for the active CDN configuration. No pagination: the
// public site renders the whole catalog.
func (r *Repo) ListAll(ctx context.Context) ([]models.Journal, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+journalColumns+`
		FROM journals j
		LEFT JOIN articles a ON a.journal_id = j.id
		GROUP BY j.id
		ORDER BY j.updated_at DESC, j.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list journals query: %w", err)
	}
	defer rows.Close()

	var out []models.Journal
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("list journals scan: %w", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}

	// Dedup sees the stored URLs; rewriting happens strictly afterwards.
	out = Deduplicate(out)
	for i := range out {
		r.RW.RewriteJournal(&out[i])
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*models.Journal, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+journalColumns+`
		FROM journals j
		LEFT JOIN articles a ON a.journal_id = j.id
		WHERE j.id = ?
		GROUP BY j.id
	`, id)

	j, err := scanJournal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal by id: %w", err)
	}
	r.RW.RewriteJournal(&j)
	return &j, nil
}

// GetByShortcode resolves a shortcode in two steps: a direct match on the
// journal's own shortcode column, then the journal_shortcodes indirection
// table. A miss at both steps is a terminal not-found; reads never fall back
// to title matching.
func (r *Repo) GetByShortcode(ctx context.Context, code string) (*models.Journal, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	row := r.DB.QueryRowContext(ctx, `
		SELECT `+journalColumns+`
		FROM journals j
		LEFT JOIN articles a ON a.journal_id = j.id
		WHERE j.shortcode = ?
		GROUP BY j.id
	`, code)

	j, err := scanJournal(row)
	if err == nil {
		r.RW.RewriteJournal(&j)
		return &j, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("get journal by shortcode: %w", err)
	}

	var journalID sql.NullInt64
	err = r.DB.QueryRowContext(ctx, `
		SELECT journal_id FROM journal_shortcodes WHERE shortcode = ?
	`, code).Scan(&journalID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup shortcode: %w", err)
	}
	if !journalID.Valid {
		return nil, nil
	}
	return r.GetByID(ctx, journalID.Int64)
}

func (r *Repo) Create(ctx context.Context, j models.Journal) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO journals (
			title, shortcode, description, aims_scope, guidelines,
			editorial_board, home_page_content, current_issue, archive,
			category, subject_area, issn,
			banner_image, cover_image, flyer_image, flyer_pdf,
			google_indexing_image, editor_image
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		j.Title, nullIfEmpty(j.Shortcode), j.Description, j.AimsScope, j.Guidelines,
		j.EditorialBoard, j.HomePageContent, j.CurrentIssue, j.Archive,
		j.Category, j.SubjectArea, j.ISSN,
		j.BannerImage, j.CoverImage, j.FlyerImage, j.FlyerPDF,
		j.GoogleIndexingImage, j.EditorImage,
	)
	if err != nil {
		return 0, fmt.Errorf("create journal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create journal id: %w", err)
	}

	if err := r.linkProvisionedShortcodes(ctx, j.Title, id); err != nil {
		return 0, err
	}
	return id, nil
}

// Update applies a partial patch. Absent fields stay untouched; fields set to
// an explicit null clear the column. Returns false when no row has that id.
func (r *Repo) Update(ctx context.Context, id int64, p models.JournalPatch) (bool, error) {
	var set []string
	var args []any

	add := func(column string, f models.Opt[string]) {
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
	add("shortcode", p.Shortcode)
	add("description", p.Description)
	add("aims_scope", p.AimsScope)
	add("guidelines", p.Guidelines)
	add("editorial_board", p.EditorialBoard)
	add("home_page_content", p.HomePageContent)
	add("current_issue", p.CurrentIssue)
	add("archive", p.Archive)
	add("category", p.Category)
	add("subject_area", p.SubjectArea)
	add("issn", p.ISSN)
	add("banner_image", p.BannerImage)
	add("cover_image", p.CoverImage)
	add("flyer_image", p.FlyerImage)
	add("flyer_pdf", p.FlyerPDF)
	add("google_indexing_image", p.GoogleIndexingImage)
	add("editor_image", p.EditorImage)

	if len(set) == 0 {
		// nothing to change; still confirm the row exists
		var exists int
		err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM journals WHERE id = ?`, id).Scan(&exists)
		if err == sql.ErrNoRows {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("update journal check: %w", err)
		}
		return true, nil
	}

	set = append(set, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx, `
		UPDATE journals SET `+strings.Join(set, ", ")+` WHERE id = ?
	`, args...)
	if err != nil {
		return false, fmt.Errorf("update journal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update journal rows: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if p.Title.Set && p.Title.Value != nil {
		if err := r.linkProvisionedShortcodes(ctx, *p.Title.Value, id); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM journals WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete journal: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// CreateShortcode registers a shortcode, optionally pre-provisioned before
// the journal exists. When no explicit journal id is given, it is linked only
// to a journal whose title equals journal_name exactly, case-insensitive and
// trimmed. Substring matching is never used.
func (r *Repo) CreateShortcode(ctx context.Context, sc models.JournalShortcode) error {
	journalID := sc.JournalID
	if journalID == nil && strings.TrimSpace(sc.JournalName) != "" {
		var id int64
		err := r.DB.QueryRowContext(ctx, `
			SELECT id FROM journals
			WHERE LOWER(TRIM(title)) = LOWER(TRIM(?))
			ORDER BY updated_at DESC, id DESC
			LIMIT 1
		`, sc.JournalName).Scan(&id)
		if err == nil {
			journalID = &id
		} else if err != sql.ErrNoRows {
			return fmt.Errorf("match shortcode journal: %w", err)
		}
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO journal_shortcodes (shortcode, journal_name, journal_id)
		VALUES (?, ?, ?)
	`, strings.TrimSpace(sc.Shortcode), sc.JournalName, journalID)
	if err != nil {
		return fmt.Errorf("create shortcode: %w", err)
	}
	return nil
}

func (r *Repo) ListShortcodes(ctx context.Context) ([]models.JournalShortcode, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT shortcode, journal_name, journal_id, created_at
		FROM journal_shortcodes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list shortcodes: %w", err)
	}
	defer rows.Close()

	var out []models.JournalShortcode
	for rows.Next() {
		var sc models.JournalShortcode
		var journalID sql.NullInt64
		if err := rows.Scan(&sc.Shortcode, &sc.JournalName, &journalID, &sc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shortcode: %w", err)
		}
		if journalID.Valid {
			sc.JournalID = &journalID.Int64
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// linkProvisionedShortcodes attaches any still-unlinked shortcode rows whose
// journal_name matches the title exactly (case-insensitive, trimmed).
func (r *Repo) linkProvisionedShortcodes(ctx context.Context, title string, journalID int64) error {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	_, err := r.DB.ExecContext(ctx, `
		UPDATE journal_shortcodes
		SET journal_id = ?
		WHERE journal_id IS NULL AND LOWER(TRIM(journal_name)) = LOWER(TRIM(?))
	`, journalID, title)
	if err != nil {
		return fmt.Errorf("link shortcodes: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJournal(row rowScanner) (models.Journal, error) {
	var (
		j         models.Journal
		shortcode sql.NullString
		optional  = make([]sql.NullString, 16)
	)

	if err := row.Scan(
		&j.ID, &j.Title, &shortcode,
		&optional[0], &optional[1], &optional[2], &optional[3], &optional[4],
		&optional[5], &optional[6], &optional[7], &optional[8], &optional[9],
		&optional[10], &optional[11], &optional[12], &optional[13],
		&optional[14], &optional[15],
		&j.CreatedAt, &j.UpdatedAt, &j.ArticleCount,
	); err != nil {
		return j, err
	}

	j.Shortcode = shortcode.String
	j.Description = nullToPtr(optional[0])
	j.AimsScope = nullToPtr(optional[1])
	j.Guidelines = nullToPtr(optional[2])
	j.EditorialBoard = nullToPtr(optional[3])
	j.HomePageContent = nullToPtr(optional[4])
	j.CurrentIssue = nullToPtr(optional[5])
	j.Archive = nullToPtr(optional[6])
	j.Category = nullToPtr(optional[7])
	j.SubjectArea = nullToPtr(optional[8])
	j.ISSN = nullToPtr(optional[9])
	j.BannerImage = nullToPtr(optional[10])
	j.CoverImage = nullToPtr(optional[11])
	j.FlyerImage = nullToPtr(optional[12])
	j.FlyerPDF = nullToPtr(optional[13])
	j.GoogleIndexingImage = nullToPtr(optional[14])
	j.EditorImage = nullToPtr(optional[15])
	return j, nil
}

func nullToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
