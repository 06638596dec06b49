package journal

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kamal464/wissen-publication-group-sub000/internal/assets"
	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a second pool connection would see a different empty :memory: db
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		t.Fatalf("pragma: %v", err)
	}

	schema, err := os.ReadFile(filepath.Join("..", "..", "docs", "schema.sql"))
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

func newTestRepo(t *testing.T, cdnBase string) *Repo {
	t.Helper()
	db := newTestDB(t)
	return NewRepo(db, assets.NewRewriter(cdnBase, "https://bucket.s3.amazonaws.com"))
}

func seedJournal(t *testing.T, db *sql.DB, id int64, title, updatedAt string, set map[string]string) {
	t.Helper()

	cols := "id, title, created_at, updated_at"
	placeholders := "?, ?, ?, ?"
	args := []any{id, title, updatedAt, updatedAt}
	for col, val := range set {
		cols += ", " + col
		placeholders += ", ?"
		args = append(args, val)
	}

	_, err := db.Exec(`INSERT INTO journals (`+cols+`) VALUES (`+placeholders+`)`, args...)
	if err != nil {
		t.Fatalf("seed journal %d: %v", id, err)
	}
}

func TestListAllCollapsesDuplicatesByContent(t *testing.T) {
	r := newTestRepo(t, "")
	ctx := context.Background()

	// richer duplicate is also newer here; either rule picks row 2
	seedJournal(t, r.DB, 1, "Alpha", "2024-01-01 00:00:00", map[string]string{"description": "x"})
	seedJournal(t, r.DB, 2, "alpha", "2024-01-02 00:00:00", map[string]string{"aims_scope": "y"})
	seedJournal(t, r.DB, 3, "Gamma", "2023-06-01 00:00:00", nil)

	out, err := r.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 journals, got %d", len(out))
	}
	if out[0].ID != 2 {
		t.Fatalf("expected deduplicated alpha (row 2) first, got %d", out[0].ID)
	}
	if out[1].ID != 3 {
		t.Fatalf("expected gamma second, got %d", out[1].ID)
	}
}

func TestListAllIncludesArticleCounts(t *testing.T) {
	r := newTestRepo(t, "")
	ctx := context.Background()

	seedJournal(t, r.DB, 1, "Acta", "2024-01-01 00:00:00", nil)
	for i := 0; i < 3; i++ {
		if _, err := r.DB.Exec(`INSERT INTO articles (journal_id, title) VALUES (1, 'a')`); err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	out, err := r.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(out) != 1 || out[0].ArticleCount != 3 {
		t.Fatalf("expected article_count 3, got %+v", out)
	}
}

func TestListAllRewritesAssetURLs(t *testing.T) {
	r := newTestRepo(t, "https://cdn.example.com")
	ctx := context.Background()

	seedJournal(t, r.DB, 1, "Acta", "2024-01-01 00:00:00", map[string]string{
		"banner_image": "https://bucket.s3.amazonaws.com/journals/a b.png",
	})

	out, err := r.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(out) != 1 || out[0].BannerImage == nil {
		t.Fatalf("unexpected result: %+v", out)
	}
	if got := *out[0].BannerImage; got != "https://cdn.example.com/journals/a%20b.png" {
		t.Fatalf("banner not rewritten: %q", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	r := newTestRepo(t, "")

	j, err := r.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if j != nil {
		t.Fatalf("expected nil for missing journal, got %+v", j)
	}
}

func TestGetByShortcodeDirectField(t *testing.T) {
	r := newTestRepo(t, "")
	ctx := context.Background()

	seedJournal(t, r.DB, 1, "Acta", "2024-01-01 00:00:00", map[string]string{"shortcode": "acta"})

	j, err := r.GetByShortcode(ctx, "acta")
	if err != nil {
		t.Fatalf("GetByShortcode: %v", err)
	}
	if j == nil || j.ID != 1 {
		t.Fatalf("expected journal 1, got %+v", j)
	}
}

func TestGetByShortcodeIndirection(t *testing.T) {
	r := newTestRepo(t, "")
	ctx := context.Background()

	// shortcode exists only in the indirection table, linked to journal 7
	seedJournal(t, r.DB, 7, "Intl Journal of Medicine", "2024-01-01 00:00:00", nil)
	if _, err := r.DB.Exec(`
		INSERT INTO journal_shortcodes (shortcode, journal_name, journal_id)
		VALUES ('ijom', 'Intl Journal of Medicine', 7)
	`); err != nil {
		t.Fatalf("seed shortcode: %v", err)
	}

	j, err := r.GetByShortcode(ctx, "ijom")
	if err != nil {
		t.Fatalf("GetByShortcode: %v", err)
	}
	if j == nil || j.ID != 7 {
		t.Fatalf("expected journal 7 via indirection, got %+v", j)
	}
}

func TestGetByShortcodeMiss(t *testing.T) {
	r := newTestRepo(t, "")

	j, err := r.GetByShortcode(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetByShortcode: %v", err)
	}
	if j != nil {
		t.Fatalf("expected not-found, got %+v", j)
	}
}

func TestGetByShortcodeUnlinkedIndirectionIsMiss(t *testing.T) {
	r := newTestRepo(t, "")

	if _, err := r.DB.Exec(`
		INSERT INTO journal_shortcodes (shortcode, journal_name) VALUES ('pending', 'Future Journal')
	`); err != nil {
		t.Fatalf("seed shortcode: %v", err)
	}

	// an unlinked shortcode must not fall back to title matching
	j, err := r.GetByShortcode(context.Background(), "pending")
	if err != nil {
		t.Fatalf("GetByShortcode: %v", err)
	}
	if j != nil {
		t.Fatalf("expected not-found for unlinked shortcode, got %+v", j)
	}
}

func TestCreateLinksProvisionedShortcode(t *testing.T) {
	r := newTestRepo(t, "")
	ctx := context.Background()

	if err := r.CreateShortcode(ctx, models.JournalShortcode{
		Shortcode:   "ijom",
		JournalName: "Intl Journal of Medicine",
	}); err != nil {
		t.Fatalf("CreateShortcode: %v", err)
	}

	id, err := r.Create(ctx, models.Journal{Title: "intl journal of medicine"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	j, err := r.GetByShortcode(ctx, "ijom")
	if err != nil {
		t.Fatalf("GetByShortcode: %v", err)
	}
	if j == nil || j.ID != id {
		t.Fatalf("expected shortcode linked to new journal %d, got %+v", id, j)
	}
}

func TestUpdatePatchDistinguishesNullFromAbsent(t *testing.T) {
	r := newTestRepo(t, "")
	ctx := context.Background()

	seedJournal(t, r.DB, 1, "Acta", "2024-01-01 00:00:00", map[string]string{
		"description": "keep or clear",
		"issn":        "1234-5678",
	})

	// absent description stays; explicit null issn clears
	ok, err := r.Update(ctx, 1, models.JournalPatch{
		ISSN: models.OptNull[string](),
	})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}

	j, err := r.GetByID(ctx, 1)
	if err != nil || j == nil {
		t.Fatalf("GetByID: %v", err)
	}
	if j.Description == nil || *j.Description != "keep or clear" {
		t.Fatalf("absent field was modified: %+v", j.Description)
	}
	if j.ISSN != nil {
		t.Fatalf("explicit null did not clear issn: %q", *j.ISSN)
	}

	ok, err = r.Update(ctx, 1, models.JournalPatch{
		Description: models.OptOf("new text"),
	})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}
	j, _ = r.GetByID(ctx, 1)
	if j.Description == nil || *j.Description != "new text" {
		t.Fatalf("set value not applied: %+v", j.Description)
	}
}

func TestUpdateMissingJournal(t *testing.T) {
	r := newTestRepo(t, "")

	ok, err := r.Update(context.Background(), 99, models.JournalPatch{
		Description: models.OptOf("x"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if ok {
		t.Fatal("expected not-found for missing journal")
	}
}

func TestDeleteJournal(t *testing.T) {
	r := newTestRepo(t, "")
	ctx := context.Background()

	seedJournal(t, r.DB, 1, "Acta", "2024-01-01 00:00:00", nil)

	ok, err := r.Delete(ctx, 1)
	if err != nil || !ok {
		t.Fatalf("Delete: ok=%v err=%v", ok, err)
	}
	if j, _ := r.GetByID(ctx, 1); j != nil {
		t.Fatalf("journal still present after delete: %+v", j)
	}
}
