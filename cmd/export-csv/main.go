package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kamal464/wissen-publication-group-sub000/pkg/database"
)

func main() {
	var (
		journalsOut = flag.String("journals", "data/journals.csv", "output CSV path for journals")
		articlesOut = flag.String("articles", "data/articles.csv", "output CSV path for articles")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportJournals(ctx, db, *journalsOut); err != nil {
		log.Fatalf("export journals failed: %v", err)
	}
	if err := exportArticles(ctx, db, *articlesOut); err != nil {
		log.Fatalf("export articles failed: %v", err)
	}

	log.Printf("exported journals to %s and articles to %s", *journalsOut, *articlesOut)
}

func exportJournals(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "title", "shortcode", "issn", "category", "subject_area", "created_at", "updated_at"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, title, shortcode, issn, category, subject_area, created_at, updated_at
        FROM journals
        ORDER BY updated_at DESC, id DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          int64
			title       string
			shortcode   sql.NullString
			issn        sql.NullString
			category    sql.NullString
			subjectArea sql.NullString
			createdAt   time.Time
			updatedAt   time.Time
		)

		if err := rows.Scan(&id, &title, &shortcode, &issn, &category, &subjectArea, &createdAt, &updatedAt); err != nil {
			return err
		}

		if err := w.Write([]string{
			strconv.FormatInt(id, 10),
			title,
			shortcode.String,
			issn.String,
			category.String,
			subjectArea.String,
			createdAt.Format(time.RFC3339),
			updatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportArticles(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "journal_id", "title", "authors", "pdf_url", "published_at", "created_at"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT id, journal_id, title, authors, pdf_url, published_at, created_at
        FROM articles
        ORDER BY journal_id, published_at DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          int64
			journalID   int64
			title       string
			authors     sql.NullString
			pdfURL      sql.NullString
			publishedAt sql.NullTime
			createdAt   time.Time
		)

		if err := rows.Scan(&id, &journalID, &title, &authors, &pdfURL, &publishedAt, &createdAt); err != nil {
			return err
		}

		published := ""
		if publishedAt.Valid {
			published = publishedAt.Time.Format(time.RFC3339)
		}

		if err := w.Write([]string{
			strconv.FormatInt(id, 10),
			strconv.FormatInt(journalID, 10),
			title,
			authors.String,
			pdfURL.String,
			published,
			createdAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
