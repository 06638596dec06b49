package journal

import (
	"testing"
	"time"

	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

func strPtr(s string) *string { return &s }

func TestDeduplicateCaseAndWhitespaceInsensitive(t *testing.T) {
	rows := []models.Journal{
		{ID: 1, Title: "Journal Of X"},
		{ID: 2, Title: "  journal of x "},
	}

	out := Deduplicate(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
}

func TestDeduplicateCompletenessWins(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	// richer content wins even against a newer row
	rows := []models.Journal{
		{ID: 1, Title: "Acta", UpdatedAt: newer},
		{ID: 2, Title: "acta", UpdatedAt: older, AimsScope: strPtr("Scope text")},
	}

	out := Deduplicate(rows)
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if out[0].ID != 2 {
		t.Fatalf("expected row 2 (aims & scope scores 3 > 0), got %d", out[0].ID)
	}
}

func TestDeduplicateRecencyTiebreak(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	rows := []models.Journal{
		{ID: 1, Title: "Acta", Description: strPtr("same score"), UpdatedAt: older},
		{ID: 2, Title: "acta", Description: strPtr("same score"), UpdatedAt: newer},
	}

	out := Deduplicate(rows)
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("expected later-updated row 2 to win, got %+v", out)
	}

	// order of arrival must not matter
	out = Deduplicate([]models.Journal{rows[1], rows[0]})
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("expected row 2 to win regardless of order, got %+v", out)
	}
}

func TestDeduplicateRecencyFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []models.Journal{
		{ID: 1, Title: "Acta", CreatedAt: created},
		{ID: 2, Title: "acta", CreatedAt: created.Add(time.Minute)},
	}

	out := Deduplicate(rows)
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("expected created_at fallback to pick row 2, got %+v", out)
	}
}

func TestDeduplicateBlankTitlesPassThrough(t *testing.T) {
	rows := []models.Journal{
		{ID: 1, Title: ""},
		{ID: 2, Title: "   "},
		{ID: 3, Title: "Real Journal"},
	}

	out := Deduplicate(rows)
	if len(out) != 3 {
		t.Fatalf("expected blank-titled rows to survive independently, got %d rows", len(out))
	}
	// titled winners come first, untitled rows after in original order
	if out[0].ID != 3 || out[1].ID != 1 || out[2].ID != 2 {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	rows := []models.Journal{
		{ID: 1, Title: "Alpha", Description: strPtr("x")},
		{ID: 2, Title: "alpha", AimsScope: strPtr("y")},
		{ID: 3, Title: "Beta"},
		{ID: 4, Title: ""},
	}

	once := Deduplicate(rows)
	twice := Deduplicate(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed row count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("second pass changed row %d: %d vs %d", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestDeduplicateWinnerOrderIsFirstEncounter(t *testing.T) {
	rows := []models.Journal{
		{ID: 1, Title: "Beta"},
		{ID: 2, Title: "Alpha", AimsScope: strPtr("rich")},
		{ID: 3, Title: "beta", Guidelines: strPtr("rich")}, // replaces ID 1 in place
	}

	out := Deduplicate(rows)
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].ID != 3 || out[1].ID != 2 {
		t.Fatalf("expected winner to keep beta's first-encounter slot: %+v", out)
	}
}

func TestCompletenessScoring(t *testing.T) {
	blank := strPtr("   ")

	tests := []struct {
		name string
		j    models.Journal
		want int
	}{
		{"empty", models.Journal{}, 0},
		{"blank strings do not count", models.Journal{Description: blank, AimsScope: blank}, 0},
		{"description", models.Journal{Description: strPtr("d")}, 2},
		{"aims and guidelines", models.Journal{AimsScope: strPtr("a"), Guidelines: strPtr("g")}, 6},
		{"metadata singles", models.Journal{Category: strPtr("c"), SubjectArea: strPtr("s"), ISSN: strPtr("1234-5678")}, 3},
		{"images count even when blank strings", models.Journal{CoverImage: strPtr(""), BannerImage: strPtr("")}, 2},
		{"articles", models.Journal{ArticleCount: 3}, 2},
		{
			"everything",
			models.Journal{
				Description:     strPtr("d"),
				AimsScope:       strPtr("a"),
				Guidelines:      strPtr("g"),
				EditorialBoard:  strPtr("e"),
				HomePageContent: strPtr("h"),
				Category:        strPtr("c"),
				SubjectArea:     strPtr("s"),
				ISSN:            strPtr("i"),
				CoverImage:      strPtr("cover.png"),
				BannerImage:     strPtr("banner.png"),
				ArticleCount:    1,
			},
			19,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Completeness(tt.j); got != tt.want {
				t.Fatalf("Completeness() = %d, want %d", got, tt.want)
			}
		})
	}
}
