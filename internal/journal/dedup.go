package journal

import (
	"strings"
	"time"

	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

// Deduplicate collapses rows sharing a normalized (lower-cased, trimmed)
// title down to a single winner per title. Rows with a blank title never
// compete; they pass through untouched, after the winners, in their original
// order. Winners appear in the order their titles were first seen.
//
// Losing rows are only filtered from this result, never deleted; they remain
// in storage and can win a later read if their content catches up.
func Deduplicate(rows []models.Journal) []models.Journal {
	winners := make(map[string]models.Journal, len(rows))
	var order []string
	var untitled []models.Journal

	for _, row := range rows {
		key := strings.ToLower(strings.TrimSpace(row.Title))
		if key == "" {
			untitled = append(untitled, row)
			continue
		}

		incumbent, seen := winners[key]
		if !seen {
			winners[key] = row
			order = append(order, key)
			continue
		}
		if replaces(row, incumbent) {
			winners[key] = row
		}
	}

	out := make([]models.Journal, 0, len(order)+len(untitled))
	for _, key := range order {
		out = append(out, winners[key])
	}
	return append(out, untitled...)
}

// replaces reports whether candidate beats incumbent: strictly higher
// completeness, or equal completeness and strictly later activity.
func replaces(candidate, incumbent models.Journal) bool {
	cs, is := Completeness(candidate), Completeness(incumbent)
	if cs != is {
		return cs > is
	}
	return lastTouched(candidate).After(lastTouched(incumbent))
}

// Completeness scores how much real editorial content a row carries.
// Rich content (aims & scope, guidelines) outweighs bare metadata, and
// having published articles counts like having real descriptive text.
func Completeness(j models.Journal) int {
	score := 0
	if present(j.Description) {
		score += 2
	}
	if present(j.AimsScope) {
		score += 3
	}
	if present(j.Guidelines) {
		score += 3
	}
	if present(j.EditorialBoard) {
		score += 2
	}
	if present(j.HomePageContent) {
		score += 2
	}
	if present(j.Category) {
		score++
	}
	if present(j.SubjectArea) {
		score++
	}
	if present(j.ISSN) {
		score++
	}
	if j.CoverImage != nil {
		score++
	}
	if j.BannerImage != nil {
		score++
	}
	if j.ArticleCount > 0 {
		score += 2
	}
	return score
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func lastTouched(j models.Journal) time.Time {
	if !j.UpdatedAt.IsZero() {
		return j.UpdatedAt
	}
	return j.CreatedAt
}
