package assets

import (
	"testing"

	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

const (
	cdnBase     = "https://cdn.example.com"
	storageBase = "https://bucket.s3.amazonaws.com"
)

func TestRewriteStorageToCDN(t *testing.T) {
	rw := NewRewriter(cdnBase, storageBase)

	got := rw.RewriteURL(storageBase + "/journals/a b.png")
	want := cdnBase + "/journals/a%20b.png"
	if got != want {
		t.Fatalf("RewriteURL() = %q, want %q", got, want)
	}
}

func TestRewriteRoundTrip(t *testing.T) {
	forward := NewRewriter(cdnBase, storageBase)
	original := storageBase + "/journals/a b.png"

	cdnURL := forward.RewriteURL(original)

	// CDN disabled again; rows written under the old CDN must stay servable.
	reverse := NewRewriter("", storageBase)
	reverse.LegacyCDN = cdnBase

	if got := reverse.RewriteURL(cdnURL); got != original {
		t.Fatalf("round trip = %q, want %q", got, original)
	}
}

func TestRewriteExternalURLPassthrough(t *testing.T) {
	external := "https://example.org/x.png"

	withCDN := NewRewriter(cdnBase, storageBase)
	if got := withCDN.RewriteURL(external); got != external {
		t.Fatalf("CDN direction changed external URL: %q", got)
	}

	withoutCDN := NewRewriter("", storageBase)
	withoutCDN.LegacyCDN = cdnBase
	if got := withoutCDN.RewriteURL(external); got != external {
		t.Fatalf("storage direction changed external URL: %q", got)
	}
}

func TestRewriteCDNURLUntouchedWhenCDNActive(t *testing.T) {
	rw := NewRewriter(cdnBase, storageBase)
	already := cdnBase + "/journals/x.png"
	if got := rw.RewriteURL(already); got != already {
		t.Fatalf("already-CDN URL changed: %q", got)
	}
}

func TestRewriteJournalTouchesOnlyAssetFields(t *testing.T) {
	rw := NewRewriter(cdnBase, storageBase)

	stored := storageBase + "/journals/cover.png"
	desc := storageBase + "/journals/cover.png" // same text in a content field
	j := models.Journal{
		Title:       "Acta",
		Description: &desc,
		CoverImage:  &stored,
		BannerImage: nil,
	}

	rw.RewriteJournal(&j)

	if *j.CoverImage != cdnBase+"/journals/cover.png" {
		t.Fatalf("cover not rewritten: %q", *j.CoverImage)
	}
	if *j.Description != desc {
		t.Fatalf("non-asset field rewritten: %q", *j.Description)
	}
	if j.BannerImage != nil {
		t.Fatalf("nil field materialized: %v", *j.BannerImage)
	}
}

func TestRewriteMultiSegmentEscaping(t *testing.T) {
	rw := NewRewriter(cdnBase, storageBase)

	got := rw.RewriteURL(storageBase + "/flyers/2024 issues/vol 1.pdf")
	want := cdnBase + "/flyers/2024%20issues/vol%201.pdf"
	if got != want {
		t.Fatalf("RewriteURL() = %q, want %q", got, want)
	}
}
