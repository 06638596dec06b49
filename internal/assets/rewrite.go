package assets

import (
	"net/url"
	"strings"

	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

// LegacyCDNBase is the CDN domain this deployment used before the CDN became
// configurable. Rows written back then may still carry it, so the reverse
// rewrite recognises it even when no CDN is configured.
const LegacyCDNBase = "https://cdn.wissenpub.com"

// Rewriter swaps journal asset URLs between the storage domain and a CDN
// domain at read time. Exactly one direction runs per call: storage→CDN when
// CDNBase is set, legacy-CDN→storage when it is not. URLs matching neither
// prefix are treated as external and passed through unchanged.
type Rewriter struct {
	CDNBase     string
	StorageBase string
	// LegacyCDN overrides LegacyCDNBase; zero means the default.
	LegacyCDN string
}

func NewRewriter(cdnBase, storageBase string) Rewriter {
	return Rewriter{
		CDNBase:     strings.TrimRight(cdnBase, "/"),
		StorageBase: strings.TrimRight(storageBase, "/"),
	}
}

// RewriteJournal rewrites the six asset fields in place. Non-asset fields are
// never touched.
func (rw Rewriter) RewriteJournal(j *models.Journal) {
	if j == nil {
		return
	}
	j.BannerImage = rw.rewriteField(j.BannerImage)
	j.CoverImage = rw.rewriteField(j.CoverImage)
	j.FlyerImage = rw.rewriteField(j.FlyerImage)
	j.FlyerPDF = rw.rewriteField(j.FlyerPDF)
	j.GoogleIndexingImage = rw.rewriteField(j.GoogleIndexingImage)
	j.EditorImage = rw.rewriteField(j.EditorImage)
}

func (rw Rewriter) rewriteField(v *string) *string {
	if v == nil {
		return nil
	}
	out := rw.RewriteURL(*v)
	return &out
}

// RewriteURL rewrites a single URL, returning it unchanged when it does not
// start with the expected prefix for the active direction.
func (rw Rewriter) RewriteURL(u string) string {
	if rw.CDNBase != "" {
		rest, ok := strings.CutPrefix(u, rw.StorageBase+"/")
		if !ok {
			return u
		}
		return rw.CDNBase + "/" + escapePath(rest)
	}

	legacy := rw.LegacyCDN
	if legacy == "" {
		legacy = LegacyCDNBase
	}
	rest, ok := strings.CutPrefix(u, strings.TrimRight(legacy, "/")+"/")
	if !ok {
		return u
	}
	return rw.StorageBase + "/" + unescapePath(rest)
}

// escapePath percent-encodes each path segment independently, keeping the
// separators intact.
func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// unescapePath undoes escapePath so the storage-form URL matches what was
// originally stored. Segments that fail to decode are kept as-is.
func unescapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		if dec, err := url.PathUnescape(s); err == nil {
			segs[i] = dec
		}
	}
	return strings.Join(segs, "/")
}
