// Package classify decides how an uploaded artifact is stored: the canonical
// object name, the resource kind tag, and whether the declared media type is
// acceptable under the active policy. Classification is a pure function of its
// inputs plus a timestamp used only as a collision-avoidance suffix.
package classify

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"credtrack/internal/apperror"
)

// Mode selects the acceptance policy.
type Mode string

const (
	// ModeStrict accepts only application/pdf uploads.
	ModeStrict Mode = "strict"
	// ModePermissive accepts any media type and tags it by resource kind.
	ModePermissive Mode = "permissive"
)

// ParseMode maps a configuration string to a Mode, defaulting to strict for
// anything unrecognized so a typo never widens the accepted surface.
func ParseMode(s string) Mode {
	if Mode(s) == ModePermissive {
		return ModePermissive
	}
	return ModeStrict
}

// ResourceKind tags how a stored artifact should be treated.
type ResourceKind string

const (
	KindViewable  ResourceKind = "document-viewable"
	KindRawBinary ResourceKind = "raw-binary"
)

const mimePDF = "application/pdf"

// StoragePlan is the classification outcome.
// Format is the canonical storage format; it is forced to "pdf" only for
// viewable documents. When Accept is false, Reason carries the rejection code.
type StoragePlan struct {
	CanonicalName string
	ResourceKind  ResourceKind
	Format        string
	Accept        bool
	Reason        apperror.Code
}

// Classifier applies one policy mode. Safe for concurrent use.
type Classifier struct {
	mode Mode
	now  func() time.Time
}

func New(mode Mode) *Classifier {
	return &Classifier{mode: mode, now: time.Now}
}

// Mode reports which policy is active.
func (c *Classifier) Mode() Mode { return c.mode }

// Classify produces the storage plan for one artifact. No side effects.
func (c *Classifier) Classify(declaredType, mimeType, originalFilename string) StoragePlan {
	plan := StoragePlan{
		CanonicalName: c.canonicalName(originalFilename),
	}

	if c.mode == ModeStrict && mimeType != mimePDF {
		plan.Reason = apperror.CodeUnsupportedMedia
		return plan
	}

	plan.Accept = true
	if mimeType == mimePDF {
		plan.ResourceKind = KindViewable
		plan.Format = "pdf"
	} else {
		plan.ResourceKind = KindRawBinary
	}
	return plan
}

// canonicalName strips the extension, lowercases, collapses whitespace to
// underscores, removes everything outside [a-z0-9_], and appends a millisecond
// timestamp so repeated uploads of the same file never collide.
func (c *Classifier) canonicalName(originalFilename string) string {
	base := strings.TrimSuffix(filepath.Base(originalFilename), filepath.Ext(originalFilename))
	base = strings.ToLower(base)

	var b strings.Builder
	for _, r := range base {
		switch {
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}

	return fmt.Sprintf("%s_%d", b.String(), c.now().UnixMilli())
}
