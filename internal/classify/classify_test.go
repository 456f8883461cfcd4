package classify

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"credtrack/internal/apperror"
)

func fixedClassifier(mode Mode) *Classifier {
	c := New(mode)
	c.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return c
}

func TestClassify_StrictRejectsNonPDF(t *testing.T) {
	c := fixedClassifier(ModeStrict)

	plan := c.Classify("cert", "image/png", "x.png")

	assert.False(t, plan.Accept)
	assert.Equal(t, apperror.CodeUnsupportedMedia, plan.Reason)
}

func TestClassify_StrictAcceptsPDF(t *testing.T) {
	c := fixedClassifier(ModeStrict)

	plan := c.Classify("cert", "application/pdf", "license.pdf")

	assert.True(t, plan.Accept)
	assert.Equal(t, KindViewable, plan.ResourceKind)
	assert.Equal(t, "pdf", plan.Format)
}

func TestClassify_PermissiveTagsByKind(t *testing.T) {
	c := fixedClassifier(ModePermissive)

	png := c.Classify("cert", "image/png", "x.png")
	assert.True(t, png.Accept)
	assert.Equal(t, KindRawBinary, png.ResourceKind)
	assert.Empty(t, png.Format)

	pdf := c.Classify("cert", "application/pdf", "x.pdf")
	assert.True(t, pdf.Accept)
	assert.Equal(t, KindViewable, pdf.ResourceKind)
	assert.Equal(t, "pdf", pdf.Format)
}

func TestClassify_CanonicalName(t *testing.T) {
	c := fixedClassifier(ModeStrict)

	tests := []struct {
		filename string
		want     string
	}{
		{"Driver License 2024.pdf", "driver_license_2024_1700000000000"},
		{"césar-cert!.pdf", "csarcert_1700000000000"},
		{"already_clean.pdf", "already_clean_1700000000000"},
		{"dir/nested name.pdf", "nested_name_1700000000000"},
	}
	for _, tt := range tests {
		plan := c.Classify("cert", "application/pdf", tt.filename)
		assert.Equal(t, tt.want, plan.CanonicalName, "filename %q", tt.filename)
	}
}

func TestClassify_CanonicalNameUnique(t *testing.T) {
	c := New(ModeStrict)

	a := c.Classify("cert", "application/pdf", "same.pdf")
	time.Sleep(2 * time.Millisecond)
	b := c.Classify("cert", "application/pdf", "same.pdf")

	assert.NotEqual(t, a.CanonicalName, b.CanonicalName)
	assert.Regexp(t, regexp.MustCompile(`^same_\d+$`), a.CanonicalName)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModePermissive, ParseMode("permissive"))
	assert.Equal(t, ModeStrict, ParseMode("strict"))
	assert.Equal(t, ModeStrict, ParseMode(""))
	assert.Equal(t, ModeStrict, ParseMode("anything-else"))
}
