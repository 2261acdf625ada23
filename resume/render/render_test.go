package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-tailor/resume/model"
	"resume-tailor/resume/template"
)

func sampleDocument() model.Document {
	doc := model.Starter()
	doc.SetPersonal(model.FieldFullName, "Ada Lovelace")
	doc.SetPersonal(model.FieldTitle, "Analyst")
	doc.SetPersonal(model.FieldEmail, "ada@example.com")
	doc.SetPersonal(model.FieldSummary, "Wrote the first published algorithm intended for a machine.")
	doc.SetExperienceField(0, "company", "Analytical Engine Co")
	doc.SetExperienceField(0, "position", "Programmer")
	doc.SetExperienceField(0, "startDate", "1842")
	doc.SetExperienceCurrent(0, true)
	doc.SetEducationField(0, "institution", "Home schooled")
	doc.AddSkill("Mathematics")
	doc.AddAchievement("Note G")
	return doc
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewPDFRenderer(PDFOptions{})
	for _, style := range template.All() {
		t.Run(string(style.ID), func(t *testing.T) {
			art, err := r.Render(context.Background(), sampleDocument(), style)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(art.PDF, []byte("%PDF-")))
			assert.Equal(t, 1, art.Pages)

			info, err := Inspect(art.PDF)
			require.NoError(t, err)
			assert.Equal(t, art.Pages, info.Pages)
		})
	}
}

func TestRenderCreativeFallsBackToHelvetica(t *testing.T) {
	r := NewPDFRenderer(PDFOptions{FontDir: filepath.Join(t.TempDir(), "missing")})
	art, err := r.Render(context.Background(), sampleDocument(), template.Lookup(template.Creative))
	require.NoError(t, err)
	assert.Equal(t, "helvetica", art.Family)
}

func TestRenderIsByteIdentical(t *testing.T) {
	r := NewPDFRenderer(PDFOptions{})
	style := template.Lookup(template.Corporate)

	first, err := r.Render(context.Background(), sampleDocument(), style)
	require.NoError(t, err)
	// PDF dates have one-second resolution.
	time.Sleep(1100 * time.Millisecond)
	second, err := r.Render(context.Background(), sampleDocument(), style)
	require.NoError(t, err)

	assert.Equal(t, first.PDF, second.PDF)
}

func TestRenderManyAchievementsSpansPages(t *testing.T) {
	doc := model.Document{}
	for i := 0; i < 60; i++ {
		doc.AddAchievement(fmt.Sprintf("Achievement number %d", i))
	}
	r := NewPDFRenderer(PDFOptions{})
	art, err := r.Render(context.Background(), doc, template.Lookup(template.Modern))
	require.NoError(t, err)
	require.Greater(t, art.Pages, 1)

	info, err := Inspect(art.PDF)
	require.NoError(t, err)
	assert.Equal(t, art.Pages, info.Pages)
}

func TestRenderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewPDFRenderer(PDFOptions{})
	_, err := r.Render(ctx, sampleDocument(), template.Lookup(template.Modern))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFontDirRequiresRegularVariant(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "comic-B.ttf"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	r := NewPDFRenderer(PDFOptions{FontDir: dir})
	assert.Equal(t, []string{"courier", "helvetica", "times"}, r.Families())
}

func TestFontDirRegistersFamily(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Comic.ttf"), []byte("x"), 0o600))

	r := NewPDFRenderer(PDFOptions{FontDir: dir})
	assert.Contains(t, r.Families(), "comic")
	assert.Equal(t, "Comic.ttf", r.extra["comic"][""])
	assert.Equal(t, "Comic.ttf", r.extra["comic"]["B"])
}

func TestInspectRejectsGarbage(t *testing.T) {
	_, err := Inspect([]byte("not a pdf"))
	assert.Error(t, err)
}
