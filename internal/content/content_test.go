package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SectionsAreValid(t *testing.T) {
	site := Default()
	require.NoError(t, site.Validate())
	require.NotEmpty(t, site.Sections)
	assert.Equal(t, "hero-section", site.Sections[0].ID)
	assert.False(t, site.Sections[0].RevealOnce(), "hero pulses while visible")
	assert.Contains(t, site.Terms, "## 1. Acceptance of Terms")

	about, ok := site.Section("about-us-section")
	require.True(t, ok)
	assert.Equal(t, 0.3, about.Threshold)
	assert.True(t, about.RevealOnce())
	assert.Equal(t, "Driving Innovation with a Purpose", about.FullTitle())
}

func TestDefault_EveryCardGlyphIsRegistered(t *testing.T) {
	for _, sec := range Default().Sections {
		for _, c := range sec.Cards {
			_, ok := glyphs[c.Glyph]
			assert.True(t, ok, "%s/%s uses unknown glyph %q", sec.ID, c.Title, c.Glyph)
		}
	}
}

func TestLookupGlyph(t *testing.T) {
	g := LookupGlyph("mail")
	assert.Equal(t, symbol("✉"), g)
	assert.Equal(t, g, LookupGlyph("MAIL"))

	assert.Equal(t, monogram('Z'), LookupGlyph("zebra"))
	assert.Equal(t, monogram('•'), LookupGlyph(""))
	assert.Len(t, GlyphNames(), len(glyphs))
}

func TestGlyph_RenderSizes(t *testing.T) {
	g := LookupGlyph("check")
	small := g.Render(1, lipgloss.Color("42"))
	assert.Contains(t, small, "✔")
	assert.Equal(t, 1, lipgloss.Height(small))

	big := g.Render(3, lipgloss.Color("42"))
	assert.Contains(t, big, "✔")
	assert.Equal(t, 3, lipgloss.Height(big), "framed badge has a border row above and below")
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	yml := `
name: Acme
tagline: "Acme: we build things."
sections:
  - id: hero-section
    once: false
    pulse: true
  - id: pricing
    nav: Pricing
    title: ["Simple", "Pricing"]
    threshold: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", site.Name)
	require.Len(t, site.Sections, 2)
	assert.Equal(t, "Simple Pricing", site.Sections[1].FullTitle())
	// Untouched keys keep defaults.
	assert.Equal(t, "BHARAT INFOTECH SOLUTIONS", site.Contact.Company)
	assert.True(t, strings.HasPrefix(site.TermsTitle, "Terms and Conditions"))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read content file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("sections: [ {id: a, threshold: 2}, {id: a} ]"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "threshold 2 outside")
	assert.Contains(t, err.Error(), "duplicate id")

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("sections: {"), 0o644))
	_, err = Load(garbled)
	assert.ErrorContains(t, err, "parse content file")
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Name, site.Name)
}
