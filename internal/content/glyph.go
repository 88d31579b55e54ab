package content

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Glyph renders a small icon at a given size and color.
// Size 1 is a single cell; larger sizes draw a framed badge.
type Glyph interface {
	Render(size int, color lipgloss.Color) string
}

// symbol is a glyph drawn from a single character.
type symbol string

func (s symbol) Render(size int, color lipgloss.Color) string {
	return badge(string(s), size, color)
}

// monogram is the fallback glyph: the uppercased first letter of a name.
type monogram rune

func (m monogram) Render(size int, color lipgloss.Color) string {
	return badge(string(m), size, color)
}

func badge(face string, size int, color lipgloss.Color) string {
	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	if size <= 1 {
		return style.Render(face)
	}
	pad := (size - 1) / 2
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, pad).
		Render(style.Render(face))
}

// glyphs is the fixed icon table, resolved once when content is built.
var glyphs = map[string]Glyph{
	"bulb":     symbol("💡"),
	"sparkles": symbol("✨"),
	"cube":     symbol("◈"),
	"laptop":   symbol("💻"),
	"mobile":   symbol("📱"),
	"bug":      symbol("🐞"),
	"cloud":    symbol("☁"),
	"users":    symbol("👥"),
	"chat":     symbol("💬"),
	"document": symbol("📄"),
	"cog":      symbol("⚙"),
	"check":    symbol("✔"),
	"globe":    symbol("🌐"),
	"support":  symbol("🛟"),
	"chart":    symbol("📊"),
	"mail":     symbol("✉"),
}

// LookupGlyph returns the glyph registered under name, or a monogram of
// name when there is none.
func LookupGlyph(name string) Glyph {
	if g, ok := glyphs[strings.ToLower(name)]; ok {
		return g
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		r = '•'
	}
	return monogram(unicode.ToUpper(r))
}

// GlyphNames lists the registered glyph names.
func GlyphNames() []string {
	names := make([]string, 0, len(glyphs))
	for n := range glyphs {
		names = append(names, n)
	}
	return names
}
