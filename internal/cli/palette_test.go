package cli

import (
	"strings"
	"testing"

	"github.com/nslux/shopctl/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAnsiFromHex(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"valid hex", "#e91e63", "\033[38;2;233;30;99m"},
		{"white", "#ffffff", "\033[38;2;255;255;255m"},
		{"gradient token is not renderable", "linear-gradient(135deg, #ffeef8 0%)", ""},
		{"empty", "", ""},
		{"missing hash", "e91e63", ""},
		{"short form unsupported", "#fff", ""},
		{"garbage digits", "#zzzzzz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ansiFromHex(tt.token))
		})
	}
}

func TestApplyTheme(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	ApplyTheme(model.ThemeConfig{
		Primary:   "#e91e63",
		Accent:    "#ec407a",
		TextColor: "#4a4a4a",
		ThemeName: "Pink Theme",
	})

	t.Run("palette slots hold the applied tokens", func(t *testing.T) {
		p := CurrentPalette()
		assert.Equal(t, "#e91e63", p.Primary)
		assert.Equal(t, "Pink Theme", p.ThemeName)
	})

	t.Run("primary wraps text in the token's color", func(t *testing.T) {
		out := Primary("sale")
		assert.True(t, strings.HasPrefix(out, "\033[38;2;233;30;99m"))
		assert.True(t, strings.HasSuffix(out, colorReset))
		assert.Contains(t, out, "sale")
	})

	t.Run("reapplying replaces every slot", func(t *testing.T) {
		ApplyTheme(model.ThemeConfig{Primary: "#000000", ThemeName: "Dark Theme"})
		p := CurrentPalette()
		assert.Equal(t, "Dark Theme", p.ThemeName)
		assert.Empty(t, p.Accent, "old accent must not leak through")
	})
}

func TestColorDisabled(t *testing.T) {
	SetColorEnabled(false)
	ApplyTheme(model.ThemeConfig{Primary: "#e91e63"})

	assert.Equal(t, "plain", Primary("plain"))
	assert.Equal(t, "plain", Green("plain"))
	assert.Equal(t, "#e91e63", Swatch("#e91e63"))
}

func TestTable(t *testing.T) {
	SetColorEnabled(false)

	t.Run("columns align and pad", func(t *testing.T) {
		var b strings.Builder
		table := NewTable()
		table.AddRow("p1", "Perfume", "120.00 DA")
		table.AddRow("p2-long", "Scarf", "45.50 DA")
		table.Render(&b)

		lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
		assert.Equal(t, "p1       Perfume  120.00 DA", lines[0])
		assert.Equal(t, "p2-long  Scarf    45.50 DA", lines[1])
	})

	t.Run("right-aligned price column", func(t *testing.T) {
		var b strings.Builder
		table := NewTable()
		table.AlignRight(1)
		table.AddRow("Perfume", "1,234.50 DA")
		table.AddRow("Scarf", "45.50 DA")
		table.Render(&b)

		lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
		assert.Equal(t, "Perfume  1,234.50 DA", lines[0])
		assert.Equal(t, "Scarf       45.50 DA", lines[1])
	})

	t.Run("long names truncate with ellipsis", func(t *testing.T) {
		var b strings.Builder
		table := NewTable()
		table.SetMaxWidth(0, 10)
		table.AddRow("An Extremely Long Product Name", "x")
		table.Render(&b)

		assert.Contains(t, b.String(), "An Extr...")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly-10", Truncate("exactly-10", 10))
	assert.Equal(t, "1234567...", Truncate("12345678901", 10))
	assert.Equal(t, "", Truncate("anything", 0))
}
