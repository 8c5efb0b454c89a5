package styles

import (
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"

	"github.com/colonyops/tasks/internal/core/theme"
)

func hexPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Glamour returns a markdown style config matching t.
func Glamour(t theme.Theme) glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if t.Name == "light" {
		cfg = glamourstyles.LightStyleConfig
	}

	fg := hexPtr(t.Foreground)
	primary := hexPtr(t.Primary)
	secondary := hexPtr(t.Secondary)
	muted := hexPtr(t.Muted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = hexPtr(t.Surface)
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	noMargin := uint(0)
	cfg.Document.Margin = &noMargin

	return cfg
}
