package components

import (
	"github.com/cintel/penguins/internal/tui/styles"
)

// Card frames body under a title. width is the outer width including the
// border, 0 for natural width.
func Card(title, body string, width int) string {
	style := styles.CardStyle
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(styles.CardTitleStyle.Render(title) + "\n" + body)
}
