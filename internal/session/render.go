package session

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordlehelper/internal/game"
)

// tiles renders a guess as colored letter tiles. The color profile follows
// the destination writer, so non-terminals get plain padded letters.
type tiles struct {
	hit, present, miss lipgloss.Style
}

func newTiles(w io.Writer) tiles {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().Bold(true).Padding(0, 1)
	return tiles{
		hit:     base.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#538d4e")),
		present: base.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#b59f3b")),
		miss:    base.Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#3a3a3c")),
	}
}

func (t tiles) render(guess string, marks []game.Mark) string {
	cells := make([]string, 0, len(guess))
	for i := 0; i < len(guess) && i < len(marks); i++ {
		letter := strings.ToUpper(guess[i : i+1])
		switch marks[i] {
		case game.MarkHit:
			cells = append(cells, t.hit.Render(letter))
		case game.MarkPresent:
			cells = append(cells, t.present.Render(letter))
		default:
			cells = append(cells, t.miss.Render(letter))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
