package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-movie-keeper/models"
)

type detailModel struct {
	movie models.Movie
}

func (m detailModel) View(status string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Year:    %d\n", m.movie.Year)
	fmt.Fprintf(&b, "Genre:   %s\n", valueOrDash(m.movie.Genre))
	fmt.Fprintf(&b, "Rating:  %d/10\n", m.movie.Rating)
	fmt.Fprintf(&b, "Image:   %s\n", valueOrDash(m.movie.Image))
	fmt.Fprintf(&b, "\n%s\n", valueOrDash(m.movie.Review))

	if m.movie.Unconfirmed {
		b.WriteString("\n")
		b.WriteString(unsyncedStyle.Render("Saved locally, will sync when the server is reachable."))
	}
	if status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(status))
	}

	return renderPage(titleStyle.Render(m.movie.Title), b.String(), "esc back  e edit  d delete  c copy image URL")
}
