package tui

import (
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/models"
)

const queuedDeleteNotice = "The server is unreachable: the deletion will be sent on the next sync."

// confirmModel asks before a movie is deleted.
type confirmModel struct {
	movie   models.Movie
	offline bool
}

func newDeleteConfirm(movie models.Movie, state models.ConnectivityState) confirmModel {
	return confirmModel{movie: movie, offline: !state.Reachable()}
}

func (m confirmModel) target() models.MovieID {
	return m.movie.ID
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Delete %q?\n\n", m.movie.Title)
	if m.offline {
		content += helpStyle.Render(queuedDeleteNotice) + "\n\n"
	}
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
