package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-movie-keeper/internal/catalog"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// scrollViewport is the number of rows drawn around the cursor.
const scrollViewport = 10

// scrollModel is the endless browsing view. It shows the movies matching the
// list's search, genre and sort, loading catalog.ScrollChunk more rows each
// time the cursor reaches the bottom and starting over after the last match.
type scrollModel struct {
	matched []models.Movie
	query   catalog.Query
	loaded  int
	idx     int
}

func newScrollModel(movies []models.Movie, query catalog.Query) scrollModel {
	var m scrollModel
	m.setMovies(movies, query)
	return m
}

// setMovies re-derives the rows and keeps the cursor where it was if it is
// still in range.
func (m *scrollModel) setMovies(movies []models.Movie, query catalog.Query) {
	m.query = query
	m.matched = catalog.Matching(movies, query)
	if len(m.matched) == 0 {
		m.loaded, m.idx = 0, 0
		return
	}
	m.loaded = max(m.loaded, min(catalog.ScrollChunk, len(m.matched)))
	m.idx = max(0, min(m.idx, m.loaded-1))
}

func (m scrollModel) row(i int) models.Movie {
	return m.matched[i%len(m.matched)]
}

func (m scrollModel) current() (models.Movie, bool) {
	if m.loaded == 0 {
		return models.Movie{}, false
	}
	return m.row(m.idx), true
}

func (m *scrollModel) moveCursor(delta int) {
	if m.loaded == 0 {
		return
	}
	m.idx = max(0, min(m.idx+delta, m.loaded-1))
	m.loaded = catalog.Grow(m.loaded, m.idx, len(m.matched))
}

func (m scrollModel) View(state models.ConnectivityState, pending int, status string) string {
	var header strings.Builder
	header.WriteString(titleStyle.Render("MOVIE KEEPER - Infinite Scroll"))
	header.WriteString("  ")
	header.WriteString(renderBadge(state))
	header.WriteString(fmt.Sprintf("  pending: %d", pending))

	var b strings.Builder
	genre := m.query.Genre
	if genre == "" || genre == catalog.AllGenres {
		genre = "All Genres"
	}
	fmt.Fprintf(&b, "Search: %s   Genre: %s   Sort: %s %s\n", valueOrDash(m.query.Search), genre, m.query.SortBy, m.query.Order)
	fmt.Fprintf(&b, "Showing %d movies out of %d (scrolling infinitely)\n\n", m.loaded, len(m.matched))

	if m.loaded == 0 {
		b.WriteString("No movies found.\n")
	} else {
		top := max(0, m.idx-scrollViewport+1)
		for i := top; i < min(top+scrollViewport, m.loaded); i++ {
			b.WriteString(renderListRow(m.row(i), i == m.idx))
			b.WriteString("\n")
		}
	}

	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
	}

	return renderPage(header.String(), b.String(), "↑/↓ scroll  enter open  e edit  d delete  esc/i back to pages  q quit")
}
