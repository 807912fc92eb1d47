package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-movie-keeper/internal/catalog"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type listModel struct {
	movies []models.Movie
	query  catalog.Query
	page   catalog.Page
	idx    int

	search    textinput.Model
	searching bool

	loading bool
	syncing bool
	spinner spinner.Model
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "Search movies by title..."
	search.Width = 40

	m := listModel{
		query:   catalog.DefaultQuery(),
		search:  search,
		loading: true,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.refresh()
	return m
}

// setMovies replaces the catalog and keeps the current view where possible.
// A genre filter whose last movie disappeared falls back to all genres.
func (m *listModel) setMovies(movies []models.Movie) {
	m.movies = movies
	if !slices.Contains(catalog.Genres(movies), m.query.Genre) {
		m.query.Genre = catalog.AllGenres
	}
	m.refresh()
}

// refresh recomputes the visible page and clamps the cursor.
func (m *listModel) refresh() {
	m.page = catalog.Apply(m.movies, m.query)
	m.query.Page = m.page.Page
	m.idx = max(0, min(m.idx, len(m.page.Movies)-1))
}

// resetView applies a changed filter or ordering from the first page.
func (m *listModel) resetView() {
	m.query.Page = 1
	m.idx = 0
	m.refresh()
}

func (m listModel) current() (models.Movie, bool) {
	if m.idx < 0 || m.idx >= len(m.page.Movies) {
		return models.Movie{}, false
	}
	return m.page.Movies[m.idx], true
}

func (m *listModel) moveCursor(delta int) {
	m.idx = max(0, min(m.idx+delta, len(m.page.Movies)-1))
}

func (m *listModel) turnPage(delta int) {
	m.query.Page = catalog.ClampPage(m.query.Page+delta, m.page.TotalPages)
	m.idx = 0
	m.refresh()
}

func (m *listModel) nextGenre() {
	m.query.Genre = catalog.Next(catalog.Genres(m.movies), m.query.Genre)
	m.resetView()
}

func (m *listModel) nextSortField() {
	m.query.SortBy = catalog.Next(catalog.SortFields, m.query.SortBy)
	m.resetView()
}

func (m *listModel) toggleOrder() {
	if m.query.Order == catalog.Descending {
		m.query.Order = catalog.Ascending
	} else {
		m.query.Order = catalog.Descending
	}
	m.resetView()
}

func (m *listModel) nextPageSize() {
	m.query.PerPage = catalog.Next(catalog.PageSizes, m.query.PerPage)
	m.resetView()
}

func (m *listModel) setSearch(value string) {
	m.query.Search = value
	m.resetView()
}

func (m listModel) View(state models.ConnectivityState, pending int, status string) string {
	var header strings.Builder
	header.WriteString(titleStyle.Render("MOVIE KEEPER"))
	header.WriteString("  ")
	header.WriteString(renderBadge(state))
	header.WriteString(fmt.Sprintf("  pending: %d", pending))
	if m.syncing {
		header.WriteString("  ")
		header.WriteString(m.spinner.View())
		header.WriteString(" syncing")
	}

	var b strings.Builder
	if m.searching {
		b.WriteString("Search: ")
		b.WriteString(m.search.View())
	} else {
		b.WriteString("Search: ")
		b.WriteString(valueOrDash(m.query.Search))
	}
	genre := m.query.Genre
	if genre == catalog.AllGenres {
		genre = "All Genres"
	}
	b.WriteString(fmt.Sprintf("   Genre: %s   Sort: %s %s\n\n", genre, m.query.SortBy, m.query.Order))

	switch {
	case m.loading && len(m.movies) == 0:
		b.WriteString("Loading movies...\n")
	case len(m.page.Movies) == 0:
		b.WriteString("No movies found.\n")
	default:
		for i, movie := range m.page.Movies {
			b.WriteString(renderListRow(movie, i == m.idx))
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nPage %d of %d   %d movies   %d per page", m.page.Page, m.page.TotalPages, m.page.Matched, m.query.PerPage))
	if status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(status))
	}

	hotKeys := "↑/↓ move  ←/→ page  enter open  n new  / search  g genre  o sort  r order  p per page  i infinite  s sync  v about  q quit"
	if m.searching {
		hotKeys = "type to search  enter/esc done"
	}

	return renderPage(header.String(), b.String(), hotKeys)
}

func renderListRow(movie models.Movie, selected bool) string {
	cursor := "  "
	if selected {
		cursor = cursorStyle.Render("> ")
	}

	row := fmt.Sprintf("%-34s %4d  %-14s %2d/10", fitText(movie.Title, 34), movie.Year, fitText(movie.Genre, 14), movie.Rating)
	if movie.Unconfirmed {
		row += " " + unsyncedStyle.Render("(not synced)")
	}
	return cursor + row
}
