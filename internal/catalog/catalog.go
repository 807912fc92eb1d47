// Package catalog holds the list arithmetic of the movie browser: title
// search, genre filter, sorting and pagination over a snapshot.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// AllGenres disables the genre filter.
const AllGenres = "all"

type SortField string

const (
	SortByTitle  SortField = "title"
	SortByYear   SortField = "year"
	SortByRating SortField = "rating"
)

// SortFields lists the fields in the order the UI cycles through them.
var SortFields = []SortField{SortByTitle, SortByYear, SortByRating}

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// PageSizes are the selectable page sizes. The first one is the default.
var PageSizes = []int{5, 10, 20}

// ScrollChunk is how many rows the endless view loads at a time.
const ScrollChunk = 10

// Query describes one view of the catalog. Zero values select the defaults:
// no search, all genres, title ascending, first page of five.
type Query struct {
	Search  string
	Genre   string
	SortBy  SortField
	Order   SortOrder
	Page    int
	PerPage int
}

// DefaultQuery returns the view shown on start.
func DefaultQuery() Query {
	return Query{
		Genre:   AllGenres,
		SortBy:  SortByTitle,
		Order:   Ascending,
		Page:    1,
		PerPage: PageSizes[0],
	}
}

// Page is the result of applying a Query.
type Page struct {
	Movies []models.Movie
	// Page is the 1-based page actually shown after clamping.
	Page       int
	TotalPages int
	// Matched counts movies passing search and genre filter.
	Matched int
}

// Apply filters, sorts and paginates movies. The input is not modified.
func Apply(movies []models.Movie, q Query) Page {
	q = normalize(q)
	filtered := Matching(movies, q)

	totalPages := TotalPages(len(filtered), q.PerPage)
	page := ClampPage(q.Page, totalPages)

	start := min((page-1)*q.PerPage, len(filtered))
	end := min(start+q.PerPage, len(filtered))

	return Page{
		Movies:     filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		Matched:    len(filtered),
	}
}

// Matching filters and sorts movies by q, ignoring pagination. The input is
// not modified.
func Matching(movies []models.Movie, q Query) []models.Movie {
	q = normalize(q)

	filtered := Filter(movies, q.Search, q.Genre)
	Sort(filtered, q.SortBy, q.Order)
	return filtered
}

// Grow returns the number of rows an endless view over matched movies shows
// with its cursor at row cursor. The first chunk is at most ScrollChunk rows;
// another chunk is added once the cursor reaches the last loaded row. Rows
// past the last match start over from the first one, so the view never ends
// while something matches.
func Grow(loaded, cursor, matched int) int {
	if matched <= 0 {
		return 0
	}
	loaded = max(loaded, min(ScrollChunk, matched))
	if cursor >= loaded-1 {
		loaded += ScrollChunk
	}
	return loaded
}

// Filter keeps movies whose title contains search, ignoring case, and whose
// genre equals genre unless genre is empty or [AllGenres].
func Filter(movies []models.Movie, search, genre string) []models.Movie {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		if needle != "" && !strings.Contains(strings.ToLower(m.Title), needle) {
			continue
		}
		if genre != "" && genre != AllGenres && m.Genre != genre {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Sort orders movies in place. Equal keys keep their relative order.
func Sort(movies []models.Movie, by SortField, order SortOrder) {
	compare := func(a, b models.Movie) int {
		switch by {
		case SortByYear:
			return cmp.Compare(a.Year, b.Year)
		case SortByRating:
			return cmp.Compare(a.Rating, b.Rating)
		default:
			if c := cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)); c != 0 {
				return c
			}
			return cmp.Compare(a.Title, b.Title)
		}
	}

	slices.SortStableFunc(movies, func(a, b models.Movie) int {
		if order == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

// Genres returns [AllGenres] followed by each distinct genre in order of
// first appearance.
func Genres(movies []models.Movie) []string {
	genres := []string{AllGenres}
	seen := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		if _, ok := seen[m.Genre]; ok || m.Genre == "" {
			continue
		}
		seen[m.Genre] = struct{}{}
		genres = append(genres, m.Genre)
	}
	return genres
}

// TotalPages is the number of pages needed for n items. An empty list still
// has one page.
func TotalPages(n, perPage int) int {
	if perPage <= 0 {
		perPage = PageSizes[0]
	}
	return max(1, (n+perPage-1)/perPage)
}

// ClampPage keeps page within 1..totalPages. Deleting the last movie of the
// last page moves the view back one page this way.
func ClampPage(page, totalPages int) int {
	return max(1, min(page, max(1, totalPages)))
}

// Next returns the element after cur in values, wrapping around. An unknown
// cur yields the first element.
func Next[T comparable](values []T, cur T) T {
	i := slices.Index(values, cur)
	return values[(i+1)%len(values)]
}

func normalize(q Query) Query {
	def := DefaultQuery()
	if q.Genre == "" {
		q.Genre = def.Genre
	}
	if !slices.Contains(SortFields, q.SortBy) {
		q.SortBy = def.SortBy
	}
	if q.Order != Descending {
		q.Order = Ascending
	}
	if q.PerPage <= 0 {
		q.PerPage = def.PerPage
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	return q
}
