package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-movie-keeper/internal/catalog"
	"github.com/MKhiriev/go-movie-keeper/internal/mock"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type testApp struct {
	model        appModel
	movies       *mock.MockClientMovieService
	sync         *mock.MockClientSyncService
	connectivity *mock.MockConnectivityReader
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	movies := mock.NewMockClientMovieService(ctrl)
	syncSvc := mock.NewMockClientSyncService(ctrl)
	connectivity := mock.NewMockConnectivityReader(ctrl)

	return &testApp{
		model:        newAppModel(context.Background(), movies, syncSvc, connectivity, models.NewAppBuildInfo("v1.0.0", "2026-10-18", "abc123")),
		movies:       movies,
		sync:         syncSvc,
		connectivity: connectivity,
	}
}

// send прогоняет сообщение через Update и сохраняет новое состояние модели.
func (a *testApp) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := a.model.Update(msg)
	m, ok := next.(appModel)
	require.True(t, ok)
	a.model = m
	return cmd
}

func (a *testApp) press(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		a.send(t, keyMsg(k))
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func testMovies(n int) []models.Movie {
	out := make([]models.Movie, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.NewMovie(models.MovieIDFromInt(int64(i)), models.MovieFields{
			Title:  fmt.Sprintf("Movie %02d", i),
			Year:   2000 + i,
			Genre:  []string{"Drama", "Comedy"}[i%2],
			Rating: 1 + i%10,
			Review: "review",
			Image:  fmt.Sprintf("https://example.com/%d.jpg", i),
		}))
	}
	return out
}

func online() models.ConnectivityState {
	return models.ConnectivityState{NetworkReachable: true, ServerReachable: true}
}

func (a *testApp) load(t *testing.T, movies []models.Movie) {
	t.Helper()
	a.send(t, moviesLoadedMsg{movies: movies, state: online()})
}

// ── loading ─────────────────────────────────────────────────────────────────

func TestAppModel_LoadList(t *testing.T) {
	a := newTestApp(t)
	a.movies.EXPECT().List(gomock.Any()).Return(testMovies(3))
	a.connectivity.EXPECT().State().Return(models.ConnectivityState{NetworkReachable: true})
	a.sync.EXPECT().PendingOperations(gomock.Any()).Return(make([]models.PendingOperation, 2))

	msg := a.model.cmdLoadList()()
	a.send(t, msg)

	assert.False(t, a.model.list.loading)
	assert.Len(t, a.model.list.page.Movies, 3)
	assert.Equal(t, 2, a.model.pending)

	view := a.model.View()
	assert.Contains(t, view, "Server Offline")
	assert.Contains(t, view, "pending: 2")
	assert.Contains(t, view, "Movie 01")
}

func TestAppModel_StatusChangeReloads(t *testing.T) {
	a := newTestApp(t)
	a.load(t, testMovies(1))

	cmd := a.send(t, statusMsg{state: online(), pending: 0})
	assert.Nil(t, cmd, "unchanged status does not reload")

	cmd = a.send(t, statusMsg{state: online(), pending: 1})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, a.model.pending)
}

// ── list navigation ─────────────────────────────────────────────────────────

func TestAppModel_Paging(t *testing.T) {
	a := newTestApp(t)
	a.load(t, testMovies(12))

	require.Equal(t, 3, a.model.list.page.TotalPages)

	a.press(t, "right", "right", "right")
	assert.Equal(t, 3, a.model.list.page.Page, "paging stops at the last page")
	assert.Len(t, a.model.list.page.Movies, 2)

	a.press(t, "p")
	assert.Equal(t, 10, a.model.list.query.PerPage)
	assert.Equal(t, 1, a.model.list.page.Page)

	a.press(t, "left")
	assert.Equal(t, 1, a.model.list.page.Page)
}

func TestAppModel_SortAndGenre(t *testing.T) {
	a := newTestApp(t)
	a.load(t, testMovies(4))

	a.press(t, "r")
	first, ok := a.model.list.current()
	require.True(t, ok)
	assert.Equal(t, "Movie 04", first.Title)

	a.press(t, "o")
	assert.Equal(t, catalog.SortByYear, a.model.list.query.SortBy)

	a.press(t, "g")
	assert.Equal(t, "Comedy", a.model.list.query.Genre)
	for _, m := range a.model.list.page.Movies {
		assert.Equal(t, "Comedy", m.Genre)
	}
}

func TestAppModel_Search(t *testing.T) {
	a := newTestApp(t)
	a.load(t, testMovies(12))

	a.press(t, "/", "1", "1")
	assert.True(t, a.model.list.searching)
	assert.Equal(t, "11", a.model.list.query.Search)
	require.Len(t, a.model.list.page.Movies, 1)
	assert.Equal(t, "Movie 11", a.model.list.page.Movies[0].Title)

	a.press(t, "enter")
	assert.False(t, a.model.list.searching)

	// «q» в режиме поиска это символ, а не выход
	a.press(t, "/")
	a.send(t, keyMsg("q"))
	assert.Equal(t, "11q", a.model.list.query.Search)
}

func TestAppModel_GenreResetWhenGone(t *testing.T) {
	a := newTestApp(t)
	a.load(t, testMovies(4))
	a.press(t, "g")
	require.Equal(t, "Comedy", a.model.list.query.Genre)

	drama := testMovies(4)[1:2]
	drama[0].Genre = "Drama"
	a.load(t, drama)

	assert.Equal(t, catalog.AllGenres, a.model.list.query.Genre)
}

// ── infinite scroll ─────────────────────────────────────────────────────────

func (a *testApp) scrollDown(t *testing.T, n int) {
	t.Helper()
	for range n {
		a.send(t, keyMsg("down"))
	}
}

func TestAppModel_InfiniteScrollLoadsChunks(t *testing.T) {
	a := newTestApp(t)
	a.load(t, testMovies(25))

	a.press(t, "i")
	require.Equal(t, screenScroll, a.model.currentScreen)
	assert.Equal(t, catalog.ScrollChunk, a.model.scroll.loaded)
	assert.Contains(t, a.model.View(), "Showing 10 movies out of 25")

	a.scrollDown(t, 8)
	assert.Equal(t, 10, a.model.scroll.loaded, "cursor is not at the bottom yet")

	a.scrollDown(t, 1)
	assert.Equal(t, 20, a.model.scroll.loaded)

	a.scrollDown(t, 10)
	assert.Equal(t, 30, a.model.scroll.loaded)

	// после последнего фильма список начинается заново
	a.scrollDown(t, 6)
	movie, ok := a.model.scroll.current()
	require.True(t, ok)
	assert.Equal(t, 25, a.model.scroll.idx)
	assert.Equal(t, "Movie 01", movie.Title)

	a.press(t, "up")
	movie, _ = a.model.scroll.current()
	assert.Equal(t, "Movie 25", movie.Title)

	a.press(t, "esc")
	assert.Equal(t, screenList, a.model.currentScreen)
	assert.Equal(t, screenList, a.model.browse)
}

func TestAppModel_InfiniteScrollFollowsListQuery(t *testing.T) {
	a := newTestApp(t)
	a.load(t, testMovies(6))

	a.press(t, "g", "r", "i")

	require.Equal(t, 3, len(a.model.scroll.matched))
	for _, m := range a.model.scroll.matched {
		assert.Equal(t, "Comedy", m.Genre)
	}
	first, ok := a.model.scroll.current()
	require.True(t, ok)
	assert.Equal(t, "Movie 05", first.Title)
	assert.Contains(t, a.model.View(), "Showing 3 movies out of 3")
}

func TestAppModel_InfiniteScrollEmpty(t *testing.T) {
	a := newTestApp(t)
	a.load(t, nil)

	a.press(t, "i", "down", "e", "d")

	assert.Equal(t, screenScroll, a.model.currentScreen)
	assert.False(t, a.model.showConfirm)
	assert.Contains(t, a.model.View(), "No movies found.")
}

func TestAppModel_InfiniteScrollEditInPlace(t *testing.T) {
	a := newTestApp(t)
	movies := testMovies(3)
	a.load(t, movies)

	a.press(t, "i", "down", "e")
	require.Equal(t, screenForm, a.model.currentScreen)
	assert.Equal(t, movies[1].MovieFields, a.model.form.fields())

	a.press(t, "esc")
	require.Equal(t, screenScroll, a.model.currentScreen, "esc goes back to the scroll view")

	a.press(t, "e")
	updated := movies[1]
	updated.Rating = 10
	a.model.form.inputs[fieldRating].SetValue("10")
	a.movies.EXPECT().Update(gomock.Any(), movies[1].ID, updated.MovieFields).Return(updated, nil)

	a.send(t, a.model.cmdSave(a.model.form)())

	assert.Equal(t, screenScroll, a.model.currentScreen)
	assert.Equal(t, "Saved", a.model.status)
}

func TestAppModel_InfiniteScrollDeleteInPlace(t *testing.T) {
	a := newTestApp(t)
	movies := testMovies(4)
	a.load(t, movies)

	a.press(t, "i", "down", "down", "d")
	require.True(t, a.model.showConfirm)
	assert.Contains(t, a.model.View(), "Delete \"Movie 03\"?")

	a.movies.EXPECT().Delete(gomock.Any(), movies[2].ID).Return(models.DeleteResult{ID: movies[2].ID, Confirmed: true}, nil)

	cmd := a.send(t, keyMsg("y"))
	require.NotNil(t, cmd)
	a.send(t, cmd())

	assert.Equal(t, screenScroll, a.model.currentScreen)
	assert.Equal(t, "Deleted", a.model.status)

	// после перезагрузки курсор остаётся на той же строке, там следующий фильм
	a.load(t, []models.Movie{movies[0], movies[1], movies[3]})
	assert.Equal(t, 2, a.model.scroll.idx)
	movie, ok := a.model.scroll.current()
	require.True(t, ok)
	assert.Equal(t, "Movie 04", movie.Title)
}

// ── create / update ─────────────────────────────────────────────────────────

func fillForm(f *formModel, fields models.MovieFields) {
	f.inputs[fieldTitle].SetValue(fields.Title)
	f.inputs[fieldYear].SetValue(fmt.Sprint(fields.Year))
	f.inputs[fieldGenre].SetValue(fields.Genre)
	f.inputs[fieldRating].SetValue(fmt.Sprint(fields.Rating))
	f.inputs[fieldReview].SetValue(fields.Review)
	f.inputs[fieldImage].SetValue(fields.Image)
}

func TestAppModel_CreateOffline(t *testing.T) {
	a := newTestApp(t)
	a.load(t, nil)

	a.press(t, "n")
	require.Equal(t, screenForm, a.model.currentScreen)

	fields := testMovies(1)[0].MovieFields
	fillForm(&a.model.form, fields)

	a.movies.EXPECT().Create(gomock.Any(), fields).
		Return(models.Movie{ID: "local-1", MovieFields: fields, Unconfirmed: true}, nil)

	cmd := a.send(t, keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.True(t, a.model.form.submitting)

	a.send(t, a.model.cmdSave(a.model.form)())

	assert.Equal(t, screenList, a.model.currentScreen)
	assert.Equal(t, savedLocallyNotice, a.model.status)
	assert.Contains(t, a.model.View(), savedLocallyNotice)
}

func TestAppModel_CreateRejected(t *testing.T) {
	a := newTestApp(t)
	a.press(t, "n")

	rejected := fmt.Errorf("%w: %w", service.ErrMovieRejected,
		&validators.ValidationError{Messages: []string{"Title is required", "Invalid year"}})
	a.movies.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Movie{}, rejected)

	a.send(t, a.model.cmdSave(a.model.form)())

	assert.Equal(t, screenForm, a.model.currentScreen, "form stays open")
	assert.True(t, a.model.errorOverlay.visible())
	assert.Contains(t, a.model.errorOverlay.message, "Title is required")
	assert.Contains(t, a.model.errorOverlay.message, "Invalid year")

	a.press(t, "esc")
	assert.False(t, a.model.errorOverlay.visible())
}

func TestAppModel_EditPrefillsForm(t *testing.T) {
	a := newTestApp(t)
	movies := testMovies(1)
	a.load(t, movies)

	a.press(t, "enter", "e")
	require.Equal(t, screenForm, a.model.currentScreen)
	assert.True(t, a.model.form.editing)
	assert.Equal(t, movies[0].MovieFields, a.model.form.fields())

	updated := movies[0]
	updated.Rating = 10
	a.model.form.inputs[fieldRating].SetValue("10")
	a.movies.EXPECT().Update(gomock.Any(), movies[0].ID, updated.MovieFields).Return(updated, nil)

	a.send(t, a.model.cmdSave(a.model.form)())
	assert.Equal(t, "Saved", a.model.status)

	a.press(t, "n", "esc")
	assert.Equal(t, screenList, a.model.currentScreen)
}

// ── detail ──────────────────────────────────────────────────────────────────

func TestAppModel_DeleteConfirmed(t *testing.T) {
	a := newTestApp(t)
	movies := testMovies(2)
	a.load(t, movies)

	a.press(t, "enter", "d")
	require.True(t, a.model.showConfirm)
	assert.Contains(t, a.model.View(), "Delete \"Movie 01\"?")

	a.movies.EXPECT().Delete(gomock.Any(), movies[0].ID).Return(models.DeleteResult{ID: movies[0].ID}, nil)

	cmd := a.send(t, keyMsg("y"))
	require.NotNil(t, cmd)
	a.send(t, cmd())

	assert.Equal(t, screenList, a.model.currentScreen)
	assert.Equal(t, savedLocallyNotice, a.model.status)
}

func TestAppModel_DeleteCancelled(t *testing.T) {
	a := newTestApp(t)
	a.load(t, testMovies(1))

	a.press(t, "enter", "d", "n")

	assert.False(t, a.model.showConfirm)
	assert.Empty(t, a.model.confirm.target())
	assert.Equal(t, screenDetail, a.model.currentScreen)
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := clipboardWriter
	clipboardWriter = fn
	t.Cleanup(func() { clipboardWriter = orig })
}

func TestAppModel_CopyImageURL(t *testing.T) {
	var copied string
	stubClipboard(t, func(s string) error { copied = s; return nil })

	a := newTestApp(t)
	a.load(t, testMovies(1))
	a.press(t, "enter")

	cmd := a.send(t, keyMsg("c"))
	require.NotNil(t, cmd)
	a.send(t, cmd())

	assert.Equal(t, "https://example.com/1.jpg", copied)
	assert.Equal(t, "Image URL copied", a.model.status)
}

func TestAppModel_CopyFailureShowsError(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard") })

	a := newTestApp(t)
	a.load(t, testMovies(1))
	a.press(t, "enter")

	a.send(t, a.send(t, keyMsg("c"))())

	assert.True(t, a.model.errorOverlay.visible())
	assert.Contains(t, a.model.errorOverlay.message, "no clipboard")
}

// ── sync ────────────────────────────────────────────────────────────────────

func TestAppModel_ManualSync(t *testing.T) {
	a := newTestApp(t)
	a.load(t, testMovies(1))

	cmd := a.send(t, keyMsg("s"))
	require.NotNil(t, cmd)
	assert.True(t, a.model.list.syncing)
	assert.Nil(t, a.send(t, keyMsg("s")), "second press while syncing is ignored")

	a.sync.EXPECT().SyncPending(gomock.Any()).Return(models.SyncReport{Replayed: 2, Rejected: 1}, nil)
	a.send(t, a.model.cmdSync()())

	assert.False(t, a.model.list.syncing)
	assert.Equal(t, "Synced 2, rejected 1, 0 still pending", a.model.status)
}

func TestAppModel_ManualSyncInterrupted(t *testing.T) {
	a := newTestApp(t)
	a.sync.EXPECT().SyncPending(gomock.Any()).Return(models.SyncReport{Remaining: 3}, service.ErrReplayInterrupted)

	a.send(t, a.model.cmdSync()())

	assert.Equal(t, "Server unavailable, 3 operations will sync later", a.model.status)
}

// ── misc ────────────────────────────────────────────────────────────────────

func TestAppModel_BuildInfo(t *testing.T) {
	a := newTestApp(t)

	a.press(t, "v")
	view := a.model.View()
	assert.Contains(t, view, "Movie Keeper")
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "abc123")

	a.press(t, "esc")
	assert.False(t, a.model.showBuildInfo)
}

func TestAppModel_Quit(t *testing.T) {
	a := newTestApp(t)

	assert.NotNil(t, a.send(t, keyMsg("q")))
	assert.NotNil(t, a.send(t, keyMsg("ctrl+c")))
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "", describeError(nil))
	assert.Contains(t, describeError(service.ErrMovieNotFound), "Movie not found")
	assert.Equal(t, "The server rejected the movie.", describeError(service.ErrMovieRejected))
	assert.Equal(t, "boom", describeError(errors.New("boom")))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "Amélie", fitText("Amélie", 10))
	assert.Equal(t, "The God...", fitText("The Godfather", 10))
	assert.Equal(t, "Th", fitText("The Godfather", 2))
}
