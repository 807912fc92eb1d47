package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/models"
)

const (
	savedLocallyNotice = "Saved locally – will sync"
	statusRefreshEvery = 3 * time.Second
	statusClearAfter   = 3 * time.Second
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
	screenScroll
)

// clipboardWriter is swapped in tests.
var clipboardWriter = clipboard.WriteAll

type appModel struct {
	ctx          context.Context
	movies       service.ClientMovieService
	sync         service.ClientSyncService
	connectivity service.ConnectivityReader

	currentScreen screen
	// browse is the view the user returns to: paged list or endless scroll
	browse     screen
	formReturn screen
	list       listModel
	scroll     scrollModel
	detail     detailModel
	form       formModel

	state   models.ConnectivityState
	pending int
	status  string

	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

func newAppModel(ctx context.Context, movies service.ClientMovieService, sync service.ClientSyncService, connectivity service.ConnectivityReader, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		movies:        movies,
		sync:          sync,
		connectivity:  connectivity,
		currentScreen: screenList,
		browse:        screenList,
		list:          newListModel(),
		buildInfo:     buildInfo,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadList(), cmdStatusTick())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.errorOverlay.visible() {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.errorOverlay = errorOverlayModel{}
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case moviesLoadedMsg:
		m.list.loading = false
		m.list.setMovies(msg.movies)
		m.scroll.setMovies(msg.movies, m.list.query)
		m.state = msg.state
		m.pending = msg.pending
		return m, nil
	case statusTickMsg:
		return m, tea.Batch(m.cmdStatus(), cmdStatusTick())
	case statusMsg:
		changed := msg.state != m.state || msg.pending != m.pending
		m.state = msg.state
		m.pending = msg.pending
		if changed {
			return m, m.cmdLoadList()
		}
		return m, nil
	case movieSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showError("Save failed", describeError(msg.err))
			return m, nil
		}
		m.currentScreen = m.browse
		m.status = "Saved"
		if msg.movie.Unconfirmed {
			m.status = savedLocallyNotice
		}
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case movieDeletedMsg:
		m.confirm = confirmModel{}
		if msg.err != nil {
			m.showError("Delete failed", describeError(msg.err))
			return m, nil
		}
		m.currentScreen = m.browse
		m.status = "Deleted"
		if !msg.result.Confirmed {
			m.status = savedLocallyNotice
		}
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case syncDoneMsg:
		m.list.syncing = false
		m.status = fmt.Sprintf("Synced %d, rejected %d, %d still pending", msg.report.Replayed, msg.report.Rejected, msg.report.Remaining)
		if msg.err != nil {
			m.status = fmt.Sprintf("Server unavailable, %d operations will sync later", msg.report.Remaining)
		}
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case copiedMsg:
		m.status = "Image URL copied"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case errMsg:
		m.showError("Error", describeError(msg.err))
		return m, nil
	case spinner.TickMsg:
		if m.list.syncing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenScroll:
		return m.updateScroll(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View(m.state, m.pending, m.status)
	case screenDetail:
		body = m.detail.View(m.status)
	case screenForm:
		body = m.form.View()
	case screenScroll:
		body = m.scroll.View(m.state, m.pending, m.status)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.errorOverlay.visible() {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showError(title, message string) {
	m.errorOverlay = errorOverlayModel{title: title, message: message}
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.confirm.target() == "" {
			return m, nil
		}
		return m, m.cmdDelete(m.confirm.target())
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		if m.list.search.Value() != m.list.query.Search {
			m.list.setSearch(m.list.search.Value())
		}
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.list.moveCursor(-1)
	case key.Matches(keyMsg, keys.down):
		m.list.moveCursor(1)
	case key.Matches(keyMsg, keys.prevPage):
		m.list.turnPage(-1)
	case key.Matches(keyMsg, keys.nextPage):
		m.list.turnPage(1)
	case key.Matches(keyMsg, keys.enter):
		movie, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{movie: movie}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil)
		m.formReturn = screenList
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.scroll):
		m.scroll = newScrollModel(m.list.movies, m.list.query)
		m.browse = screenScroll
		m.currentScreen = screenScroll
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		return m, m.list.search.Focus()
	case key.Matches(keyMsg, keys.genre):
		m.list.nextGenre()
	case key.Matches(keyMsg, keys.sortField):
		m.list.nextSortField()
	case key.Matches(keyMsg, keys.sortOrder):
		m.list.toggleOrder()
	case key.Matches(keyMsg, keys.pageSize):
		m.list.nextPageSize()
	case key.Matches(keyMsg, keys.sync):
		if m.list.syncing {
			return m, nil
		}
		m.list.syncing = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdSync())
	case key.Matches(keyMsg, keys.about):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.browse
	case key.Matches(keyMsg, keys.edit):
		movie := m.detail.movie
		m.form = newFormModel(&movie)
		m.formReturn = screenDetail
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm = newDeleteConfirm(m.detail.movie, m.state)
	case key.Matches(keyMsg, keys.copy):
		if m.detail.movie.Image == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.movie.Image)
	}

	return m, nil
}

func (m appModel) updateScroll(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.scroll.moveCursor(-1)
	case key.Matches(keyMsg, keys.down):
		m.scroll.moveCursor(1)
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.scroll):
		m.browse = screenList
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.enter):
		if movie, ok := m.scroll.current(); ok {
			m.detail = detailModel{movie: movie}
			m.currentScreen = screenDetail
		}
	case key.Matches(keyMsg, keys.edit):
		if movie, ok := m.scroll.current(); ok {
			m.form = newFormModel(&movie)
			m.formReturn = screenScroll
			m.currentScreen = screenForm
		}
	case key.Matches(keyMsg, keys.delete):
		if movie, ok := m.scroll.current(); ok {
			m.showConfirm = true
			m.confirm = newDeleteConfirm(movie, m.state)
		}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = m.formReturn
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSave(m.form)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	movies := m.movies
	sync := m.sync
	connectivity := m.connectivity
	return func() tea.Msg {
		list := movies.List(ctx)
		return moviesLoadedMsg{
			movies:  list,
			state:   connectivity.State(),
			pending: len(sync.PendingOperations(ctx)),
		}
	}
}

func (m appModel) cmdStatus() tea.Cmd {
	ctx := m.ctx
	sync := m.sync
	connectivity := m.connectivity
	return func() tea.Msg {
		return statusMsg{
			state:   connectivity.State(),
			pending: len(sync.PendingOperations(ctx)),
		}
	}
}

func (m appModel) cmdSave(form formModel) tea.Cmd {
	ctx := m.ctx
	movies := m.movies
	fields := form.fields()
	return func() tea.Msg {
		var (
			movie models.Movie
			err   error
		)
		if form.editing {
			movie, err = movies.Update(ctx, form.id, fields)
		} else {
			movie, err = movies.Create(ctx, fields)
		}
		return movieSavedMsg{movie: movie, err: err}
	}
}

func (m appModel) cmdDelete(id models.MovieID) tea.Cmd {
	ctx := m.ctx
	movies := m.movies
	return func() tea.Msg {
		result, err := movies.Delete(ctx, id)
		return movieDeletedMsg{result: result, err: err}
	}
}

func (m appModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	sync := m.sync
	return func() tea.Msg {
		report, err := sync.SyncPending(ctx)
		return syncDoneMsg{report: report, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWriter(text); err != nil {
			return errMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdStatusTick() tea.Cmd {
	return tea.Tick(statusRefreshEvery, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusClearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
