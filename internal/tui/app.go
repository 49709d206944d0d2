package tui

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-flatnav/internal/service"
	"github.com/MKhiriev/go-flatnav/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 3 * time.Second

// copyToClipboard is swapped in tests; CI machines have no clipboard.
var copyToClipboard = clipboard.WriteAll

type mode int

const (
	modeBrowse mode = iota
	modeToken
	modeAddBookmark
	modeConfirmDelete
	modeBuildInfo
	modeError
)

// dashboardModel is the single screen of the client: category tabs, the
// bookmark list of the active category and the sync status line.
type dashboardModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	dashboard models.Dashboard
	list      listModel
	sync      syncModel
	busy      bool
	notice    string

	mode     mode
	token    formTokenModel
	bookmark formBookmarkModel
	confirm  confirmModel
	overlay  errorOverlayModel
	pending  models.Bookmark
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) dashboardModel {
	m := dashboardModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		sync:      newSyncModel(),
	}
	m.refresh()
	return m
}

// refresh re-reads every piece of state the screen shows from the services.
func (m *dashboardModel) refresh() {
	m.dashboard = m.services.DashboardService.Dashboard()
	m.list.setItems(bookmarksIn(m.dashboard, m.dashboard.ActiveCategoryID))
	m.sync.status = m.services.SyncService.Status()
	m.sync.autoSync = m.services.SyncService.AutoSync()
	m.sync.hasToken = m.services.SyncService.HasToken()
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusChangedMsg:
		m.sync.status = msg.status
		if m.sync.loading() {
			return m, m.sync.spinner.Tick
		}
		return m, nil
	case dashboardChangedMsg, settingsChangedMsg:
		m.refresh()
		return m, nil
	case opDoneMsg:
		m.busy = false
		m.refresh()
		if msg.err != nil {
			m.mode = modeError
			m.overlay = errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		return m, m.setNotice(msg.notice)
	case syncDoneMsg:
		// sync failures are already on the status line
		m.busy = false
		m.refresh()
		return m, m.setNotice(msg.notice)
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	case spinner.TickMsg:
		if m.busy || m.sync.loading() {
			var cmd tea.Cmd
			m.sync.spinner, cmd = m.sync.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeToken:
		return m.updateToken(keyMsg)
	case modeAddBookmark:
		return m.updateAddBookmark(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	case modeBuildInfo:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
			m.mode = modeBrowse
		}
		return m, nil
	case modeError:
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.enter) {
			m.mode = modeBrowse
		}
		return m, nil
	default:
		return m.updateBrowse(keyMsg)
	}
}

func (m dashboardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.up()
	case key.Matches(msg, keys.down):
		m.list.down()
	case key.Matches(msg, keys.left):
		return m, m.cmdSwitchCategory(-1)
	case key.Matches(msg, keys.right):
		return m, m.cmdSwitchCategory(1)
	case key.Matches(msg, keys.push):
		if m.busy || m.sync.loading() {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.sync.spinner.Tick, m.cmdPush())
	case key.Matches(msg, keys.pull):
		if m.busy || m.sync.loading() {
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.sync.spinner.Tick, m.cmdPullAndRestore())
	case key.Matches(msg, keys.autoSync):
		return m, m.cmdToggleAutoSync()
	case key.Matches(msg, keys.token):
		m.token = newFormTokenModel()
		m.mode = modeToken
	case key.Matches(msg, keys.newItem):
		m.bookmark = newFormBookmarkModel(m.dashboard.ActiveCategoryID)
		m.mode = modeAddBookmark
	case key.Matches(msg, keys.delete):
		item, ok := m.list.current()
		if !ok {
			return m, m.setNotice("no bookmark selected")
		}
		m.pending = item
		m.confirm = confirmModel{message: item.Title}
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		item, ok := m.list.current()
		if !ok {
			return m, cmdDone("", errNothingToCopy)
		}
		return m, cmdCopy(item.URL, "URL copied")
	case key.Matches(msg, keys.copyExport):
		return m, m.cmdCopyExport()
	case key.Matches(msg, keys.buildInfo):
		m.mode = modeBuildInfo
	}

	return m, nil
}

func (m dashboardModel) updateToken(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, keys.enter):
		m.mode = modeBrowse
		return m, m.cmdSetToken(m.token.input.Value())
	}

	var cmd tea.Cmd
	m.token.input, cmd = m.token.input.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateAddBookmark(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, keys.tab):
		m.bookmark.next(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.bookmark.next(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		bm, err := m.bookmark.toBookmark()
		if err != nil {
			m.bookmark.err = err.Error()
			return m, nil
		}
		m.mode = modeBrowse
		return m, m.cmdAddBookmark(bm)
	}

	var cmd tea.Cmd
	m.bookmark.inputs[m.bookmark.focus], cmd = m.bookmark.inputs[m.bookmark.focus].Update(msg)
	return m, cmd
}

func (m dashboardModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeBrowse
		return m, m.cmdRemoveBookmark(m.pending.ID)
	case key.Matches(msg, keys.no):
		m.mode = modeBrowse
	}
	return m, nil
}

// updateInputs forwards non-key messages such as cursor blinks to the
// focused input.
func (m dashboardModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeToken:
		m.token.input, cmd = m.token.input.Update(msg)
	case modeAddBookmark:
		m.bookmark.inputs[m.bookmark.focus], cmd = m.bookmark.inputs[m.bookmark.focus].Update(msg)
	}
	return m, cmd
}

func (m *dashboardModel) setNotice(notice string) tea.Cmd {
	m.notice = notice
	if notice == "" {
		return nil
	}
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{} })
}

func (m dashboardModel) View() string {
	switch m.mode {
	case modeBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	case modeToken:
		return appStyle.Render(m.token.View())
	case modeAddBookmark:
		return appStyle.Render(m.bookmark.View())
	case modeConfirmDelete:
		return appStyle.Render(m.confirm.View())
	case modeError:
		return appStyle.Render(m.overlay.View())
	}

	var b strings.Builder

	cfg := m.dashboard.Config
	b.WriteString(titleStyle.Render(valueOrDash(cfg.AppName)))
	if cfg.AppSubtitle != "" {
		b.WriteString("  ")
		b.WriteString(subtitleStyle.Render(cfg.AppSubtitle))
	}
	b.WriteString("\n\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.sync.View())
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.notice)
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→ category  ↑/↓ move  n new  d delete  c copy URL  e copy backup\n" +
		"p push  r pull  a auto-sync  t token  v about  q quit"))

	return appStyle.Render(b.String())
}

func (m dashboardModel) tabsView() string {
	if len(m.dashboard.Categories) == 0 {
		return helpStyle.Render("no categories")
	}

	tabs := make([]string, 0, len(m.dashboard.Categories))
	for _, c := range m.dashboard.Categories {
		tabs = append(tabs, tabStyle(c.Color, c.ID == m.dashboard.ActiveCategoryID).Render(c.Name))
	}
	return strings.Join(tabs, " ")
}

// ── commands ─────────────────────────────────────────────────────────────────

// syncDoneMsg ends a push or pull started from the UI.
type syncDoneMsg struct {
	notice string
}

func cmdDone(notice string, err error) tea.Cmd {
	return func() tea.Msg { return opDoneMsg{notice: notice, err: err} }
}

func cmdCopy(text, notice string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return opDoneMsg{err: errNothingToCopy}
		}
		return opDoneMsg{notice: notice, err: copyToClipboard(text)}
	}
}

func (m dashboardModel) cmdPush() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if err := services.SyncService.Push(ctx, services.SnapshotService.Assemble(), false); err != nil {
			return syncDoneMsg{}
		}
		return syncDoneMsg{notice: "backup uploaded"}
	}
}

func (m dashboardModel) cmdPullAndRestore() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		raw, err := services.SyncService.Pull(ctx)
		if err != nil {
			return syncDoneMsg{}
		}
		if err = services.SnapshotService.Restore(ctx, raw); err != nil {
			return opDoneMsg{err: err}
		}
		return syncDoneMsg{notice: "dashboard restored from backup"}
	}
}

func (m dashboardModel) cmdToggleAutoSync() tea.Cmd {
	ctx, sync := m.ctx, m.services.SyncService
	enabled := !m.sync.autoSync
	return func() tea.Msg {
		notice := "auto-sync disabled"
		if enabled {
			notice = "auto-sync enabled"
		}
		return opDoneMsg{notice: notice, err: sync.SetAutoSync(ctx, enabled)}
	}
}

func (m dashboardModel) cmdSetToken(raw string) tea.Cmd {
	ctx, sync := m.ctx, m.services.SyncService
	return func() tea.Msg {
		return opDoneMsg{err: sync.SetToken(ctx, raw)}
	}
}

func (m dashboardModel) cmdAddBookmark(bm models.Bookmark) tea.Cmd {
	ctx, dashboard := m.ctx, m.services.DashboardService
	return func() tea.Msg {
		if _, err := dashboard.AddBookmark(ctx, bm); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{notice: "bookmark added"}
	}
}

func (m dashboardModel) cmdRemoveBookmark(id string) tea.Cmd {
	ctx, dashboard := m.ctx, m.services.DashboardService
	return func() tea.Msg {
		if err := dashboard.RemoveBookmark(ctx, id); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{notice: "bookmark deleted"}
	}
}

// cmdSwitchCategory activates the category step positions away from the
// current one, wrapping around.
func (m dashboardModel) cmdSwitchCategory(step int) tea.Cmd {
	categories := m.dashboard.Categories
	if len(categories) < 2 {
		return nil
	}

	idx := 0
	for i, c := range categories {
		if c.ID == m.dashboard.ActiveCategoryID {
			idx = i
			break
		}
	}
	next := categories[(idx+step+len(categories))%len(categories)].ID

	ctx, dashboard := m.ctx, m.services.DashboardService
	return func() tea.Msg {
		return opDoneMsg{err: dashboard.SetActiveCategory(ctx, next)}
	}
}

func (m dashboardModel) cmdCopyExport() tea.Cmd {
	snapshots := m.services.SnapshotService
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := snapshots.Export(&buf); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{notice: "backup copied to clipboard", err: copyToClipboard(buf.String())}
	}
}
