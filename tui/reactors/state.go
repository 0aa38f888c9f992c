package reactors

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmrchat/murmur/app"
	"github.com/mmrchat/murmur/domain"
	"github.com/mmrchat/murmur/tui/common"
)

const (
	pageLimit      = 40
	nearEndTrigger = 3
	minFilterTotal = 10
	closeAnimTime  = 160 * time.Millisecond
)

// PageLoadedMsg is sent when a reactor page fetch completes successfully.
type PageLoadedMsg struct {
	Page   app.ReactorPage
	ReqSeq int
}

// PageErrorMsg is sent when a reactor page fetch fails.
type PageErrorMsg struct {
	Err    error
	ReqSeq int
}

// closeAnimatedMsg marks the end of the closing transition. CloseSeq
// invalidates animations scheduled before a reopen.
type closeAnimatedMsg struct {
	CloseSeq int
}

// OpenConversationMsg asks the host to open a direct conversation with
// the user whose entry was selected. Emitted only after the closing
// transition has finished.
type OpenConversationMsg struct {
	UserID string
}

// ClosedMsg tells the host the overlay has fully closed.
type ClosedMsg struct{}

// sessionPhase is the lifecycle state of one overlay session.
type sessionPhase int

const (
	phaseClosed sessionPhase = iota
	phaseOpen
	phaseClosing
)

type sessionState struct {
	chatID     string
	messageID  string
	phase      sessionPhase
	activeKind string // "" renders the combined list
	pendingNav string // user id captured at entry click, cleared on close
	closeSeq   int
	counts     []domain.ReactionCount // message tallies, drive the filter tabs
}

type pageState struct {
	entries    []domain.ReactionEntry
	seenIDs    []string
	entryKeys  map[string]struct{} // userID+"\x00"+kind, for idempotent merges
	seenKeys   map[string]struct{}
	hasMore    bool
	fetching   bool
	nextCursor string
	reqSeq     int
	loadErr    error
}

type uiState struct {
	keys       common.KeyMap
	spinner    spinner.Model
	width      int
	height     int
	cursor     int // index into the projected id list
	startIndex int // first visible row
}

// Model holds the state for the reactors overlay: who reacted to or
// viewed one message, aggregated across backward pages.
type Model struct {
	reactors  app.ReactorService
	directory app.ProfileDirectory
	sessionState
	pageState
	uiState
}

// New creates a reactors overlay model with injected dependencies.
func New(reactors app.ReactorService, directory app.ProfileDirectory) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))

	return Model{
		reactors:  reactors,
		directory: directory,
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
	}
}

// Open starts an overlay session for one message and eagerly fetches the
// first reactor page so the list never opens empty. Reopening while the
// previous session is still animating closed aborts the pending close
// and cancels any captured navigation target.
func (m Model) Open(chatID, messageID string, counts []domain.ReactionCount) (Model, tea.Cmd) {
	if m.phase == phaseClosing && chatID == m.chatID && messageID == m.messageID {
		// Abort the pending close; keep the already-loaded data.
		m.phase = phaseOpen
		m.pendingNav = ""
		m.closeSeq++
		return m, m.spinner.Tick
	}

	m.sessionState = sessionState{
		chatID:    chatID,
		messageID: messageID,
		phase:     phaseOpen,
		closeSeq:  m.closeSeq + 1,
		counts:    counts,
	}
	m.pageState = pageState{
		entryKeys: make(map[string]struct{}),
		seenKeys:  make(map[string]struct{}),
		hasMore:   true,
		fetching:  true,
		reqSeq:    m.reqSeq + 1,
	}
	m.cursor = 0
	m.startIndex = 0

	return m, tea.Batch(m.fetchPage(m.reqSeq), m.spinner.Tick)
}

// Update handles messages for the reactors overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// IsOpen reports whether the overlay is visible (open or still animating
// closed).
func (m Model) IsOpen() bool {
	return m.phase != phaseClosed
}

// ViewportIDs returns the ordered user ids currently intended for
// rendering: the deduplicated candidate list narrowed by the active
// filter.
func (m Model) ViewportIDs() []string {
	candidates := candidateIDs(m.entries, m.seenIDs)
	if m.activeKind == "" {
		return candidates
	}
	return projectIDs(candidates, reactedKinds(m.entries), m.activeKind)
}

// Tabs returns the selectable filter tabs, nil when the message does not
// carry enough reactions to justify filtering.
func (m Model) Tabs() []FilterTab {
	return filterTabs(m.counts)
}

// ActiveKind returns the active filter kind, empty for the combined list.
func (m Model) ActiveKind() string {
	return m.activeKind
}

// Err returns the last fetch error, if any.
func (m Model) Err() error {
	return m.loadErr
}
