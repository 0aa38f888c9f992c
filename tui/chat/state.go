package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmrchat/murmur/app"
	"github.com/mmrchat/murmur/domain"
	"github.com/mmrchat/murmur/tui/common"
)

const (
	defaultLimit    = 20
	prefetchTrigger = 3
)

// MessagesLoadedMsg is sent when the initial timeline fetch completes.
type MessagesLoadedMsg struct {
	Messages []domain.Message
	ChatKey  string
	ReqSeq   int
}

// MessagesErrorMsg is sent when the timeline fetch fails.
type MessagesErrorMsg struct {
	Err     error
	ChatKey string
	ReqSeq  int
}

// MessagesPageLoadedMsg is sent when an older page is loaded.
type MessagesPageLoadedMsg struct {
	Messages []domain.Message
	ChatKey  string
	ReqSeq   int
}

// MessagesPageErrorMsg is sent when loading an older page fails.
type MessagesPageErrorMsg struct {
	Err     error
	ChatKey string
	ReqSeq  int
}

// ShowReactorsMsg asks the host to open the reactors overlay for the
// selected message.
type ShowReactorsMsg struct {
	Message domain.Message
}

type chatState struct {
	chatID      string
	messages    []domain.Message
	cursor      int
	loading     bool
	loadingMore bool
	hasMore     bool
	oldestID    string
	err         error
	reqSeq      int
}

type uiState struct {
	keys       common.KeyMap
	spinner    spinner.Model
	width      int
	height     int
	startIndex int
}

// Model holds the state for the chat timeline view.
type Model struct {
	svc app.MessageService
	chatState
	uiState
}

// New creates a chat model with injected dependencies.
func New(svc app.MessageService, chatID string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))

	return Model{
		svc: svc,
		chatState: chatState{
			chatID:  chatID,
			loading: true,
			hasMore: true,
		},
		uiState: uiState{
			keys:    common.DefaultKeyMap(),
			spinner: s,
		},
	}
}

// Init starts the initial timeline fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchMessages(m.reqSeq),
		m.spinner.Tick,
	)
}

// SwitchChat resets the model onto another chat and refetches.
func (m Model) SwitchChat(chatID string) (Model, tea.Cmd) {
	m.chatState = chatState{
		chatID:  chatID,
		loading: true,
		hasMore: true,
		reqSeq:  m.reqSeq + 1,
	}
	m.startIndex = 0
	return m, m.fetchMessages(m.reqSeq)
}

// ChatID returns the chat currently shown.
func (m Model) ChatID() string {
	return m.chatID
}

// SelectedMessage returns the currently highlighted message, if any.
func (m Model) SelectedMessage() (domain.Message, bool) {
	if len(m.messages) == 0 || m.cursor < 0 || m.cursor >= len(m.messages) {
		return domain.Message{}, false
	}
	return m.messages[m.cursor], true
}

// Update handles messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}
