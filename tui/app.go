package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmrchat/murmur/app"
	"github.com/mmrchat/murmur/infra/config"
	"github.com/mmrchat/murmur/tui/chat"
	"github.com/mmrchat/murmur/tui/common"
	"github.com/mmrchat/murmur/tui/reactors"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Messages      app.MessageService
	Reactors      app.ReactorService
	Directory     app.ProfileDirectory
	Conversations app.ConversationService
	ChatID        string
	StatePath     string
}

type activeView int

const (
	chatView activeView = iota
	reactorsView
)

// App is the root Bubble Tea model. It routes between the chat timeline
// and the reactors overlay.
type App struct {
	deps     Deps
	active   activeView
	chat     chat.Model
	reactors reactors.Model
	keys     common.KeyMap
	status   string // Transient status message
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:     deps,
		active:   chatView,
		chat:     chat.New(deps.Messages, deps.ChatID),
		reactors: reactors.New(deps.Reactors, deps.Directory),
		keys:     common.DefaultKeyMap(),
	}
}

// Init delegates to the chat sub-model.
func (a App) Init() tea.Cmd {
	return a.chat.Init()
}

type conversationOpenedMsg struct {
	ChatID string
	Err    error
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.active == chatView && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	case chat.ShowReactorsMsg:
		a.active = reactorsView
		a.status = ""
		var cmd tea.Cmd
		a.reactors, cmd = a.reactors.Open(msg.Message.ChatID, msg.Message.ID, msg.Message.Reactions)
		return a, cmd

	case reactors.OpenConversationMsg:
		userID := msg.UserID
		conversations := a.deps.Conversations
		return a, func() tea.Msg {
			chatID, err := conversations.OpenDirect(context.Background(), userID)
			return conversationOpenedMsg{ChatID: chatID, Err: err}
		}

	case reactors.ClosedMsg:
		a.active = chatView
		return a, nil

	case conversationOpenedMsg:
		if msg.Err != nil {
			a.status = "Could not open conversation: " + msg.Err.Error()
			return a, nil
		}
		a.active = chatView
		a.status = ""
		var cmd tea.Cmd
		a.chat, cmd = a.chat.SwitchChat(msg.ChatID)
		if a.deps.StatePath != "" {
			// Best effort; a failed save only loses the startup chat.
			_ = config.SaveUIState(a.deps.StatePath, config.UIState{ChatID: msg.ChatID})
		}
		return a, cmd

	case tea.WindowSizeMsg:
		var chatCmd, reactorsCmd tea.Cmd
		a.chat, chatCmd = a.chat.Update(msg)
		a.reactors, reactorsCmd = a.reactors.Update(msg)
		return a, tea.Batch(chatCmd, reactorsCmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		if a.active == reactorsView {
			a.reactors, cmd = a.reactors.Update(msg)
		} else {
			a.chat, cmd = a.chat.Update(msg)
		}
		return a, cmd

	case reactors.PageLoadedMsg, reactors.PageErrorMsg:
		// Page results route to the overlay even after it closed; its
		// merge guards make late arrivals harmless.
		var cmd tea.Cmd
		a.reactors, cmd = a.reactors.Update(msg)
		return a, cmd
	}

	switch a.active {
	case chatView:
		updated, cmd := a.chat.Update(msg)
		a.chat = updated
		return a, cmd
	case reactorsView:
		updated, cmd := a.reactors.Update(msg)
		a.reactors = updated
		return a, cmd
	}

	return a, nil
}

// View renders the active sub-model.
func (a App) View() string {
	var s string
	switch a.active {
	case chatView:
		s = a.chat.View()
	case reactorsView:
		s = a.reactors.View()
	}

	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}
	return s
}
