package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmrchat/murmur/infra/auth"
	"github.com/mmrchat/murmur/infra/chatwire"
	"github.com/mmrchat/murmur/infra/config"
	"github.com/mmrchat/murmur/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: murmur [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("Murmur %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
	}

	// 1. Load config from file and environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Build infrastructure.
	var tokenProvider auth.TokenProvider
	if cfg.Token != "" {
		tokenProvider = auth.StaticTokenProvider(cfg.Token)
	} else {
		tokenProvider = auth.NewFileTokenProvider(cfg.TokenPath)
	}
	httpClient := chatwire.NewClient(cfg.ServerURL, tokenProvider)

	// 3. Build services (concrete types satisfy app.* interfaces).
	directory := chatwire.NewDirectory(httpClient)
	// Hydrate synchronously so rows can show display names from the first
	// render. A failure degrades to raw user ids, not a fatal error.
	_ = directory.Hydrate(context.Background())

	messageSvc := chatwire.NewMessageService(httpClient, directory.SelfID())
	reactorSvc := chatwire.NewReactorService(httpClient)
	conversationSvc := chatwire.NewConversationService(httpClient)

	uiState, _ := config.LoadUIState(cfg.UIStatePath)
	initialChat := cfg.ChatID
	if uiState.ChatID != "" {
		initialChat = uiState.ChatID
	}

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Messages:      messageSvc,
		Reactors:      reactorSvc,
		Directory:     directory,
		Conversations: conversationSvc,
		ChatID:        initialChat,
		StatePath:     cfg.UIStatePath,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "murmur: %v\n", err)
		os.Exit(1)
	}
}
