// Package main runs the terminal chat front end for the consultation API.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/TALA-AI/tala-web/internal/chat"
	"github.com/TALA-AI/tala-web/internal/config"
	"github.com/TALA-AI/tala-web/internal/tui"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	session := chat.NewSession(chat.NewClient(cfg.APIBaseURL))

	p := tea.NewProgram(tui.New(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "chat error: %v\n", err)
		os.Exit(1)
	}
}
