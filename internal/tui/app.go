// Package tui implements the interactive chamber: a docket of proposals, the
// live debate transcript, voting keys and a form for new proposals.
package tui

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/parliament/internal/parliament"
)

// App wraps the Bubbletea program
type App struct {
	mu      sync.Mutex
	program *tea.Program
	model   Model
	chamber *parliament.Parliament
}

// New creates a new TUI application
func New(chamber *parliament.Parliament, opts Options) *App {
	return &App{
		model:   NewModel(chamber, opts),
		chamber: chamber,
	}
}

// Run starts the TUI application and blocks until it exits
func (a *App) Run() error {
	defer a.chamber.Bus().Unsubscribe(a.model.subID)

	program := tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)
	a.mu.Lock()
	a.program = program
	a.mu.Unlock()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		if _, ok := <-sigChan; ok {
			program.Send(tea.Quit())
		}
	}()

	_, err := program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	a.mu.Lock()
	a.program = nil
	a.mu.Unlock()
	return err
}

// SetThinkingDelay changes the statement delay of the running UI. It is a
// no-op when the program is not running.
func (a *App) SetThinkingDelay(d time.Duration) {
	a.mu.Lock()
	program := a.program
	a.mu.Unlock()
	if program != nil {
		program.Send(thinkingDelayMsg(d))
	}
}
