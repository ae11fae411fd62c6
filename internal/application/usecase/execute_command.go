package usecase

import (
	"context"

	"github.com/bnema/atom/internal/domain/command"
	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/logging"
)

// Signal tells the shell what to surface after a command ran.
type Signal int

const (
	// SignalNone needs no follow-up.
	SignalNone Signal = iota
	// SignalBookmarks asks the shell to show the bookmark list.
	SignalBookmarks
	// SignalHistory asks the shell to show the history list.
	SignalHistory
	// SignalThemeChanged reports that the theme flipped.
	SignalThemeChanged
	// SignalTabOpened reports that a tab was opened.
	SignalTabOpened
)

// CommandResult is the outcome of one executed palette line.
type CommandResult struct {
	Command command.Command
	Signal  Signal
	TabID   entity.TabID
	Theme   entity.Theme
}

// CommandInterpreter executes parsed palette commands.
type CommandInterpreter struct {
	tabs  *TabSessionManager
	theme *ManageThemeUseCase
}

// NewCommandInterpreter creates a command interpreter.
func NewCommandInterpreter(tabs *TabSessionManager, theme *ManageThemeUseCase) *CommandInterpreter {
	return &CommandInterpreter{tabs: tabs, theme: theme}
}

// Execute parses input and runs it.
func (ci *CommandInterpreter) Execute(ctx context.Context, input string) (CommandResult, error) {
	return ci.Run(ctx, command.Parse(input))
}

// Run executes an already parsed command.
func (ci *CommandInterpreter) Run(ctx context.Context, cmd command.Command) (CommandResult, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("kind", cmd.Kind.String()).Str("arg", cmd.Arg).Msg("executing command")

	result := CommandResult{Command: cmd}

	switch cmd.Kind {
	case command.Empty:
		return result, nil
	case command.NewTab:
		id, err := ci.tabs.NewTab(ctx, "")
		if err != nil {
			return result, err
		}
		result.Signal, result.TabID = SignalTabOpened, id
	case command.Open:
		id, err := ci.tabs.NewTab(ctx, cmd.Arg)
		if err != nil {
			return result, err
		}
		result.Signal, result.TabID = SignalTabOpened, id
	case command.ToggleTheme:
		result.Signal, result.Theme = SignalThemeChanged, ci.theme.Toggle(ctx)
	case command.ShowBookmarks:
		result.Signal = SignalBookmarks
	case command.ShowHistory:
		result.Signal = SignalHistory
	case command.Navigate:
		if err := ci.tabs.Navigate(ctx, cmd.Arg); err != nil {
			return result, err
		}
	}

	return result, nil
}
