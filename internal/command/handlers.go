package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aleister1102/webwatch/internal/registry"
	"github.com/aleister1102/webwatch/internal/watcher"
	"github.com/rs/zerolog"
)

// HelpText is the usage message returned by the help command.
const HelpText = `webwatch: monitor urls and receive updates
/help -> show this message
/add [name] [url] [interval] -> start monitoring the passed url identified by name, interval default is 15 mins
/remove [name] -> remove an url under monitoring, identified by its name
/list -> list all the urls under monitoring
/timer [name] -> return the current interval for the url identified by name
/set_timer [name] [interval] -> reset the monitor for the url with the new interval
/end -> stop monitoring every url`

const (
	replyMissingAddArgs      = "you have to pass a name and a url to add"
	replyMissingRemoveArg    = "you have to pass the name of an url to remove"
	replyMissingTimerArg     = "you have to pass the name of an url"
	replyMissingSetTimerArgs = "you have to pass the name of an url and a positive interval"
	replyInvalidInterval     = "interval must be a positive integer"
	replyNoSuchURL           = "no such url under monitoring"
	replyNothingMonitored    = "no urls are being monitored"
	replyUnknownCommand      = "unknown command, try /help"
)

// Handlers dispatches chat commands to the watcher registry. It holds its
// collaborators by explicit injection; replies are returned to the transport
// for delivery.
type Handlers struct {
	registry *registry.Registry
	logger   zerolog.Logger
}

// NewHandlers creates a new Handlers.
func NewHandlers(reg *registry.Registry, logger zerolog.Logger) *Handlers {
	return &Handlers{
		registry: reg,
		logger:   logger.With().Str("component", "CommandHandlers").Logger(),
	}
}

// Handle executes one command for the tenant and returns the reply text.
// Command names arrive without the leading slash; args are pre-tokenized by
// the transport.
func (h *Handlers) Handle(tenant, command string, args []string) string {
	h.logger.Debug().Str("tenant", tenant).Str("command", command).Strs("args", args).Msg("Handling command")

	switch command {
	case "help", "start":
		return HelpText
	case "add":
		return h.handleAdd(tenant, args)
	case "remove":
		return h.handleRemove(tenant, args)
	case "list":
		return h.handleList(tenant)
	case "timer":
		return h.handleTimer(tenant, args)
	case "set_timer":
		return h.handleSetTimer(tenant, args)
	case "end":
		return h.handleEnd(tenant)
	default:
		return replyUnknownCommand
	}
}

func (h *Handlers) handleAdd(tenant string, args []string) string {
	if len(args) < 2 {
		return replyMissingAddArgs
	}
	name, url := args[0], args[1]

	interval := registry.UseDefaultInterval
	if len(args) >= 3 {
		parsed, err := strconv.Atoi(args[2])
		if err != nil || parsed <= 0 {
			return replyInvalidInterval
		}
		interval = parsed
	}

	if err := h.registry.Add(tenant, name, url, interval); err != nil {
		switch {
		case errors.Is(err, watcher.ErrInvalidInterval):
			return replyInvalidInterval
		case errors.Is(err, registry.ErrMissingArgument):
			return replyMissingAddArgs
		default:
			h.logger.Error().Err(err).Str("tenant", tenant).Str("name", name).Msg("Add command failed")
			return fmt.Sprintf("could not start monitoring: %s", name)
		}
	}
	return fmt.Sprintf("monitoring: %s", name)
}

func (h *Handlers) handleRemove(tenant string, args []string) string {
	if len(args) < 1 {
		return replyMissingRemoveArg
	}
	name := args[0]

	if h.registry.Remove(tenant, name) {
		return fmt.Sprintf("stopping the monitor for: %s", name)
	}
	return fmt.Sprintf("no active monitor for: %s", name)
}

func (h *Handlers) handleList(tenant string) string {
	names := h.registry.List(tenant)
	if len(names) == 0 {
		return replyNothingMonitored
	}
	return strings.Join(names, "\n")
}

func (h *Handlers) handleTimer(tenant string, args []string) string {
	if len(args) < 1 {
		return replyMissingTimerArg
	}
	name := args[0]

	interval, err := h.registry.GetInterval(tenant, name)
	if err != nil {
		return replyNoSuchURL
	}
	return fmt.Sprintf("current timer for %s: %ds", name, interval)
}

func (h *Handlers) handleSetTimer(tenant string, args []string) string {
	if len(args) < 2 {
		return replyMissingSetTimerArgs
	}
	name := args[0]

	interval, err := strconv.Atoi(args[1])
	if err != nil {
		return replyInvalidInterval
	}

	applied, err := h.registry.SetInterval(tenant, name, interval)
	if err != nil {
		switch {
		case errors.Is(err, watcher.ErrInvalidInterval):
			return replyInvalidInterval
		case errors.Is(err, registry.ErrNotFound):
			return replyNoSuchURL
		default:
			h.logger.Error().Err(err).Str("tenant", tenant).Str("name", name).Msg("Set timer command failed")
			return replyNoSuchURL
		}
	}
	return fmt.Sprintf("new timer for %s: %ds", name, applied)
}

func (h *Handlers) handleEnd(tenant string) string {
	names := h.registry.RemoveAll(tenant)

	lines := make([]string, 0, len(names)+1)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("stopping the monitor for: %s", name))
	}
	lines = append(lines, "stopping the monitor task for your user")
	return strings.Join(lines, "\n")
}
