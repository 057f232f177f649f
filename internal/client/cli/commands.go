package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

var ErrUsage = errors.New("usage error")

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"upload":      {"upload [file] [-mode time_based|one_time] [-duration min] [-devices n] [-pin PIN] [-biometric] [-dynamic-pin -rotation min] [-watermark] [-no-auto-terminate]", (*App).upload},
	"access":      {"access <content-id> -key HEX [-pin PIN] [-biometric] [-print]", (*App).access},
	"status":      {"status <content-id>", (*App).status},
	"terminate":   {"terminate <content-id> [-pin PIN]", (*App).terminate},
	"rotate":      {"rotate <content-id> [-pin PIN] [-new PIN]", (*App).rotatePin},
	"report":      {"report <content-id> -type screenshot_attempt|screen_recording|copy_attempt|devtools_open|... [-device ID] [-description text]", (*App).report},
	"certificate": {"certificate <content-id> [-pdf]", (*App).certificate},
	"qr":          {"qr <content-id>", (*App).qr},
	"stats":       {"stats", (*App).stats},
	"list":        {"list [-refresh]", (*App).list},
	"forget":      {"forget <content-id>", (*App).forget},
	"ping":        {"ping", (*App).ping},
}

// Execute runs one command; args[0] is the command name.
func (a *App) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		a.help()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	if err := cmd.run(a, ctx, args[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w\n  %s", err, cmd.usage)
		}
		return err
	}
	return nil
}

func (a *App) help() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Available commands:")
	for _, name := range names {
		fmt.Fprintln(a.out, "  "+commands[name].usage)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseInterspersed parses fs allowing positional arguments between flags,
// so "access ID -pin 1234" and "access -pin 1234 ID" are equivalent.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// contentID parses args and requires exactly one positional content id.
func contentID(fs *flag.FlagSet, args []string) (string, error) {
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return "", err
	}
	if len(positional) != 1 || strings.TrimSpace(positional[0]) == "" {
		return "", fmt.Errorf("%w: expected one content id", ErrUsage)
	}
	return positional[0], nil
}

// pinOrPrompt returns pin, or asks for it on the terminal when empty.
func (a *App) pinOrPrompt(pin, prompt string) (string, error) {
	if pin != "" {
		return pin, nil
	}
	return GetPin(a.out, prompt)
}
