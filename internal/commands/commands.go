package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
)

// ErrNoCommand is returned by Execute when args name no subcommand.
var ErrNoCommand = errors.New("missing subcommand")

// UsageError marks an Execute failure caused by the command line itself rather than by Run.
// Callers print usage for these only.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first process argument (e.g. "basic").
// fs is that command's FlagSet; run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered subcommand names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// A missing or unknown command and a flag parse error come back as *UsageError;
// errors from Run() are returned unchanged.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return &UsageError{Err: ErrNoCommand}
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return &UsageError{Err: fmt.Errorf("unknown command: %s", name)}
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return &UsageError{Err: err}
	}
	return cmd.Run()
}

// Usage writes one line per subcommand: its name and summary.
func (r *Registry) Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s <command> [flags]\n\ncommands:\n", program)
	for _, name := range r.Names() {
		fmt.Fprintf(w, "  %-10s %s\n", name, r.cmds[name].Summary)
	}
}
