package cmd

import (
	"fmt"
	"kytos-utils/internal/version"
	"strings"
)

// Command identifies a subcommand.
type Command int

const (
	CommandNone Command = iota
	CommandEnable
	CommandDisable
	CommandList
	CommandPaths
	CommandHelp
	CommandVersion
)

// commandDef describes the arguments a subcommand accepts.
type commandDef struct {
	Name    string
	Args    string
	Summary string
	MinArgs int
	MaxArgs int // -1 for unlimited
}

var commandDefs = map[Command]commandDef{
	CommandEnable:  {Name: "enable", Args: "<author/name>...", Summary: "Enable one or more installed NApps", MinArgs: 1, MaxArgs: -1},
	CommandDisable: {Name: "disable", Args: "<author/name>...", Summary: "Disable one or more enabled NApps", MinArgs: 1, MaxArgs: -1},
	CommandList:    {Name: "list", Summary: "List installed NApps and their status"},
	CommandPaths:   {Name: "paths", Summary: "Show the install and enabled NApp folders"},
	CommandHelp:    {Name: "help", Args: "[command]", Summary: "Show help", MaxArgs: 1},
	CommandVersion: {Name: "version", Summary: "Show version"},
}

// commandOrder is the order commands are listed in help output.
var commandOrder = []Command{CommandEnable, CommandDisable, CommandList, CommandPaths, CommandHelp, CommandVersion}

func (c Command) String() string {
	if def, ok := commandDefs[c]; ok {
		return def.Name
	}
	return ""
}

// LookupCommand returns the command with the given name.
func LookupCommand(name string) (Command, bool) {
	for cmd, def := range commandDefs {
		if def.Name == name {
			return cmd, true
		}
	}
	return CommandNone, false
}

// Invocation is a parsed command line.
type Invocation struct {
	Command Command
	Args    []string
	Options Options
}

// ParseError wraps argument parsing errors, pointing at the offending argument.
type ParseError struct {
	Args    []string // The full argument list passed to Parse
	Index   int      // The index where the error occurred
	Message string   // The specific error message, %o is replaced by the failing argument
	Command Command  // The command being processed, if known
}

func (e *ParseError) Error() string {
	indent := "   "

	cmdLineParts := []string{fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName)}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		if i == e.Index {
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", e.Args[i]))
		} else {
			cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", e.Args[i]))
		}
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	// "   " + "'" + command + " "
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandError_}}^{{|-|}}"

	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	msg := strings.ReplaceAll(e.Message, "%o", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", failingOpt))

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, msg)
	if e.Command != CommandNone {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(strings.TrimRight(GetUsage(e.Command), "\n"), "\n") {
			out += indent + line + "\n"
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}
	return out
}

// Parse parses the raw command line arguments into an Invocation.
// Flags may appear anywhere; the first positional argument names the command.
func Parse(args []string) (Invocation, error) {
	var inv Invocation
	fs := NewFlagSet(&inv.Options)
	if err := fs.Parse(args); err != nil {
		return inv, &ParseError{Args: args, Index: failingFlagIndex(args, err), Message: err.Error()}
	}

	positional := fs.Args()
	switch {
	case inv.Options.Help:
		inv.Command = CommandHelp
		inv.Args = positional[:min(len(positional), 1)]
		return inv, nil
	case inv.Options.Version:
		inv.Command = CommandVersion
		return inv, nil
	case len(positional) == 0:
		inv.Command = CommandHelp
		return inv, nil
	}

	cmdIndex := indexOf(args, positional[0], 0)
	cmd, ok := LookupCommand(positional[0])
	if !ok {
		return inv, &ParseError{Args: args, Index: cmdIndex, Message: "Invalid command %o"}
	}
	def := commandDefs[cmd]
	inv.Command = cmd
	inv.Args = positional[1:]

	if len(inv.Args) < def.MinArgs {
		return inv, &ParseError{Args: args, Index: cmdIndex, Command: cmd, Message: fmt.Sprintf("Command %%o requires at least %d argument(s).", def.MinArgs)}
	}
	if def.MaxArgs >= 0 && len(inv.Args) > def.MaxArgs {
		extra := indexOf(args, inv.Args[def.MaxArgs], cmdIndex+1)
		return inv, &ParseError{Args: args, Index: extra, Command: cmd, Message: "Unexpected argument %o"}
	}
	return inv, nil
}

// indexOf returns the position of s in args at or after from, or len(args).
func indexOf(args []string, s string, from int) int {
	for i := from; i < len(args); i++ {
		if args[i] == s {
			return i
		}
	}
	return len(args)
}

// failingFlagIndex finds the argument pflag complained about. pflag ends
// its messages with the offending token ("unknown flag: --foo").
func failingFlagIndex(args []string, err error) int {
	msg := err.Error()
	for i := len(args) - 1; i >= 0; i-- {
		token := strings.SplitN(args[i], "=", 2)[0]
		if strings.HasPrefix(token, "-") && strings.HasSuffix(msg, token) {
			return i
		}
	}
	for i := len(args) - 1; i >= 0; i-- {
		token := strings.SplitN(args[i], "=", 2)[0]
		if strings.HasPrefix(token, "--") && strings.Contains(msg, token) {
			return i
		}
	}
	return max(len(args)-1, 0)
}
