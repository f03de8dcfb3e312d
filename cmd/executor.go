package cmd

import (
	"context"
	"fmt"
	"io"
	"kytos-utils/internal/config"
	"kytos-utils/internal/console"
	"kytos-utils/internal/constants"
	"kytos-utils/internal/logger"
	"kytos-utils/internal/napps"
	"kytos-utils/internal/napps/local"
	"kytos-utils/internal/paths"
	"kytos-utils/internal/version"
	"os"
	"strings"
)

// Executor runs parsed invocations.
type Executor struct {
	Out        io.Writer
	ConfigPath string
	LegacyPath string
	LookupEnv  func(string) (string, bool)
	NewManager func(installPath, enabledPath string) napps.Manager
}

// NewExecutor returns an Executor wired to the process environment.
func NewExecutor() *Executor {
	return &Executor{
		Out:        os.Stdout,
		ConfigPath: paths.GetConfigFilePath(),
		LegacyPath: paths.GetLegacyConfigFilePath(),
		LookupEnv:  os.LookupEnv,
		NewManager: func(installPath, enabledPath string) napps.Manager {
			return local.NewManager(installPath, enabledPath)
		},
	}
}

type handler func(ctx context.Context, e *Executor, inv Invocation) error

// handlers is the dispatch table, one entry per Command.
var handlers = map[Command]handler{
	CommandEnable:  handleEnable,
	CommandDisable: handleDisable,
	CommandList:    handleList,
	CommandPaths:   handlePaths,
	CommandHelp:    handleHelp,
	CommandVersion: handleVersion,
}

// Execute runs inv with the default Executor.
func Execute(ctx context.Context, inv Invocation) int {
	if inv.Options.ConfigFile != "" {
		paths.ConfigFileOverride = inv.Options.ConfigFile
	}
	return NewExecutor().Execute(ctx, inv)
}

// Execute runs inv and returns the process exit code.
func (e *Executor) Execute(ctx context.Context, inv Invocation) int {
	switch {
	case inv.Options.Debug:
		logger.SetLevel(logger.LevelDebug)
	case inv.Options.Verbose:
		logger.SetLevel(logger.LevelInfo)
	}

	h, ok := handlers[inv.Command]
	if !ok {
		logger.FatalNoTrace(ctx, "No handler for command %d.", inv.Command)
	}

	logger.Debug(ctx, "Execution Args -> Command: %s, Args: %v, Options: %+v", inv.Command, inv.Args, inv.Options)
	if err := h(ctx, e, inv); err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}
	return 0
}

func (e *Executor) resolver(ctx context.Context) (*napps.PathResolver, error) {
	store, err := config.Open(ctx, config.Options{Path: e.ConfigPath, LegacyPath: e.LegacyPath})
	if err != nil {
		return nil, err
	}
	return napps.NewPathResolver(store.NApps()).WithEnv(e.LookupEnv), nil
}

// managerFor resolves both NApp folders and returns a manager for them.
func (e *Executor) managerFor(ctx context.Context) (napps.Manager, *napps.PathResolver, error) {
	r, err := e.resolver(ctx)
	if err != nil {
		return nil, nil, err
	}
	installPath, err := r.InstallPath(ctx)
	if err != nil {
		return nil, nil, err
	}
	enabledPath, err := r.EnabledPath(ctx)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug(ctx, "Install folder '{{_Folder_}}%s{{|-|}}', enabled folder '{{_Folder_}}%s{{|-|}}'", installPath, enabledPath)
	return e.NewManager(installPath, enabledPath), r, nil
}

func handleEnable(ctx context.Context, e *Executor, inv Invocation) error {
	list, err := napps.ParseAll(inv.Args)
	if err != nil {
		return err
	}

	mgr, _, err := e.managerFor(ctx)
	if err != nil {
		return err
	}
	for _, napp := range list {
		if err := mgr.Enable(ctx, napp); err != nil {
			return err
		}
	}
	return nil
}

func handleDisable(ctx context.Context, e *Executor, inv Invocation) error {
	list, err := napps.ParseAll(inv.Args)
	if err != nil {
		return err
	}

	// Disabling only touches the enabled folder
	r, err := e.resolver(ctx)
	if err != nil {
		return err
	}
	enabledPath, err := r.EnabledPath(ctx)
	if err != nil {
		return err
	}
	mgr := e.NewManager("", enabledPath)
	for _, napp := range list {
		if err := mgr.Disable(ctx, napp); err != nil {
			return err
		}
	}
	return nil
}

func handleList(ctx context.Context, e *Executor, inv Invocation) error {
	mgr, _, err := e.managerFor(ctx)
	if err != nil {
		return err
	}
	enabled, disabled, err := napps.List(ctx, mgr)
	if err != nil {
		return err
	}
	return napps.PrintStatus(e.Out, enabled, disabled)
}

func handlePaths(ctx context.Context, e *Executor, inv Invocation) error {
	r, err := e.resolver(ctx)
	if err != nil {
		return err
	}
	installPath, err := r.InstallPath(ctx)
	if err != nil {
		return err
	}
	enabledPath, err := r.EnabledPath(ctx)
	if err != nil {
		return err
	}

	headers := []string{"{{_UsageCommand_}}Option{{|-|}}", "{{_UsageCommand_}}Value{{|-|}}"}
	data := []string{
		"{{_Var_}}" + constants.EnabledPathKey + "{{|-|}}", "{{_Folder_}}" + enabledPath + "{{|-|}}",
		"{{_Var_}}" + constants.InstallPathKey + "{{|-|}}", "{{_Folder_}}" + installPath + "{{|-|}}",
	}
	fmt.Fprintln(e.Out, console.Parse(fmt.Sprintf("Configuration file: '{{_File_}}%s{{|-|}}'", e.ConfigPath)))
	console.PrintTable(e.Out, headers, data, console.ColorEnabled())
	return nil
}

func handleHelp(ctx context.Context, e *Executor, inv Invocation) error {
	target := CommandNone
	if len(inv.Args) > 0 {
		cmd, ok := LookupCommand(strings.TrimLeft(inv.Args[0], "-"))
		if !ok {
			return fmt.Errorf("no help for unknown command '{{_UserCommand_}}%s{{|-|}}'", inv.Args[0])
		}
		target = cmd
	}
	PrintHelp(e.Out, target)
	return nil
}

func handleVersion(ctx context.Context, e *Executor, inv Invocation) error {
	fmt.Fprintln(e.Out, console.Parse(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}] (commit %s, built %s)", version.ApplicationName, version.Version, version.Commit, version.BuildDate)))
	return nil
}
