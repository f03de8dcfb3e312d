package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"kytos-utils/cmd"
	"kytos-utils/internal/console"
	"kytos-utils/internal/logger"
	"kytos-utils/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger())
	ctx := context.Background()

	defer logger.Cleanup()

	// Recover from logger.FatalError so the log file is closed
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); !ok {
				panic(r)
			}
			exitCode = 1
		}
		if exitCode != 0 {
			fmt.Fprintln(os.Stderr, console.Parse(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName)))
		}
	}()

	inv, err := cmd.Parse(os.Args[1:])
	if err != nil {
		logger.Error(ctx, err.Error())
		return 1
	}

	return cmd.Execute(ctx, inv)
}
