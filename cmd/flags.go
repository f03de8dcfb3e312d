package cmd

import (
	"io"

	"github.com/spf13/pflag"
)

// Options holds the global flags.
type Options struct {
	Verbose    bool
	Debug      bool
	Help       bool
	Version    bool
	ConfigFile string
}

// NewFlagSet defines the pflags used for parsing and help, bound to opts.
func NewFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("kytos-napps", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&opts.Debug, "debug", "x", false, "Debug output")
	fs.StringVarP(&opts.ConfigFile, "config", "c", "", "Use this configuration file instead of the default")
	fs.BoolVarP(&opts.Help, "help", "h", false, "Show help")
	fs.BoolVarP(&opts.Version, "version", "V", false, "Show version")
	return fs
}
