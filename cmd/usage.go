package cmd

import (
	"fmt"
	"io"
	"kytos-utils/internal/console"
	"kytos-utils/internal/version"
	"strings"
)

// PrintHelp prints usage information.
// If target is CommandNone, prints global usage.
func PrintHelp(w io.Writer, target Command) {
	fmt.Fprint(w, console.Parse(GetUsage(target)))
}

// GetUsage returns usage information as a string.
// If target is CommandNone, returns global usage.
// If target is specified, returns usage for that specific command.
func GetUsage(target Command) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}
	appCmd := version.CommandName

	if def, ok := commandDefs[target]; ok {
		printStr(commandLine(appCmd, def))
		printStr("\t" + def.Summary + ".")
		return sb.String()
	}

	printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}] {{_UsageCommand_}}<Command>{{|-|}} [{{_UsageNApp_}}<author/name>{{|-|}}...]", appCmd))
	printStr("")
	printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	printStr("Manage the NApps installed on this host. An installed NApp can be enabled, which")
	printStr("links it into the enabled NApps folder, or disabled, which removes that link.")
	printStr("")
	printStr("The install and enabled folders are read from the '{{_Var_}}napps{{|-|}}' section of the")
	printStr("configuration file. When missing, defaults below {{_Var_}}$VIRTUAL_ENV{{|-|}} (or {{_Folder_}}/{{|-|}}) are")
	printStr("computed and saved.")
	printStr("")
	printStr("Commands:")
	printStr("")
	for _, cmd := range commandOrder {
		def := commandDefs[cmd]
		printStr(commandLine(appCmd, def))
		printStr("\t" + def.Summary + ".")
	}
	printStr("")
	printStr("Flags:")
	printStr("")
	var opts Options
	for _, line := range strings.Split(strings.TrimRight(NewFlagSet(&opts).FlagUsages(), "\n"), "\n") {
		printStr(line)
	}
	return sb.String()
}

func commandLine(appCmd string, def commandDef) string {
	line := fmt.Sprintf("{{_UsageCommand_}}%s %s{{|-|}}", appCmd, def.Name)
	if def.Args != "" {
		line += fmt.Sprintf(" {{_UsageNApp_}}%s{{|-|}}", def.Args)
	}
	return line
}
