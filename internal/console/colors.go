package console

// Raw ANSI Color Codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold      = "\033[1m"
	CodeDim       = "\033[2m"
	CodeUnderline = "\033[4m"

	// Foreground
	CodeBlack   = "\033[30m"
	CodeRed     = "\033[31m"
	CodeGreen   = "\033[32m"
	CodeYellow  = "\033[33m"
	CodeBlue    = "\033[34m"
	CodeMagenta = "\033[35m"
	CodeCyan    = "\033[36m"
	CodeWhite   = "\033[37m"

	// Background
	CodeRedBg = "\033[41m"
)

// ansiMap stores color/modifier names usable in {{|name|}} tags.
var ansiMap = map[string]string{
	"-":         CodeReset,
	"reset":     CodeReset,
	"bold":      CodeBold,
	"dim":       CodeDim,
	"underline": CodeUnderline,
	"black":     CodeBlack,
	"red":       CodeRed,
	"green":     CodeGreen,
	"yellow":    CodeYellow,
	"blue":      CodeBlue,
	"magenta":   CodeMagenta,
	"cyan":      CodeCyan,
	"white":     CodeWhite,
}

// semanticMap maps semantic tag names (lowercase) to ANSI sequences.
var semanticMap = map[string]string{
	"applicationname":  CodeCyan + CodeBold,
	"version":          CodeCyan,
	"napp":             CodeCyan,
	"file":             CodeCyan,
	"folder":           CodeCyan,
	"var":              CodeMagenta,
	"usercommand":      CodeYellow,
	"usercommanderror": CodeRed,
	"usagecommand":     CodeYellow + CodeBold,
	"usagenapp":        CodeCyan,
	"statusenabled":    CodeGreen,
	"statusdisabled":   CodeYellow,
}

// RegisterSemanticTag adds or replaces a semantic tag definition.
func RegisterSemanticTag(name, ansi string) {
	semanticMap[normalizeTag(name)] = ansi
}
