package console

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	isTTYGlobal bool

	// preferredProfile stores the detected or forced color profile
	preferredProfile termenv.Profile
)

func init() {
	isTTYGlobal = IsTerminal(os.Stdout)
	preferredProfile = detectProfile()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// GetPreferredProfile returns the detected or forced color profile
func GetPreferredProfile() termenv.Profile {
	return preferredProfile
}

// SetPreferredProfile explicitly sets the color profile (useful for testing)
func SetPreferredProfile(p termenv.Profile) {
	preferredProfile = p
}

// SetTTY allows forcing the TTY status (useful for testing ANSI output in non-interactive tests).
// Returns the previous value so it can be restored.
func SetTTY(isTTY bool) bool {
	old := isTTYGlobal
	isTTYGlobal = isTTY
	return old
}

// ColorEnabled reports whether Parse emits ANSI sequences.
func ColorEnabled() bool {
	return isTTYGlobal && preferredProfile != termenv.Ascii
}

// detectProfile determines the appropriate color profile based on environment variables.
// Priority: NO_COLOR > COLORTERM > TERM > automatic detection
func detectProfile() termenv.Profile {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return termenv.Ascii
	}

	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "8bit", "256color":
		return termenv.ANSI256
	case "1bit", "2color", "mono", "false", "0":
		return termenv.Ascii
	}

	if strings.ToLower(os.Getenv("TERM")) == "dumb" {
		return termenv.Ascii
	}

	return termenv.EnvColorProfile()
}
