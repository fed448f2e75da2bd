package chartfmt

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// NoPauseEnv is the environment marker that disables Pause, for editor or CI
// sessions that keep program output visible on their own.
const NoPauseEnv = "CHARTFMT_NO_PAUSE"

// Pause prompts with msg (or "Press Enter to continue." when empty) and
// blocks until a line is read from stdin, so rendered output stays on screen
// until the user confirms. It is a no-op when NoPauseEnv is set or stdin is
// not a terminal. Read errors are ignored.
func Pause(msg string) {
	if _, ok := os.LookupEnv(NoPauseEnv); ok {
		return
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	if msg == "" {
		msg = "Press Enter to continue."
	}
	fmt.Print(msg)
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
