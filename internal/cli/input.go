package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// getPassword prints a prompt to w and reads a password from the terminal
// without echo. The caller should wipe the returned slice.
func getPassword(w io.Writer) ([]byte, error) {
	fmt.Fprint(w, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
