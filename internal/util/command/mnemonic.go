package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// StdinMarker as flag value reads the mnemonic from stdin.
const StdinMarker = "-"

// ReadMnemonic resolves the mnemonic for cmd in this order: the --mnemonic
// flag (StdinMarker reads stdin), fallback (usually $WALLET_MNEMONIC), and a
// hidden terminal prompt when stdin is a terminal. An empty result is
// returned as is and rejected later by the seed manager.
func ReadMnemonic(cmd *cobra.Command, fallback string) (string, error) {
	value, err := cmd.Flags().GetString(FlagMnemonic)
	if err != nil {
		return "", errors.Wrap(err, "failed to read mnemonic flag")
	}

	switch {
	case value == StdinMarker:
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, "failed to read mnemonic from stdin")
		}
		return strings.TrimSpace(string(b)), nil
	case value != "":
		return value, nil
	case fallback != "":
		return fallback, nil
	}

	//nolint:gosec // file descriptors fit into int
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	return promptSecret(cmd.ErrOrStderr(), fd, "Enter mnemonic: ")
}

// promptSecret prompts for input without echoing it
func promptSecret(out io.Writer, fd int, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	b, err := term.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "failed to read from terminal")
	}

	// New line after hidden input
	fmt.Fprintln(out)

	return strings.TrimSpace(string(b)), nil
}
