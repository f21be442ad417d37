package env

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-hdgen/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the currently applied env

The mnemonic and passphrase are never printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnv(cmd)
		},
	}
}

func runEnv(cmd *cobra.Command) error {
	cfg := config.DefaultGeneratorConfigFromEnv()

	c, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal the env")
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(c))

	return nil
}
