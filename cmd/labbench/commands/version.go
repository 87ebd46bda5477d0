package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labbench/internal/cpu"
)

// version is overridden at build time with -ldflags "-X ...commands.version=v1.2.3".
var version = "dev"

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and host information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.out, "labbench %s\n%s\n", version, cpu.Detect())
			return err
		},
	}
}
