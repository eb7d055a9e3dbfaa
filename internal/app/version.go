// internal/app/version.go
package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"orifind/internal/version"
)

func newVersionCmd(ran *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			*ran = true
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "orifind version %s\n", version.Version)
		},
	}
}
