package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNextTagCmd(flags *rootFlags) *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "next-tag",
		Short: "Print the tag the next release would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// An explicit tag is printed as is, without configuration or GitHub access
			if tag != "" {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
				return nil
			}
			c, err := newContainer(cmd.Context(), flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer c.close()
			next, err := c.orchestrator(cmd.OutOrStdout()).NextTagName(cmd.Context(), "")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "Explicit tag, printed unchanged")
	return cmd
}
