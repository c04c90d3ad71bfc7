package main

import (
	"fmt"

	"github.com/dhamidi/parc"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var showBuild bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the parc version",
		Run: func(cmd *cobra.Command, args []string) {
			if showBuild {
				fmt.Println(parc.Version().String())
				return
			}
			fmt.Println(parc.Version().Core())
		},
	}

	cmd.Flags().BoolVar(&showBuild, "build", false, "include build metadata")

	return cmd
}
