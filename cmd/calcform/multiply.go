package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMultiplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "multiply <num1> <num2>",
		Short: "Print the formatted product of two numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			display := a.calc.Calculate(args[0], args[1])
			if display.Failed() {
				return fmt.Errorf("%s", display.Error)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), display.Result)
			return err
		},
	}
}
