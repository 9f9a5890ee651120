package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-calcform/pkg/i18n"
	"github.com/goliatone/go-calcform/pkg/renderers/tui"
)

func newPromptCmd(a *app) *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Multiply numbers interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := tui.New(
				tui.WithCalculator(a.calc),
				tui.WithRepeat(!once),
				tui.WithLabels(promptLabels(a.catalog)),
			)
			if err != nil {
				return err
			}
			_, err = session.Run(cmd.Context())
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "exit after a single calculation")
	return cmd
}

func promptLabels(catalog *i18n.Catalog) tui.Labels {
	return tui.Labels{
		First:  catalog.T(i18n.MsgFirstNumber),
		Second: catalog.T(i18n.MsgSecondNumber),
		Again:  catalog.T(i18n.MsgAgain),
	}
}
