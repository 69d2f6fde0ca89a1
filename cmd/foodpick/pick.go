package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aguxez/foodpick/app"
)

var pickOpen bool

var pickCmd = &cobra.Command{
	Use:   "pick <list>",
	Short: "Pick one food from a list at random",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			g, err := ctrl.Store().Resolve(args[0])
			if err != nil {
				return err
			}
			if err := ctrl.SelectGroup(g.ID); err != nil {
				return err
			}
			food, ok := ctrl.PickRandom()
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s has no foods to pick from\n", renderWarn("!"), g.Title)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "吃這個(ゝ∀･)b %s\n", renderAccent(food))
			if pickOpen {
				// Open failures are logged, not fatal.
				_, _ = ctrl.Lookup(cmd.Context(), food)
			}
			return nil
		})
	},
}

var openCmd = &cobra.Command{
	Use:   "open <food>",
	Short: "Search for a food in the maps application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			u, err := ctrl.Lookup(cmd.Context(), args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s could not open %s\n", renderWarn("!"), u)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Opened %s\n", renderPass("✓"), u)
			return nil
		})
	},
}

func init() {
	pickCmd.Flags().BoolVar(&pickOpen, "open", false, "open the pick in the maps application")

	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(openCmd)
}
