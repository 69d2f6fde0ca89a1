package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aguxez/foodpick/app"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Add, rename or delete foods in a list",
}

var foodAddCmd = &cobra.Command{
	Use:   "add <list> <food>...",
	Short: "Append foods to a list",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			g, err := ctrl.Store().Resolve(args[0])
			if err != nil {
				return err
			}
			added := 0
			for _, name := range args[1:] {
				_, ok, err := ctrl.AddFood(g.ID, name)
				if err != nil {
					return err
				}
				if ok {
					added++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %d to %s\n", renderPass("✓"), added, g.Title)
			return nil
		})
	},
}

var foodRenameCmd = &cobra.Command{
	Use:   "rename <list> <food> <new-name>",
	Short: "Rename a food",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			g, err := ctrl.Store().Resolve(args[0])
			if err != nil {
				return err
			}
			f, err := ctrl.Store().ResolveFood(g.ID, args[1])
			if err != nil {
				return err
			}
			return ctrl.RenameFood(g.ID, f.ID, args[2])
		})
	},
}

var foodRmCmd = &cobra.Command{
	Use:     "rm <list> <food>",
	Aliases: []string{"delete"},
	Short:   "Delete a food after confirmation",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			g, err := ctrl.Store().Resolve(args[0])
			if err != nil {
				return err
			}
			c, err := ctrl.ConfirmDeleteFood(g.ID, args[1])
			if err != nil {
				return err
			}
			return answer(cmd, c)
		})
	},
}

func init() {
	foodRmCmd.Flags().BoolP("yes", "y", false, "delete without asking")

	foodCmd.AddCommand(foodAddCmd)
	foodCmd.AddCommand(foodRenameCmd)
	foodCmd.AddCommand(foodRmCmd)
	rootCmd.AddCommand(foodCmd)
}
