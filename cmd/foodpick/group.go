package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/aguxez/foodpick/app"
)

var groupCmd = &cobra.Command{
	Use:     "group",
	Aliases: []string{"list"},
	Short:   "Add, rename or delete food lists",
}

var groupAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Append a new, empty list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			g, ok := ctrl.AddGroup(args[0])
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Nothing added: the title is empty")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s (%s)\n", renderPass("✓"), g.Title, shortID(g.ID))
			return nil
		})
	},
}

var groupRenameCmd = &cobra.Command{
	Use:   "rename <list> <new-title>",
	Short: "Rename a list",
	Long: `Rename a list. <list> is an id, an id prefix or the current title.
The new title may be empty.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			g, err := ctrl.Store().Resolve(args[0])
			if err != nil {
				return err
			}
			return ctrl.RenameGroup(g.ID, args[1])
		})
	},
}

var groupRmCmd = &cobra.Command{
	Use:     "rm <list>",
	Aliases: []string{"delete"},
	Short:   "Delete a list after confirmation",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			g, err := ctrl.Store().Resolve(args[0])
			if err != nil {
				return err
			}
			c, err := ctrl.ConfirmDeleteGroup(g.ID)
			if err != nil {
				return err
			}
			return answer(cmd, c)
		})
	},
}

// answer asks the user about c unless --yes was given.
func answer(cmd *cobra.Command, c *app.Confirmation) error {
	ok, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}
	if !ok {
		err = huh.NewConfirm().
			Title(c.Title).
			Description(c.Message).
			Affirmative("確定").
			Negative("取消").
			Value(&ok).
			Run()
		if err != nil {
			c.Cancel()
			return fmt.Errorf("asking for confirmation: %w", err)
		}
	}
	if !ok {
		c.Cancel()
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return nil
	}
	if err := c.Accept(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted\n", renderPass("✓"))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	groupRmCmd.Flags().BoolP("yes", "y", false, "delete without asking")

	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupRenameCmd)
	groupCmd.AddCommand(groupRmCmd)
	rootCmd.AddCommand(groupCmd)
}
