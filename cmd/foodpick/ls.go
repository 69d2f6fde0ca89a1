package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/aguxez/foodpick/app"
	"github.com/aguxez/foodpick/models"
)

var lsPlain bool

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Show all lists and their foods",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			md := groupsMarkdown(ctrl.Groups())
			if lsPlain {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			out, err := glamour.Render(md, "auto")
			if err != nil {
				return fmt.Errorf("rendering list: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		})
	},
}

func groupsMarkdown(groups []models.Group) string {
	var b strings.Builder
	b.WriteString("# 美食選擇器\n\n")
	if len(groups) == 0 {
		b.WriteString("_no lists yet_\n")
		return b.String()
	}
	for _, g := range groups {
		title := g.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(&b, "## %s\n\n`%s` · 數量：%d\n\n", title, shortID(g.ID), len(g.Foods))
		for _, f := range g.Foods {
			fmt.Fprintf(&b, "- %s\n", f.Name)
		}
		if len(g.Foods) > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func init() {
	lsCmd.Flags().BoolVar(&lsPlain, "plain", false, "print raw markdown")
	rootCmd.AddCommand(lsCmd)
}
