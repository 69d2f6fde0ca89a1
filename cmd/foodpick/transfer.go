package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aguxez/foodpick/app"
	"github.com/aguxez/foodpick/export"
	"github.com/aguxez/foodpick/filewatch"
	"github.com/aguxez/foodpick/models"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv|file.xlsx>...",
	Short: "Import food lists from CSV or Excel files",
	Long: `Import food lists from CSV files with a single "Food Name" column, or
from workbooks written by "foodpick export".

For a CSV file the file name without extension is the list title. A
workbook holds one list per column with the title in the first row. An
existing list with the same title has its foods replaced; otherwise a new
list is appended.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			for _, path := range args {
				groups, err := readImport(path)
				if err != nil {
					return fmt.Errorf("importing %s: %w", path, err)
				}
				for _, in := range groups {
					g := ctrl.ImportFoods(in.Title, in.Names())
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d foods\n", renderPass("✓"), g.Title, len(g.Foods))
				}
			}
			return nil
		})
	},
}

func readImport(path string) ([]models.Group, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return export.ReadXLSX(f)
	}

	foods, err := filewatch.ParseFoods(path)
	if err != nil {
		return nil, err
	}
	return []models.Group{models.NewGroup(filewatch.GroupTitle(path), foods...)}, nil
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all lists to .xlsx, .yaml or .json",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := export.FormatFor(args[0]); err != nil {
			return err
		}
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			groups := ctrl.Groups()
			if err := export.ToFile(args[0], groups); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d lists to %s\n", renderPass("✓"), len(groups), args[0])
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace all lists with the defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			c := app.NewConfirmation("重設警告", "確認要刪除所有清單並恢復預設嗎?", func() error {
				ctrl.Reset()
				return nil
			})
			return answer(cmd, c)
		})
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "reset without asking")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}
