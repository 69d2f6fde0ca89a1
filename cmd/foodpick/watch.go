package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aguxez/foodpick/app"
	"github.com/aguxez/foodpick/filewatch"
	"github.com/aguxez/foodpick/models"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Keep lists in sync with CSV files in a directory",
	Long: `Import every *.csv file in <dir>, then re-import files whenever they
are written. Runs in the foreground until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		return withController(cmd.Context(), func(ctrl *app.Controller) error {
			fw, err := filewatch.NewFileWatcher([]string{dir}, ctrl)
			if err != nil {
				return err
			}
			defer fw.Close()

			fw.Imported = func(g models.Group) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d foods\n", renderPass("✓"), g.Title, len(g.Foods))
				if err := ctrl.Flush(cmd.Context()); err != nil {
					log.Printf("Failed to save data: %v", err)
				}
			}

			// On start, load what is already there
			err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() {
					if path != dir {
						return filepath.SkipDir
					}
					return nil
				}
				fw.HandleFileChange(path)
				return nil
			})
			if err != nil {
				return fmt.Errorf("scanning %s: %w", dir, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Watching %s\nPress Ctrl+C to stop\n", renderAccent("👀"), dir)
			fw.Start()
			<-cmd.Context().Done()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
