package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aguxez/foodpick/app"
	"github.com/aguxez/foodpick/config"
	"github.com/aguxez/foodpick/lookup"
	"github.com/aguxez/foodpick/models"
	"github.com/aguxez/foodpick/storage"
	"github.com/aguxez/foodpick/tui"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "foodpick",
	Short: "Keep lists of foods and let chance decide what to eat",
	Long: `foodpick keeps named lists of foods on this machine and picks one at
random from the list you select.

Run without a subcommand to open the interactive picker.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive picker",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func runTUI(ctx context.Context) error {
	return withController(ctx, func(ctrl *app.Controller) error {
		return tui.Run(ctx, ctrl)
	})
}

// session is everything a command needs, opened per invocation.
type session struct {
	ctrl   *app.Controller
	kv     *storage.SQLiteKV
	logOut io.Closer
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}

	logOut, err := config.SetupLogging(cfg.Log)
	if err != nil {
		return nil, err
	}

	kv, err := storage.OpenSQLite(ctx, cfg.DBPath())
	if err != nil {
		_ = logOut.Close()
		return nil, err
	}

	adapter := storage.NewAdapter(kv)
	groups, err := adapter.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrCorruptState):
		log.Printf("Failed to load data: %v", err)
		fmt.Fprintf(os.Stderr, "Warning: saved lists could not be read, restored defaults (backup kept under %q)\n", storage.CorruptKey)
	case err != nil:
		_ = kv.Close()
		_ = logOut.Close()
		return nil, err
	}

	store := models.NewStateManager(groups)
	saver := storage.NewSaver(adapter, store.Groups, cfg.SaveDebounce)
	ctrl := app.New(app.Deps{
		Store:           store,
		Persister:       saver,
		Opener:          lookup.NewOpener(cfg.Lookup.MapCommand),
		DoubleTapWindow: cfg.DoubleTapWindow,
	})

	return &session{ctrl: ctrl, kv: kv, logOut: logOut}, nil
}

func (s *session) Close() error {
	// Flush with a fresh context: the command's may already be cancelled.
	err := s.ctrl.Close(context.Background())
	if err != nil {
		log.Printf("Failed to save data: %v", err)
	}
	return errors.Join(err, s.kv.Close(), s.logOut.Close())
}

func withController(ctx context.Context, fn func(*app.Controller) error) (err error) {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, s.Close())
	}()
	return fn(s.ctrl)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/foodpick/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding foodpick.db")
	_ = v.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	rootCmd.AddCommand(tuiCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
