package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/GameraCC/gym/internal/cli"
	"github.com/GameraCC/gym/internal/cli/model"
	"github.com/GameraCC/gym/internal/infrastructure/config"
	"github.com/GameraCC/gym/internal/logging"
	"github.com/GameraCC/gym/internal/ui/keyboard"
)

var keypadScreen string

var keypadCmd = &cobra.Command{
	Use:   "keypad",
	Short: "Open an input screen on the shared keypad",
	Long: `Open a screen of fields that share one on-screen numeric keypad.

The first field is focused on start. Digits and '.' type into the focused
field, +/- change it by the configured increment step, enter continues to
the next field and esc hides the keypad. Tab and shift+tab move between
fields. The increment step is reloaded when config.toml changes.

Examples:
  gym keypad                    # Open the default screen
  gym keypad --screen bench     # Open the screen named bench`,
	RunE: runKeypad,
}

func init() {
	rootCmd.AddCommand(keypadCmd)
	keypadCmd.Flags().StringVarP(&keypadScreen, "screen", "s", "", "screen to open (default keypad.default_screen)")
}

func runKeypad(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config
	name := keypadScreen
	if name == "" {
		name = cfg.Keypad.DefaultScreen
	}
	screen, ok := cfg.Screen(name)
	if !ok {
		return fmt.Errorf("screen %q is not configured", name)
	}
	fields, err := cli.ScreenFields(screen, cfg.Keypad.Kind)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	store := keyboard.NewStore()
	unobserve := store.Observe(keyboard.NewLoggingObserver())
	defer unobserve()

	m, err := model.NewKeypadModel(ctx, app.Theme, model.KeypadModelConfig{
		Title:         screen.Title,
		Fields:        fields,
		IncrementStep: cfg.Keypad.IncrementStep,
		ContinueLabel: cfg.Keypad.ContinueLabel,
		Store:         store,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)

	app.ConfigManager.OnConfigChange(func(next *config.Config) {
		p.Send(model.IncrementStepMsg{Step: next.Keypad.IncrementStep})
	})
	if err := app.ConfigManager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	runCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(runCtx)

	var final tea.Model
	g.Go(func() error {
		defer cancel()
		var runErr error
		final, runErr = p.Run()
		return runErr
	})
	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run keypad: %w", err)
	}

	km, ok := final.(model.KeypadModel)
	if !ok {
		return nil
	}
	for _, v := range km.Values() {
		fmt.Printf("%s=%s\n", v.Key, v.Value)
	}
	log.Info().Str("screen", screen.Name).Uint64("continues", km.Store().State().ContinueCount).Msg("keypad closed")
	return nil
}
