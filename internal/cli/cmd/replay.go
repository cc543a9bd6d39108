package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GameraCC/gym/internal/application/usecase"
	"github.com/GameraCC/gym/internal/cli"
	"github.com/GameraCC/gym/internal/cli/styles"
	"github.com/GameraCC/gym/internal/domain/entity"
	"github.com/GameraCC/gym/internal/infrastructure/scenario"
)

var replayQuiet bool

// errReplayFailed is returned after the report has been printed.
var errReplayFailed = errors.New("replay failed")

var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Run a scripted keypad session against a screen",
	Long: `Replay a scripted sequence of field taps and keypad presses against a
configured screen, without a terminal UI.

After every step the keypad buffer is checked against the subscribed field.
At the end the field values are compared with the scenario's expectations.
The command exits non-zero when any check fails.

Scenario files may be TOML, YAML or JSON:

  name = "log a set"
  screen = "log-set"

  [[steps]]
  action = "focus"
  field = "sets"

  [[steps]]
  action = "input"
  token = "3"

  [[steps]]
  action = "continue"

  [[expect]]
  field = "sets"
  value = "3"

Examples:
  gym replay bench.toml          # Replay and print every step
  gym replay bench.toml --quiet  # Only print the result`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVarP(&replayQuiet, "quiet", "q", false, "only print the result")
}

func runReplay(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	cfg := app.Config

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	name := sc.Screen
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
	registry, err := cli.NewHeadlessScreen(ctx, fields)
	if err != nil {
		return err
	}
	defer registry.CloseAll(ctx)

	uc := usecase.NewReplayScenarioUseCase(registry, registry.Store())
	out, err := uc.Execute(ctx, *sc)
	if err != nil {
		return fmt.Errorf("replay %s: %w", sc.Name, err)
	}

	renderer := styles.NewReplayRenderer(app.Theme)
	if !replayQuiet {
		fmt.Print(renderer.RenderSteps(sc.Name, replayLines(out.Frames)))
	}

	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, string(f.Key))
	}
	values := make(map[string]string)
	for k, v := range out.Final().Values {
		values[string(k)] = v
	}

	problems := append(append([]string{}, out.Violations...), out.Mismatches...)
	fmt.Print(renderer.RenderResult(keys, values, problems))

	if !out.OK() {
		return errReplayFailed
	}
	return nil
}

func replayLines(frames []usecase.ReplayFrame) []styles.ReplayLine {
	lines := make([]styles.ReplayLine, 0, len(frames))
	for _, f := range frames {
		lines = append(lines, styles.ReplayLine{
			Index:   f.Index,
			Action:  string(f.Step.Action),
			Detail:  stepDetail(f.Step),
			Active:  string(f.Active),
			Buffer:  f.State.Buffer,
			Visible: f.State.Visible,
		})
	}
	return lines
}

func stepDetail(s entity.ScenarioStep) string {
	switch s.Action {
	case entity.ActionFocus, entity.ActionBlur, entity.ActionUnmount:
		return string(s.Field)
	case entity.ActionInput:
		return strconv.Quote(s.Token)
	case entity.ActionIncrement:
		if s.Amount < 0 {
			return styles.DecrementLabel(-s.Amount)
		}
		return styles.IncrementLabel(s.Amount)
	default:
		return ""
	}
}
