package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/roshambo/internal/engine"
	"github.com/abhisek/roshambo/internal/game"
	"github.com/abhisek/roshambo/internal/strategy"
)

// maxSimRounds caps first-to simulations; an all-tie match would
// otherwise never terminate.
const maxSimRounds = 10000

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless match and print every round",
	Long: "Simulate plays the human seat automatically — either a fixed move or a " +
		"strategy of its own — against the computer, and prints the round log.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := simConfigFromFlags(cmd)
		if err != nil {
			return err
		}

		switch cfg.variant {
		case game.Extended:
			return runSimulation(cmd, game.NewExtended(), cfg)
		case game.FireWater:
			return runSimulation(cmd, game.NewFireWater(), cfg)
		default:
			return runSimulation(cmd, game.NewClassic(), cfg)
		}
	},
}

func init() {
	simulateCmd.Flags().String("variant", "classic", "Rule set: classic, extended, fire-water")
	simulateCmd.Flags().String("strategy", "predictive", "Computer strategy: random, predictive")
	simulateCmd.Flags().String("opponent", "random", "Strategy driving the human seat: random, predictive")
	simulateCmd.Flags().String("always", "", "Fixed move for the human seat (overrides --opponent)")
	simulateCmd.Flags().String("mode", "first-to", "Termination rule: first-to, fixed")
	simulateCmd.Flags().Int("target", 3, "Score or round target")
	simulateCmd.Flags().Int64("seed", 0, "Random seed (0 means time-seeded)")
}

type simConfig struct {
	variant  game.Variant
	strategy strategy.Kind
	opponent strategy.Kind
	always   string
	mode     engine.Mode
	target   int
	seed     int64
}

func simConfigFromFlags(cmd *cobra.Command) (simConfig, error) {
	var cfg simConfig
	var err error

	variantFlag, _ := cmd.Flags().GetString("variant")
	if cfg.variant, err = game.ParseVariant(variantFlag); err != nil {
		return cfg, err
	}
	strategyFlag, _ := cmd.Flags().GetString("strategy")
	if cfg.strategy, err = strategy.ParseKind(strategyFlag); err != nil {
		return cfg, err
	}
	opponentFlag, _ := cmd.Flags().GetString("opponent")
	if cfg.opponent, err = strategy.ParseKind(opponentFlag); err != nil {
		return cfg, err
	}
	modeFlag, _ := cmd.Flags().GetString("mode")
	if cfg.mode, err = engine.ParseMode(modeFlag); err != nil {
		return cfg, err
	}
	cfg.always, _ = cmd.Flags().GetString("always")
	cfg.target, _ = cmd.Flags().GetInt("target")
	cfg.seed, _ = cmd.Flags().GetInt64("seed")
	return cfg, nil
}

func runSimulation[M game.Move](cmd *cobra.Command, rules *game.RuleSet[M], cfg simConfig) error {
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	choose, err := humanSeat(rules, cfg, rng)
	if err != nil {
		return err
	}
	human := engine.NewHumanPlayer("P1", choose)
	computer := engine.NewComputerPlayer("CPU", strategy.New[M](cfg.strategy, rng))

	g, err := engine.New(rules, human, computer, cfg.mode, cfg.target)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for !g.IsOver() && g.RoundsPlayed() < maxSimRounds {
		rr, err := g.PlayRound()
		if err != nil {
			return err
		}
		verdict := "tie"
		switch rr.Outcome {
		case engine.HumanWin:
			verdict = "P1"
		case engine.ComputerWin:
			verdict = "CPU"
		}
		fmt.Fprintf(out, "round %d: P1 %s vs CPU %s — %s (%d:%d)\n",
			rr.Round, rr.HumanAction, rr.ComputerAction, verdict,
			rr.HumanScore, rr.ComputerScore)
	}

	sum := g.Summary()
	if !g.IsOver() {
		fmt.Fprintf(out, "stopped after %d rounds without a winner\n", sum.RoundsPlayed)
	}
	fmt.Fprintf(out, "final: P1 %d — CPU %d (%s) in %d rounds [game %s]\n",
		sum.HumanScore, sum.ComputerScore, sum.Result, sum.RoundsPlayed, sum.ID)
	return nil
}

// humanSeat picks the chooser for the simulated human: a fixed move
// when --always is set, otherwise the --opponent strategy.
func humanSeat[M game.Move](rules *game.RuleSet[M], cfg simConfig, rng *rand.Rand) (engine.ChooseFunc[M], error) {
	if cfg.always != "" {
		var fixed M
		found := false
		for _, a := range rules.ValidActions() {
			if a.String() == cfg.always {
				fixed = a
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("move %q is not in the %s variant", cfg.always, cfg.variant)
		}
		return func(valid []M) M { return fixed }, nil
	}

	seat := strategy.New[M](cfg.opponent, rng)
	return seat.SelectAction, nil
}
