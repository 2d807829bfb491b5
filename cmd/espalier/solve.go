package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/presentation/tui"
	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/adapters/redis"
	"github.com/aretw0/espalier/pkg/ports"
	"github.com/aretw0/espalier/pkg/tasks/stones"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [input-file]",
	Short: "Count stones after the given number of blinks",
	Long: `Reads a whitespace-separated list of stone values (from the input file, or
stdin when the file is "-") and evaluates the stone-splitting recursion on the
memoizing solver. With --store redis, solved subgoals are shared across runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		depth := cfg.Solve.Depth
		if cmd.Flags().Changed("depth") {
			depth, _ = cmd.Flags().GetInt("depth")
		}
		if depth < 0 {
			return fmt.Errorf("depth must be non-negative, got %d", depth)
		}

		input := "-"
		if len(args) > 0 {
			input = args[0]
		}
		values, err := readValues(input)
		if err != nil {
			return err
		}

		storeKind, _ := cmd.Flags().GetString("store")
		var store ports.SubtaskStore[stones.Goal, int64]
		switch storeKind {
		case "memory":
			store = memory.New[stones.Goal, int64]()
		case "redis":
			rs := redis.New[stones.Goal, int64](
				cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redis.WithPrefix(cfg.Redis.Prefix),
				redis.WithTTL(time.Duration(cfg.Redis.TTL)),
			)
			defer rs.Close()
			store = rs
		default:
			return fmt.Errorf("unknown store %q (want memory or redis)", storeKind)
		}

		total, err := stones.Count(cmd.Context(), values, depth, store, espalier.WithLogger(logger))
		if err != nil {
			return err
		}

		if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
			return json.NewEncoder(os.Stdout).Encode(map[string]any{
				"depth":  depth,
				"stones": total,
			})
		}

		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			tui.PrintBanner()
		}
		tui.PrintResult(fmt.Sprintf("Stones after %d blinks", depth), total)
		return nil
	},
}

func readValues(path string) ([]int64, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return stones.Parse(string(data))
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().IntP("depth", "d", 25, "Number of blinks to evaluate")
	solveCmd.Flags().String("store", "memory", "Memo store backend (memory or redis)")
	solveCmd.Flags().Bool("json", false, "Emit the result as JSON")
	solveCmd.Flags().BoolP("quiet", "q", false, "Skip the banner")
}
