package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/fyerfyer/fyer-intervals/internal/checker"
)

// fuzzCmd 表示fuzz命令，运行随机差分测试
var fuzzCmd = &cobra.Command{
	Use:   "fuzz",
	Short: "Run randomized differential checks",
	Long: `Run randomized differential checks of the interval set implementation.
Each trial feeds two random integer batches through every set operation and
cross-checks the results against a plain hash set. The first mismatch stops
the run and prints the failing inputs together with the seed to reproduce.`,
	Example: `  ivcli fuzz --trials 1000 --count 700 --min 0 --max 999
  ivcli fuzz --seed 42 --progress-per-second 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		trials, _ := cmd.Flags().GetInt("trials")
		count, _ := cmd.Flags().GetInt("count")
		min, _ := cmd.Flags().GetInt("min")
		max, _ := cmd.Flags().GetInt("max")
		seed, _ := cmd.Flags().GetInt64("seed")
		perSecond, _ := cmd.Flags().GetFloat64("progress-per-second")

		runner, err := checker.NewRunner(checker.Config{
			Trials: trials,
			Count:  count,
			Min:    min,
			Max:    max,
			Seed:   seed,
		})
		if err != nil {
			return fmt.Errorf("failed to create runner: %w", err)
		}

		// 进度输出限速，避免大轮数时刷屏
		var progress func(done int)
		if perSecond > 0 {
			limiter := rate.NewLimiter(rate.Limit(perSecond), 1)
			progress = func(done int) {
				if limiter.Allow() || done == trials {
					fmt.Printf("completed %d/%d trials\n", done, trials)
				}
			}
		}

		report, err := runner.Run(progress)
		if err != nil {
			return fmt.Errorf("fuzz run failed: %w", err)
		}

		fmt.Print(checker.FormatReport(report))
		if !report.OK() {
			return fmt.Errorf("differential check found a mismatch (seed %d)", report.Seed)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(fuzzCmd)

	// 默认参数与随机批次规模参照经验值：批次数量接近取值范围时
	// 既会出现长连续段也会出现大量单点区间
	fuzzCmd.Flags().IntP("trials", "t", 1000, "Number of trials to run")
	fuzzCmd.Flags().IntP("count", "c", 700, "Number of random integers per batch")
	fuzzCmd.Flags().Int("min", 0, "Lower bound of generated integers (inclusive)")
	fuzzCmd.Flags().Int("max", 999, "Upper bound of generated integers (inclusive)")
	fuzzCmd.Flags().Int64("seed", 0, "Random seed (0 picks one from the clock)")
	fuzzCmd.Flags().Float64("progress-per-second", 1, "Progress lines per second (0 disables progress output)")
}
