package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/fyer-intervals/intervalset"
)

// infoCmd 表示info命令，显示集合的结构信息
var infoCmd = &cobra.Command{
	Use:   "info [set]",
	Short: "Show the structure of an interval set",
	Long: `Show the canonical structure of an interval set:
its runs, element count, and extremal values.`,
	Example: `  ivcli info "1-3,7,9-12"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := intervalset.Parse[int](args[0])
		if err != nil {
			return fmt.Errorf("failed to parse set: %w", err)
		}

		fmt.Printf("Canonical: %s\n", formatSet(s))
		fmt.Printf("Runs: %d\n", s.Runs())
		fmt.Printf("Elements: %d\n", s.Len())

		if s.IsEmpty() {
			return nil
		}

		lo, err := s.Smallest()
		if err != nil {
			return err
		}
		hi, err := s.Largest()
		if err != nil {
			return err
		}
		fmt.Printf("Smallest: %d\n", lo)
		fmt.Printf("Largest: %d\n", hi)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
