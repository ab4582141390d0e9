package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/fyer-intervals/intervalset"
)

// evalCmd 表示eval命令，对两个区间集合求值
var evalCmd = &cobra.Command{
	Use:   "eval [left] [op] [right]",
	Short: "Evaluate a set-algebra expression",
	Long: `Evaluate a set-algebra expression over two interval sets.
Sets are written as comma-separated runs, e.g. "1-3,7,9-12".

Supported operations:
  union, inter, diff, symdiff    produce a new interval set
  subset, superset, disjoint     boolean predicates
  equal                          structural equality
  contains                       membership test, right operand is a single integer`,
	Example: `  ivcli eval "1-3" union "4,5"
  ivcli eval "1-5" diff "2-3"
  ivcli eval "1-3,7-8" contains 5`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := intervalset.Parse[int](args[0])
		if err != nil {
			return fmt.Errorf("failed to parse left operand: %w", err)
		}

		op := args[1]
		if op == "contains" {
			v, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("contains expects an integer operand: %w", err)
			}
			fmt.Println(left.Contains(v))
			return nil
		}

		right, err := intervalset.Parse[int](args[2])
		if err != nil {
			return fmt.Errorf("failed to parse right operand: %w", err)
		}

		switch op {
		case "union", "inter", "diff", "symdiff":
			result, err := applyOp(left, op, right)
			if err != nil {
				return err
			}
			fmt.Println(formatSet(result))
		case "subset":
			fmt.Println(left.IsSubset(right))
		case "superset":
			fmt.Println(left.IsSuperset(right))
		case "disjoint":
			fmt.Println(left.IsDisjoint(right))
		case "equal":
			fmt.Println(left.Equal(right))
		default:
			return fmt.Errorf("unknown operation: %s", op)
		}

		return nil
	},
}

// applyOp 执行产生新集合的二元运算
func applyOp(left *intervalset.IntervalSet[int], op string, right *intervalset.IntervalSet[int]) (*intervalset.IntervalSet[int], error) {
	switch op {
	case "union":
		return left.Union(right)
	case "inter":
		return left.Intersection(right)
	case "diff":
		return left.Difference(right)
	default:
		return left.SymmetricDifference(right)
	}
}

// formatSet 格式化集合输出，空集合显示占位符
func formatSet(s *intervalset.IntervalSet[int]) string {
	if s.IsEmpty() {
		return "(empty)"
	}
	return s.String()
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
