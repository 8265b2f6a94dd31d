package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/drills/internal/core/exercises"
	"github.com/AntonioJCosta/drills/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewFindCommand creates the 'find' subcommand.
func NewFindCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <target> [names...]",
		Short: "Find the index of the first name equal to target.",
		Long:  `Searches the names left to right and prints the index of the first exact match, or -1.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, names := args[0], args[1:]
			idx := a.service.FindName(names, target)
			out := cmd.OutOrStdout()
			if idx < 0 {
				fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%q not found (index -1)", target)))
				return nil
			}
			fmt.Fprintf(out, "%s %s\n", ui.InfoColor(fmt.Sprintf("%q found at index", target)), ui.ResultColor(strconv.Itoa(idx)))
			return nil
		},
	}
}

// NewSecondCommand creates the 'second' subcommand.
func NewSecondCommand(a *app) *cobra.Command {
	var withIndex bool

	cmd := &cobra.Command{
		Use:   "second [numbers...]",
		Short: "Print the second largest of at least two numbers.",
		Long: `Sorts the numbers by rank and prints the value ranked second.
A repeated maximum ranks both first and second, so "5 5" prints 5.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseFloats(args)
			if err != nil {
				return err
			}
			result, err := a.service.SecondLargest(numbers)
			if err != nil {
				return fmt.Errorf("could not find second largest: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.InfoColor("Second largest:"), ui.ResultColor(formatNumber(result.Value)))
			if withIndex {
				fmt.Fprintf(out, "%s %s\n", ui.InfoColor("First occurrence at index:"), ui.ResultColor(strconv.Itoa(result.Index)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&withIndex, "index", "i", false, "Also print the index of the value's first occurrence.")
	return cmd
}

// NewSumCommand creates the 'sum' subcommand.
func NewSumCommand(a *app) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "sum <n>",
		Short: "Add up every integer from 1 to n.",
		Long: fmt.Sprintf(`Prints 1 + 2 + ... + n for n >= 1.
The loop form runs by default. The recursive form runs with --recursive or
--method reference; it uses one stack frame per step and accepts n up to %d.`, exercises.MaxRecursionDepth),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[0], err)
			}
			total, err := a.service.SumUpTo(n, recursive)
			if err != nil {
				return fmt.Errorf("could not add up numbers: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.InfoColor(fmt.Sprintf("Sum of 1..%d:", n)), ui.ResultColor(strconv.FormatInt(total, 10)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Use the recursive form.")
	return cmd
}

// NewPairSumCommand creates the 'pairsum' subcommand.
func NewPairSumCommand(a *app) *cobra.Command {
	var first, second []int64
	var target int64

	cmd := &cobra.Command{
		Use:   "pairsum --a 1,2 --b 4,5,6 --target 5",
		Short: "Check whether one integer from each list adds up to target.",
		Long: `Reports whether some x from --a and y from --b satisfy x + y == target.
Operands are integers so both methods compare sums exactly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			found := a.service.PairSumExists(first, second, target)
			msg := fmt.Sprintf("%s + %s -> %s:", formatNumbers(first), formatNumbers(second), formatNumber(target))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.InfoColor(msg), ui.BoolColor(found))
			return nil
		},
	}
	cmd.Flags().Int64SliceVar(&first, "a", nil, "First list of integers.")
	cmd.Flags().Int64SliceVar(&second, "b", nil, "Second list of integers.")
	cmd.Flags().Int64VarP(&target, "target", "t", 0, "Target sum.")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// NewDigitCommand creates the 'digit' subcommand.
func NewDigitCommand(a *app) *cobra.Command {
	var digit int

	cmd := &cobra.Command{
		Use:   "digit [integers...]",
		Short: "Check whether any integer contains a digit (default 3).",
		Long:  `Looks for the digit in the decimal digits of each integer's absolute value. The minus sign is ignored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseInts(args)
			if err != nil {
				return err
			}
			found, err := a.service.ContainsDigit(numbers, digit)
			if err != nil {
				return fmt.Errorf("could not search digits: %w", err)
			}
			verdict := exercises.Verdict(found, digit)
			if found {
				fmt.Fprintln(cmd.OutOrStdout(), ui.WarningColor(verdict))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(verdict))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&digit, "digit", "d", 3, "Digit to look for (0-9).")
	return cmd
}

// NewBoomerangCommand creates the 'boomerang' subcommand.
func NewBoomerangCommand(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "boomerang [numbers...]",
		Short: "Count V-shaped [x, y, x] windows, overlaps included.",
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseFloats(args)
			if err != nil {
				return err
			}
			result := a.service.CountBoomerangs(numbers)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.InfoColor("Boomerangs:"), ui.ResultColor(strconv.Itoa(result.Count)))
			if list {
				for _, start := range result.Starts {
					fmt.Fprintf(out, "  %s %s\n",
						ui.DetailColor(fmt.Sprintf("at %d:", start)),
						ui.ListItemColor(formatNumbers(numbers[start:start+3])))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List every boomerang found.")
	return cmd
}
