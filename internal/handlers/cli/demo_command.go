package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/drills/internal/core/domain/record"
	"github.com/AntonioJCosta/drills/internal/core/exercises"
	"github.com/AntonioJCosta/drills/internal/core/ports"
	"github.com/AntonioJCosta/drills/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// demoCase is one worked example: an exercise, its input and the expected output.
type demoCase struct {
	exercise string
	input    string
	expected string
	run      func(svc ports.DrillService) (string, error)
}

// NewDemoCommand creates the 'demo' subcommand.
func NewDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the worked examples of every exercise.",
		Long:  `Runs each exercise on its classic examples and compares the output with the expected answer.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemoCmd(cmd, a.service, demoCases())
		},
	}
}

func runDemoCmd(cmd *cobra.Command, svc ports.DrillService, cases []demoCase) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Worked examples (method: %s)", svc.Method())))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Exercise", "Input", "Expected", "Got", "Result"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)

	failed := 0
	for _, c := range cases {
		got, err := c.run(svc)
		if err != nil {
			got = "error: " + err.Error()
		}
		status := ui.PassColor("ok")
		if err != nil || got != c.expected {
			status = ui.FailColor("FAIL")
			failed++
		}
		table.Append([]string{c.exercise, c.input, c.expected, got, status})
	}
	table.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d worked examples failed", failed, len(cases))
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("All %d worked examples passed.", len(cases))))
	return nil
}

func demoCases() []demoCase {
	var cases []demoCase

	for _, tc := range []struct {
		names []string
		want  int
	}{
		{[]string{"Jimmy", "Layla", "Tom"}, 2},
		{[]string{"Tom", "Layla", "Kaitlyn"}, 0},
		{[]string{"Jimmy", "Layla", "James"}, -1},
	} {
		cases = append(cases, demoCase{
			exercise: "find Tom",
			input:    fmt.Sprint(tc.names),
			expected: strconv.Itoa(tc.want),
			run: func(svc ports.DrillService) (string, error) {
				return strconv.Itoa(svc.FindName(tc.names, "Tom")), nil
			},
		})
	}

	for _, tc := range []struct {
		numbers []float64
		want    float64
	}{
		{[]float64{10, 40, 30, 20, 50}, 40},
		{[]float64{25, 143, 89, 13, 105}, 105},
		{[]float64{54, 23, 11, 17, 10}, 23},
	} {
		cases = append(cases, demoCase{
			exercise: "second largest",
			input:    formatNumbers(tc.numbers),
			expected: formatNumber(tc.want),
			run: func(svc ports.DrillService) (string, error) {
				res, err := svc.SecondLargest(tc.numbers)
				return formatNumber(res.Value), err
			},
		})
	}

	for _, tc := range []struct {
		n    int64
		want int64
	}{
		{1, 1},
		{13, 91},
		{600, 180300},
	} {
		cases = append(cases, demoCase{
			exercise: "add up to n",
			input:    strconv.FormatInt(tc.n, 10),
			expected: strconv.FormatInt(tc.want, 10),
			run: func(svc ports.DrillService) (string, error) {
				total, err := svc.SumUpTo(tc.n, true)
				return strconv.FormatInt(total, 10), err
			},
		})
	}

	for _, tc := range []struct {
		target int64
		want   bool
	}{
		{5, true},
		{8, true},
		{3, false},
		{9, false},
	} {
		a, b := []int64{1, 2}, []int64{4, 5, 6}
		cases = append(cases, demoCase{
			exercise: "pair sum",
			input:    fmt.Sprintf("%s %s -> %s", formatNumbers(a), formatNumbers(b), formatNumber(tc.target)),
			expected: strconv.FormatBool(tc.want),
			run: func(svc ports.DrillService) (string, error) {
				return strconv.FormatBool(svc.PairSumExists(a, b, tc.target)), nil
			},
		})
	}

	for _, tc := range []struct {
		numbers []int64
		want    bool
	}{
		{[]int64{1, 2, 4, 5, 6}, false},
		{[]int64{7, 8, 9, 3}, true},
		{[]int64{13, 25, 46, 99}, true},
	} {
		cases = append(cases, demoCase{
			exercise: "contains 3",
			input:    formatNumbers(tc.numbers),
			expected: exercises.Verdict(tc.want, 3),
			run: func(svc ports.DrillService) (string, error) {
				found, err := svc.ContainsDigit(tc.numbers, 3)
				return exercises.Verdict(found, 3), err
			},
		})
	}

	for _, tc := range []struct {
		numbers []float64
		want    int
	}{
		{[]float64{3, 7, 3, 2, 1, 5, 1, 2, 2, -2, 2}, 3},
		{[]float64{1, 7, 1, 7, 1, 7, 1}, 5},
		{[]float64{1, 2, 3, 4, 5}, 0},
	} {
		cases = append(cases, demoCase{
			exercise: "boomerangs",
			input:    formatNumbers(tc.numbers),
			expected: strconv.Itoa(tc.want),
			run: func(svc ports.DrillService) (string, error) {
				return strconv.Itoa(svc.CountBoomerangs(tc.numbers).Count), nil
			},
		})
	}

	palettes := []record.Record{
		{Brand: "NARS", Name: "Cosmetics Voyageur Pallete"},
		{Brand: "NARS", Name: "Cosmetics Voyageur Pallete"},
		{Brand: "Urban Decay", Name: "Naked Honey Pallete"},
		{Brand: "Stila", Name: "Stay All Day Liquid Lipstick"},
		{Brand: "Stila", Name: "Stay All Day Liquid Lipstick"},
		{Brand: "Stila", Name: "Stay All Day Liquid Lipstick"},
	}
	cases = append(cases, demoCase{
		exercise: "group records",
		input:    fmt.Sprintf("%d palette records", len(palettes)),
		expected: "NARS=2 Urban Decay=1 Stila=3",
		run: func(ports.DrillService) (string, error) {
			return summarizeGroups(exercises.GroupAndCount(palettes)), nil
		},
	})

	return cases
}

func summarizeGroups(groups []record.GroupedRecord) string {
	s := ""
	for i, g := range groups {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%d", g.Brand, g.Count)
	}
	return s
}
