package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/drills/internal/core/services/drillrunner"
	"github.com/AntonioJCosta/drills/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewGroupCommand creates the 'group' subcommand.
func NewGroupCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Group records by brand and name and count duplicates.",
		Long: `Reads a YAML list of records (brand, name) and prints one row per distinct
pair with its number of occurrences, in the order pairs first appear.

Example file:
  - brand: NARS
    name: Cosmetics Voyageur Pallete
  - brand: Stila
    name: Stay All Day Liquid Lipstick`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroupCmd(cmd, a)
		},
	}
	cmd.Flags().StringP("file", "f", "", "YAML file with the records (default from settings records_file).")
	return cmd
}

func runGroupCmd(cmd *cobra.Command, a *app) error {
	groups, total, err := a.service.GroupRecords()
	if err != nil {
		if errors.Is(err, drillrunner.ErrNoRecordSource) {
			return fmt.Errorf("no records file given: pass --file or set records_file in the settings file")
		}
		return fmt.Errorf("could not group records: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(groups) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No records found."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("%d record(s) in %d group(s):", total, len(groups))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Brand", "Name", "Count"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, g := range groups {
		table.Append([]string{g.Brand, g.Name, strconv.Itoa(g.Count)})
	}
	table.Render()
	return nil
}
