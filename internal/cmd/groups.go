package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List parliamentary groups",
	Long:  `List the parliamentary groups seated in the chamber with their orientation and seat count.`,
	Args:  cobra.NoArgs,
	RunE:  runGroups,
}

var politiciansCmd = &cobra.Command{
	Use:   "politicians",
	Short: "List politicians",
	Long: `List the politicians seated in the chamber.

Use --group to list only the members of one parliamentary group.`,
	Args: cobra.NoArgs,
	RunE: runPoliticians,
}

var (
	groupsJSON      bool
	politiciansJSON bool
	politicianGroup string
)

func init() {
	groupsCmd.Flags().BoolVar(&groupsJSON, "json", false, "Output groups as JSON")
	politiciansCmd.Flags().BoolVar(&politiciansJSON, "json", false, "Output politicians as JSON")
	politiciansCmd.Flags().StringVarP(&politicianGroup, "group", "g", "", "Only list members of this group id")
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(politiciansCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	chamber, err := openReadOnly()
	if err != nil {
		return err
	}

	groups := chamber.ListGroups()
	out := cmd.OutOrStdout()
	if groupsJSON {
		return printJSON(out, groups)
	}

	widths := []int{16, 28, 12, 5}
	printRow(out, widths, "ID", "NAME", "ORIENTATION", "SEATS")
	total := 0
	for _, g := range groups {
		printRow(out, widths, g.ID, g.Name, g.Orientation.Label(), strconv.Itoa(g.SeatsCount))
		total += g.SeatsCount
	}
	fmt.Fprintf(out, "\nTotal seats: %d\n", total)
	return nil
}

func runPoliticians(cmd *cobra.Command, args []string) error {
	chamber, err := openReadOnly()
	if err != nil {
		return err
	}

	politicians, err := chamber.ListPoliticians(politicianGroup)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if politiciansJSON {
		return printJSON(out, politicians)
	}

	widths := []int{14, 22, 16, 20}
	printRow(out, widths, "ID", "NAME", "GROUP", "ROLE", "SPECIALTY")
	for _, p := range politicians {
		role := p.Role
		if role == "" {
			role = "-"
		}
		printRow(out, widths, p.ID, p.Name, p.GroupID, role, p.Specialty)
	}
	return nil
}
