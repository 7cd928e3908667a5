package cmd

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/parliament/internal/proposal"
)

var proposalsCmd = &cobra.Command{
	Use:   "proposals",
	Short: "List law proposals on the docket",
	Long: `List the law proposals on the docket with their status and vote tally.

Filter by tag with a glob pattern, e.g.:
  parliament proposals --tag 'env*'
  parliament proposals --tag '{economy,tax*}'

Filter by status with --status pending|debating|passed|rejected.`,
	Args: cobra.NoArgs,
	RunE: runProposals,
}

var (
	proposalsJSON   bool
	proposalsTag    string
	proposalsStatus string
)

func init() {
	proposalsCmd.Flags().BoolVar(&proposalsJSON, "json", false, "Output proposals as JSON")
	proposalsCmd.Flags().StringVarP(&proposalsTag, "tag", "t", "", "Only list proposals with a tag matching this glob")
	proposalsCmd.Flags().StringVarP(&proposalsStatus, "status", "s", "", "Only list proposals with this status")
	rootCmd.AddCommand(proposalsCmd)
}

// proposalFilter selects proposals by tag glob and status. Zero values match
// everything.
type proposalFilter struct {
	tag    glob.Glob
	status proposal.Status
}

func newProposalFilter(tagPattern, status string) (proposalFilter, error) {
	var f proposalFilter
	if tagPattern != "" {
		g, err := glob.Compile(tagPattern)
		if err != nil {
			return f, fmt.Errorf("invalid tag pattern %q: %w", tagPattern, err)
		}
		f.tag = g
	}
	if status != "" {
		s, err := proposal.ParseStatus(status)
		if err != nil {
			return f, err
		}
		f.status = s
	}
	return f, nil
}

func (f proposalFilter) match(p proposal.Proposal) bool {
	if f.status != "" && p.Status != f.status {
		return false
	}
	if f.tag == nil {
		return true
	}
	for _, t := range p.Tags {
		if f.tag.Match(t) {
			return true
		}
	}
	return false
}

func runProposals(cmd *cobra.Command, args []string) error {
	filter, err := newProposalFilter(proposalsTag, proposalsStatus)
	if err != nil {
		return err
	}

	chamber, err := openReadOnly()
	if err != nil {
		return err
	}

	matched := make([]proposal.Proposal, 0)
	for _, p := range chamber.ListProposals() {
		if filter.match(p) {
			matched = append(matched, p)
		}
	}

	out := cmd.OutOrStdout()
	if proposalsJSON {
		return printJSON(out, matched)
	}

	if len(matched) == 0 {
		fmt.Fprintln(out, "No matching proposals")
		return nil
	}

	widths := []int{6, 9, 34, 14, 17}
	printRow(out, widths, "ID", "STATUS", "TITLE", "PROPOSED BY", "FOR/AGAINST/ABS", "TAGS")
	for _, p := range matched {
		tally := fmt.Sprintf("%d/%d/%d", p.Votes.For, p.Votes.Against, p.Votes.Abstain)
		printRow(out, widths, p.ID, string(p.Status), p.Title, p.ProposedBy, tally, strings.Join(p.Tags, ", "))
	}
	return nil
}
