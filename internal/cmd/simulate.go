package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/parliament/internal/config"
	"github.com/Iron-Ham/parliament/internal/debate"
	"github.com/Iron-Ham/parliament/internal/logging"
	"github.com/Iron-Ham/parliament/internal/metrics"
	"github.com/Iron-Ham/parliament/internal/parliament"
	"github.com/Iron-Ham/parliament/internal/proposal"
	"github.com/Iron-Ham/parliament/internal/util"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted debate and vote",
	Long: `Run a scripted session: open a proposal for debate, generate debate
statements, then cast random votes until the proposal resolves or the
voters run out.

A single run prints the transcript and the outcome. With --runs N, N
independent chambers are simulated concurrently and an outcome summary is
printed instead.

Use --seed for a reproducible session and --metrics to print the chamber
counters in Prometheus text format.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

var (
	simProposal   string
	simStatements int
	simVoters     int
	simRuns       int
	simSeed       int64
	simMetrics    bool
)

func init() {
	simulateCmd.Flags().StringVarP(&simProposal, "proposal", "p", "", "Proposal to debate (default: the active proposal)")
	simulateCmd.Flags().IntVarP(&simStatements, "statements", "n", -1, "Debate statements to generate (default: simulate.statements)")
	simulateCmd.Flags().IntVar(&simVoters, "voters", -1, "Maximum votes to cast (default: simulate.voters)")
	simulateCmd.Flags().IntVar(&simRuns, "runs", 1, "Independent chambers to simulate")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Random seed (default: random.seed, 0 seeds from the clock)")
	simulateCmd.Flags().BoolVar(&simMetrics, "metrics", false, "Print chamber metrics in Prometheus text format")
	rootCmd.AddCommand(simulateCmd)
}

// simulation describes one scripted session.
type simulation struct {
	proposalID string
	statements int
	voters     int
}

// simResult is the outcome of one run.
type simResult struct {
	run        int
	seed       int64
	proposal   proposal.Proposal
	transcript []transcriptLine
	votesCast  int
}

type transcriptLine struct {
	statement debate.Statement
	speaker   string
	group     string
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if simRuns < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", simRuns)
	}

	sim := simulation{
		proposalID: simProposal,
		statements: cfg.Simulate.Statements,
		voters:     cfg.Simulate.Voters,
	}
	if simStatements >= 0 {
		sim.statements = simStatements
	}
	if simVoters >= 0 {
		sim.voters = simVoters
	}

	baseSeed := simSeed
	if baseSeed == 0 {
		baseSeed = cfg.Random.Seed
	}
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	recorder := metrics.NewRecorder()
	results, err := runSimulations(cfg, sim, baseSeed, simRuns, recorder, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 1 {
		printTranscript(out, results[0])
	} else {
		printOutcomeSummary(out, results)
	}

	if simMetrics {
		fmt.Fprintln(out)
		return recorder.WriteText(out)
	}
	return nil
}

// runSimulations runs independent chambers on a bounded pool. Run i uses
// seed baseSeed+i, so a fixed base seed reproduces every run.
func runSimulations(cfg *config.Config, sim simulation, baseSeed int64, runs int, recorder *metrics.Recorder, logger *logging.Logger) ([]simResult, error) {
	p := pool.NewWithResults[simResult]().
		WithErrors().
		WithMaxGoroutines(cfg.Simulate.Parallelism)

	for i := range runs {
		seed := baseSeed + int64(i)
		runLogger := logger.With("run", i, "seed", seed)
		p.Go(func() (simResult, error) {
			res, err := simulateOnce(cfg, sim, seed, recorder, runLogger)
			res.run = i
			return res, err
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(results, func(a, b simResult) int { return a.run - b.run })
	return results, nil
}

func simulateOnce(cfg *config.Config, sim simulation, seed int64, recorder *metrics.Recorder, logger *logging.Logger) (simResult, error) {
	rng := parliament.NewRand(seed)
	chamber, err := openChamber(cfg, rng, logger)
	if err != nil {
		return simResult{}, err
	}
	recorder.Attach(chamber.Bus())

	target, err := pickProposal(chamber, sim.proposalID)
	if err != nil {
		return simResult{}, err
	}
	if _, err := chamber.SelectForDebate(target); err != nil {
		return simResult{}, err
	}

	for range sim.statements {
		if _, err := chamber.GenerateStatement(target); err != nil {
			return simResult{}, err
		}
	}

	res := simResult{seed: seed}
	current, err := chamber.Proposal(target)
	if err != nil {
		return simResult{}, err
	}
	for range sim.voters {
		if current.Status.IsTerminal() {
			break
		}
		current, err = chamber.Vote(target, randomChoice(rng))
		if err != nil {
			return simResult{}, err
		}
		res.votesCast++
	}

	res.proposal = current
	statements, err := chamber.StatementsFor(target)
	if err != nil {
		return simResult{}, err
	}
	for _, s := range statements {
		line := transcriptLine{statement: s, speaker: s.PoliticianID}
		if pol, group, err := chamber.Speaker(s); err == nil {
			line.speaker = pol.Name
			line.group = group.Name
		}
		res.transcript = append(res.transcript, line)
	}
	return res, nil
}

// pickProposal resolves the proposal to debate: the requested id, else the
// proposal under debate, else the first pending one.
func pickProposal(chamber *parliament.Parliament, id string) (string, error) {
	if id != "" {
		return id, nil
	}
	if active, ok := chamber.ActiveProposal(); ok {
		return active.ID, nil
	}
	for _, p := range chamber.ListProposals() {
		if p.Status == proposal.StatusPending {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("no open proposal to debate")
}

var choices = []proposal.Choice{proposal.ChoiceFor, proposal.ChoiceAgainst, proposal.ChoiceAbstain}

func randomChoice(rng *rand.Rand) proposal.Choice {
	return choices[rng.IntN(len(choices))]
}

func printTranscript(w io.Writer, res simResult) {
	p := res.proposal
	fmt.Fprintf(w, "%s: %s\n\n", p.ID, p.Title)

	if len(res.transcript) == 0 {
		fmt.Fprintln(w, "(no statements)")
	}
	for _, line := range res.transcript {
		fmt.Fprintf(w, "[%s] %s (%s): %s\n",
			line.statement.Timestamp.Format("15:04:05"), line.speaker, line.group, line.statement.Content)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Votes: for %d, against %d, abstain %d (%s cast)\n",
		p.Votes.For, p.Votes.Against, p.Votes.Abstain, util.Plural(res.votesCast, "vote"))
	fmt.Fprintf(w, "Outcome: %s\n", p.Status)
	fmt.Fprintf(w, "Seed: %d\n", res.seed)
}

func printOutcomeSummary(w io.Writer, results []simResult) {
	counts := make(map[proposal.Status]int)
	var forTotal, againstTotal int
	for _, r := range results {
		counts[r.proposal.Status]++
		forTotal += r.proposal.Votes.For
		againstTotal += r.proposal.Votes.Against
	}

	n := len(results)
	fmt.Fprintf(w, "Simulated %s of %s\n\n", util.Plural(n, "run"), results[0].proposal.ID)
	widths := []int{10, 6}
	for _, s := range []proposal.Status{proposal.StatusPassed, proposal.StatusRejected, proposal.StatusDebating} {
		printRow(w, widths, string(s), fmt.Sprint(counts[s]), util.Progress(counts[s], n, 20))
	}
	fmt.Fprintf(w, "\nAverage tally: for %.1f, against %.1f\n", float64(forTotal)/float64(n), float64(againstTotal)/float64(n))
}
