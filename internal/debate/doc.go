// Package debate produces and records the statements made on the chamber
// floor.
//
// # Ledger
//
// A [Ledger] is an append-only record of statements. Statements for one
// proposal are read back in timestamp order; equal timestamps keep the
// order in which they were appended.
//
// # Speakers and Responses
//
// A [Selector] picks the next speaker uniformly from the politicians who are
// not among the authors of the most recent statements, and picks one of five
// canned responses for the speaker's group orientation. Randomness comes
// from an injected [Rand], so a seeded source yields a reproducible debate.
//
// # Usage
//
//	ledger := debate.NewLedger(nil)
//	gen := debate.NewGenerator(debate.NewSelector(rand.New(rand.NewPCG(1, 2)), 3), time.Now, nil)
//
//	stmt, err := gen.Generate("law1", chamberRoster, ledger.Recent(3))
//	if err != nil {
//	    return err
//	}
//	ledger.Append(stmt)
//
//	for s := range ledger.StatementsFor("law1") {
//	    fmt.Println(s.PoliticianID, s.Content)
//	}
//
// # Thread Safety
//
// Ledger is safe for concurrent use. Selector and Generator are not; the
// chamber serializes calls to them.
package debate
