// Package event provides a pub-sub event bus that fans chamber activity out
// to observers such as the metrics recorder and the terminal UI.
//
// The chamber publishes an event after every successful mutation. Observers
// subscribe without the chamber knowing who they are.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Types
//
//   - [ProposalSubmittedEvent]: a new proposal entered the docket
//   - [DebateOpenedEvent]: a proposal was selected for debate
//   - [VoteCastEvent]: a vote was recorded
//   - [ProposalResolvedEvent]: a proposal passed or was rejected
//   - [StatementAddedEvent]: a debate statement was appended to the ledger
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called synchronously
// and protected against panics: a panicking handler will not prevent other
// handlers from being called.
//
// # Basic Usage
//
//	bus := event.NewBus()
//
//	bus.Subscribe(event.TypeVoteCast, func(e event.Event) {
//	    cast := e.(event.VoteCastEvent)
//	    fmt.Println(cast.ProposalID, cast.Choice)
//	})
//
//	bus.SubscribeAll(func(e event.Event) {
//	    logger.Debug("chamber event", "type", e.EventType())
//	})
package event
