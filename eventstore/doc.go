// Package eventstore provides the engine-agnostic building blocks of dynamic event streams.
//
// A dynamic event stream is not a named stream. It is every stored event that matches a Filter,
// so one decision can span several entities, for example a book and the student borrowing it.
// The Filter used for Query is passed to Append again. Append succeeds only if no event
// matching it arrived after the queried MaxSequenceNumberUint, which gives the decision its
// consistency boundary.
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf("BookCopyReserved", "BookCopyReleased").
//		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// ... decide
//	err = store.Append(ctx, filter, maxSeq, newEvents...)
//	if errors.Is(err, eventstore.ErrConcurrencyConflict) {
//		// query again and retry the decision
//	}
//
// Engines live in the subpackages postgresengine, sqliteengine and memengine.
package eventstore
