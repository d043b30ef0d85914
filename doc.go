// Package rx is a small push-based reactive stream core: Observables,
// Observers, Subjects, a disposal model and a family of transformation and
// combination operators.
//
// Emission is synchronous within a call stack. A producer's OnNext drives
// every downstream operator and observer before returning, and operators
// holding several inner subscriptions serialize their forwarding, so an
// observer never sees interleaved or post-terminal events. Concurrency is
// the producer's business: sources that emit from another goroutine
// (FromChan, Interval, Buffered) guarantee a single writer per subscription.
//
// Operators with a type-changing result are package-level functions rather
// than methods, since Go methods cannot introduce type parameters:
//
//	sub := rx.Map(rx.Of(1, 2, 3), strconv.Itoa).SubscribeNext(print)
//	defer sub.Dispose()
package rx
