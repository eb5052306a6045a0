// Package stream provides the small push-based event-stream toolkit the login
// controller is composed from.
//
// A Stream delivers values to subscribers synchronously on the goroutine that
// produced them. Operators subscribe upstream once per downstream subscriber,
// so every subscription keeps its own operator state.
//
// Operators
//
//   - Map            transform each value
//   - CombineLatest  pair the latest value of two streams once both are warm
//   - WithLatestFrom sample the latest value of one stream on each trigger
//
// Subject is the hot source used to feed raw UI events in; Bag collects
// subscriptions so a screen can dispose all of them at once.
package stream
