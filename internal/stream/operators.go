package stream

import "sync"

// Map applies f to every value of src.
func Map[T, U any](src Stream[T], f func(T) U) Stream[U] {
	return Func[U](func(fn func(U)) Subscription {
		return src.Subscribe(func(v T) { fn(f(v)) })
	})
}

// CombineLatest emits combine(a, b) for the latest value of each source
// every time either source emits, but only once both have emitted at
// least once.
func CombineLatest[A, B, R any](a Stream[A], b Stream[B], combine func(A, B) R) Stream[R] {
	return Func[R](func(fn func(R)) Subscription {
		var (
			mu         sync.Mutex
			lastA      A
			lastB      B
			hasA, hasB bool
		)
		// update records a new value under the lock and reports whether
		// both sides are warm.
		update := func(set func()) (R, bool) {
			mu.Lock()
			defer mu.Unlock()
			set()
			if !hasA || !hasB {
				var zero R
				return zero, false
			}
			return combine(lastA, lastB), true
		}

		subA := a.Subscribe(func(v A) {
			if out, ok := update(func() { lastA, hasA = v, true }); ok {
				fn(out)
			}
		})
		subB := b.Subscribe(func(v B) {
			if out, ok := update(func() { lastB, hasB = v, true }); ok {
				fn(out)
			}
		})
		return NewSubscription(func() {
			subA.Unsubscribe()
			subB.Unsubscribe()
		})
	})
}

// WithLatestFrom emits combine(t, l) for every trigger value t, where l is
// the most recent value of latest. Triggers that arrive before latest has
// emitted are dropped.
func WithLatestFrom[T, L, R any](trigger Stream[T], latest Stream[L], combine func(T, L) R) Stream[R] {
	return Func[R](func(fn func(R)) Subscription {
		var (
			mu   sync.Mutex
			last L
			has  bool
		)

		subL := latest.Subscribe(func(v L) {
			mu.Lock()
			last, has = v, true
			mu.Unlock()
		})
		subT := trigger.Subscribe(func(t T) {
			mu.Lock()
			if !has {
				mu.Unlock()
				return
			}
			l := last
			mu.Unlock()
			fn(combine(t, l))
		})
		return NewSubscription(func() {
			subT.Unsubscribe()
			subL.Unsubscribe()
		})
	})
}
