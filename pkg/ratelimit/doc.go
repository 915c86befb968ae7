// Package ratelimit provides a blocking token-bucket limiter for
// outbound analysis calls.
//
// # Model
//
// The bucket holds up to capacity tokens and refills continuously over
// the configured window (not in fixed steps): after an idle period the
// caller can burst up to full capacity, while the long-run call rate
// never exceeds capacity per window.
//
// Acquire is blocking. It refills proportionally to elapsed wall-clock
// time, and when less than one token is available it sleeps exactly as
// long as needed for one token to accrue before deducting it.
//
// # Scope
//
// The limiter is built for a single caller per instance; there is no
// queueing fairness. Refill-and-deduct is still guarded by a mutex so an
// instance keeps behaving correctly if a future caller shares it across
// goroutines.
package ratelimit
