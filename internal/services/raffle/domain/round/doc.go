// Package round models the recurring raffle round.
//
// A round admits participants while OPEN, and once its interval has elapsed
// with stake in the pool, an upkeep caller flips it to CALCULATING and asks
// the randomness coordinator for a draw. Exactly one fulfillment resolves the
// round: the random value selects a registry slot, the pooled balance is paid
// to that participant, and the round resets to OPEN.
//
// The package holds:
//   - the machine that serializes admissions, upkeep, and fulfillment,
//   - the eligibility predicate used by upkeep callers,
//   - and the ports (pool, draw requester, events) the machine drives.
package round
