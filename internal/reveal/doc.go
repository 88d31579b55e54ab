// Package reveal holds the timing state machines behind the site's entrance
// animations, independent of any UI runtime.
//
// Core pieces:
//   - Typing: reveals a string one grapheme at a time
//   - Sequencer: drives the splash screen through Mail -> Logo -> Complete
//   - Latch: visibility flag fed with intersection ratios
//   - Plan/Stage: ordered, named animation stages resolved by elapsed time
//   - Clock/Wait: cancellable single-shot delays
//
// None of these types schedule anything on their own. Callers ask for the
// next delay, wait for it (see Wait), then advance the machine. This keeps
// every tick strictly sequential and lets tests drive time with FakeClock.
package reveal
