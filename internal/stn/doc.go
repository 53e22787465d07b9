// Package stn implements a Simple Temporal Network: a Schedule of Events
// (time points) and Episodes (start/end Event pairs with a duration)
// linked by binary delay Constraints, plus a greedy execution layer that
// lets a caller commit an Event to a concrete time and observe how the
// admissible windows of the rest of the network tighten.
//
// Nomenclature follows Ono, Williams & Blackmore (2013), "Probabilistic
// planning for continuous dynamic systems under bounded risk", JAIR 46:
//
//   - Schedule: a set of temporal constraints describing Episodes that
//     may occur in series, in parallel, or any mix of the two.
//   - Event: a moment in time in the Schedule.
//   - Episode: a pair of start and end Events.
//   - Interval: a [lower, upper] span of time.
//   - Duration: an Interval in the context of an Episode.
package stn
