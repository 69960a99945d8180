package csp

// Cost is the TransportNetwork's flaw-count cost variable (spec §4.4): a
// non-negative count of residual MCMCF violations, posted onto the space
// after each flow check. The restart driver (package refine) compares each
// restart's Cost with the best seen so far only to pick the Outcome it
// returns; it does not post "cost < previousCost" as a constraint.
type Cost int

// Less reports whether c is strictly better (fewer flaws) than other.
func (c Cost) Less(other Cost) bool { return c < other }
