// Package pipe composes pending outcomes into worker-pooled pipelines.
// It is the in-repo asynchronous substrate: sources come from
// core.EmitOutcomes, stages wrap the mass combinators, Run and Turnout
// fan stages over workers, and Collect collapses the stream. The
// combinator packages do not depend on it.
package pipe
