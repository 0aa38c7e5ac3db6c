package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrKind     = "kind"
	AttrOutcome  = "outcome"
)

// Outcome values for league computations and cache lookups.
const (
	OutcomeOK         = "ok"
	OutcomeIncomplete = "incomplete"
	OutcomeStale      = "stale"
	OutcomeError      = "error"
	OutcomeHit        = "hit"
	OutcomeMiss       = "miss"
)
