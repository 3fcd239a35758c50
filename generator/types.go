package generator

// TargetCount is the number of utterances every successful request yields.
// Normalize pads or truncates so callers can rely on it unconditionally.
const TargetCount = 10

// UtteranceSet is an ordered list of exactly TargetCount cleaned utterances.
// It is produced whole by Normalize and never updated in place.
type UtteranceSet []string
