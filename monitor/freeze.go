package monitor

// FreezePolicy post-processes a snapshot against the previous one and may
// reclassify entries (e.g. mark a stalled process Frozen). The threshold in
// seconds is the only tuning parameter a policy takes; what exactly counts
// as frozen is left to the implementation.
type FreezePolicy interface {
	Refine(prev, cur []Entry) []Entry
}

// NoFreezeDetection is the shipped default: snapshots pass through
// unchanged and no entry is ever marked Frozen.
type NoFreezeDetection struct{}

func (NoFreezeDetection) Refine(prev, cur []Entry) []Entry { return cur }
