package huffpuff

// Observer receives notifications at defined checkpoints of a compress or
// decompress run, keeping progress and diagnostic output out of the core
// algorithms.  Any nil field is skipped; a nil *Observer disables observation
// entirely.
type Observer struct {
	// AfterCount fires once the input histogram is complete.
	AfterCount func(*FrequencyTable)

	// AfterBuild fires once the code tree has been constructed.
	AfterBuild func(*Tree)

	// AfterCodes fires once every symbol has been assigned a code.
	AfterCodes func(CodeTable)

	// Progress fires periodically with the number of payload bytes
	// processed so far during the encode or decode pass.
	Progress func(int64)
}

func (o *Observer) afterCount(ft *FrequencyTable) {
	if o != nil && o.AfterCount != nil {
		o.AfterCount(ft)
	}
}

func (o *Observer) afterBuild(t *Tree) {
	if o != nil && o.AfterBuild != nil {
		o.AfterBuild(t)
	}
}

func (o *Observer) afterCodes(codes CodeTable) {
	if o != nil && o.AfterCodes != nil {
		o.AfterCodes(codes)
	}
}

func (o *Observer) progress() func(int64) {
	if o == nil {
		return nil
	}
	return o.Progress
}
