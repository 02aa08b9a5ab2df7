package commands

// WithScratchDir exports withScratchDir for testing.
var WithScratchDir = withScratchDir //nolint:gochecknoglobals // test export

// RefToMaterialize exports refToMaterialize for testing.
var RefToMaterialize = refToMaterialize //nolint:gochecknoglobals // test export

// SetRemoveAll replaces the scratch removal function for testing.
func (it *TriggerCommand) SetRemoveAll(removeAll func(path string) error) {
	it.removeAll = removeAll
}

