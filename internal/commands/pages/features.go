package pagescmd

// FeatureGates exposes runtime feature toggles required by page command
// handlers. Callers supply closures that read from contentful.Config.Features
// so handlers stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	SnapshotsEnabled func() bool
}

func (g FeatureGates) snapshotsEnabled() bool {
	if g.SnapshotsEnabled == nil {
		return true
	}
	return g.SnapshotsEnabled()
}
