package engine

// ProgressReporter receives extraction lifecycle events. Implementations
// must tolerate concurrent OnFileProcessed calls.
type ProgressReporter interface {
	OnDiscoveryStart()
	OnDiscoveryComplete(files int)
	OnExtractionStart(totalFiles int)
	OnFileProcessed(relPath string)
	OnComplete(stats *Stats)
}

// NoOpProgressReporter ignores all events.
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryStart()              {}
func (n *NoOpProgressReporter) OnDiscoveryComplete(files int)  {}
func (n *NoOpProgressReporter) OnExtractionStart(total int)    {}
func (n *NoOpProgressReporter) OnFileProcessed(relPath string) {}
func (n *NoOpProgressReporter) OnComplete(stats *Stats)        {}
