// Package metrics records navigation activity. Components take a Recorder
// and default to NoopRecorder, so metrics stay optional.
package metrics

// Recorder receives navigation events.
type Recorder interface {
	IncNavigation(locale string)
	IncFallback()
	IncPageView(locale string)
	SetActiveSessions(n int)
	IncSessionsSwept(n int)
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) IncNavigation(string)  {}
func (NoopRecorder) IncFallback()          {}
func (NoopRecorder) IncPageView(string)    {}
func (NoopRecorder) SetActiveSessions(int) {}
func (NoopRecorder) IncSessionsSwept(int)  {}
