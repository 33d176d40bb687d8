package metrics

// NewNoOpRecorder creates a recorder that drops everything.
// Useful for testing, benchmarking, or when metrics are disabled.
func NewNoOpRecorder() Recorder {
	return noOpRecorder{}
}

type noOpRecorder struct{}

func (noOpRecorder) ObserveRegistration(string, string) {}
func (noOpRecorder) ObserveForward(string)              {}
func (noOpRecorder) ObserveResolution(string)           {}
func (noOpRecorder) ObserveFactory(string)              {}
func (noOpRecorder) SetServices(int)                    {}
