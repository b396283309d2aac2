package models

// WakeConfig holds the validated command-line inputs of a run.
type WakeConfig struct {
	URI          string
	Host         string // host component extracted from URI
	Port         uint16
	MACAddresses []string
	DryRun       bool
}

// WakeRequest holds the inputs of a single dispatch.
type WakeRequest struct {
	Host    string
	Port    uint16
	Targets []MACAddress
	DryRun  bool
}

// DispatchResult holds the outcome for a single target.
type DispatchResult struct {
	Input   string // MAC argument as supplied, empty if not known
	MAC     MACAddress
	Payload []byte // magic packet sent, or that would have been sent
	Sent    bool
	DryRun  bool
	Error   error
}

// OK reports whether the target was dispatched or dry-run reported.
func (r DispatchResult) OK() bool {
	return r.Error == nil
}

// WakeReport holds the ordered results of a dispatch.
type WakeReport struct {
	Destination Destination
	LocalAddr   string // empty in dry-run mode
	DryRun      bool
	Results     []DispatchResult
}

// Succeeded returns the number of successful results.
func (r *WakeReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of failed results.
func (r *WakeReport) Failed() int {
	return len(r.Results) - r.Succeeded()
}
