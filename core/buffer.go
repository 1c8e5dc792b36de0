package core

// NumSamples is the burst length: how many raw conversions one acquisition
// cycle captures before averaging. The buffer, the transfer count and the
// fold all derive from it.
const NumSamples = 100

// SampleBuffer holds one burst of raw conversions. The firmware allocates
// exactly one and reuses it every cycle; each burst overwrites the previous
// one wholesale.
//
// Ownership alternates between the transfer engine and the caller and is
// never shared: BeginTransfer hands the storage to the engine, and only
// after the completion wait returns does CompleteTransfer hand it back.
// Samples enforces the handoff by panicking while a transfer is in flight;
// a violation is a programming error in the cycle sequencing, not a
// runtime condition to recover from.
type SampleBuffer struct {
	samples  [NumSamples]uint16
	inFlight bool
}

// NewSampleBuffer returns an empty buffer owned by the caller.
func NewSampleBuffer() *SampleBuffer {
	return &SampleBuffer{}
}

// BeginTransfer marks the buffer as owned by the transfer engine and
// returns the destination slice to arm the engine with. Panics if a
// transfer is already in flight.
func (b *SampleBuffer) BeginTransfer() []uint16 {
	if b.inFlight {
		panic("sample buffer: transfer already in flight")
	}
	b.inFlight = true
	return b.samples[:]
}

// CompleteTransfer returns ownership to the caller. It must only be called
// after the engine's completion wait has returned (or the arm failed), so
// the engine no longer touches the storage.
func (b *SampleBuffer) CompleteTransfer() {
	if !b.inFlight {
		panic("sample buffer: no transfer in flight")
	}
	b.inFlight = false
}

// InFlight reports whether the transfer engine currently owns the storage.
func (b *SampleBuffer) InFlight() bool {
	return b.inFlight
}

// Samples returns the captured burst for reading. The view is valid until
// the next BeginTransfer. Panics while a transfer is in flight.
func (b *SampleBuffer) Samples() []uint16 {
	if b.inFlight {
		panic("sample buffer: read during transfer")
	}
	return b.samples[:]
}

// Len returns the burst length.
func (b *SampleBuffer) Len() int {
	return NumSamples
}
