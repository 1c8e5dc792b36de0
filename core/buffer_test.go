package core

import "testing"

func TestSampleBufferHandoff(t *testing.T) {
	buf := NewSampleBuffer()

	if buf.InFlight() {
		t.Error("fresh buffer should be caller-owned")
	}
	if buf.Len() != NumSamples {
		t.Errorf("Len() = %d, want %d", buf.Len(), NumSamples)
	}

	dst := buf.BeginTransfer()
	if len(dst) != NumSamples {
		t.Errorf("destination length = %d, want %d", len(dst), NumSamples)
	}
	if !buf.InFlight() {
		t.Error("buffer should be engine-owned after BeginTransfer")
	}

	// The engine writes through the armed slice; the caller sees the data
	// once ownership returns.
	for i := range dst {
		dst[i] = uint16(i)
	}
	buf.CompleteTransfer()

	samples := buf.Samples()
	if samples[0] != 0 || samples[NumSamples-1] != NumSamples-1 {
		t.Errorf("samples not visible after handoff: first=%d last=%d", samples[0], samples[NumSamples-1])
	}
}

func TestSampleBufferReadDuringTransferPanics(t *testing.T) {
	buf := NewSampleBuffer()
	buf.BeginTransfer()

	defer func() {
		if recover() == nil {
			t.Error("Samples() during a transfer should panic")
		}
	}()
	buf.Samples()
}

func TestSampleBufferDoubleBeginPanics(t *testing.T) {
	buf := NewSampleBuffer()
	buf.BeginTransfer()

	defer func() {
		if recover() == nil {
			t.Error("second BeginTransfer should panic")
		}
	}()
	buf.BeginTransfer()
}

func TestSampleBufferCompleteWithoutBeginPanics(t *testing.T) {
	buf := NewSampleBuffer()

	defer func() {
		if recover() == nil {
			t.Error("CompleteTransfer without a transfer should panic")
		}
	}()
	buf.CompleteTransfer()
}

func TestSampleBufferReuse(t *testing.T) {
	// One buffer serves every cycle; each burst overwrites the last.
	buf := NewSampleBuffer()

	dst := buf.BeginTransfer()
	for i := range dst {
		dst[i] = 1111
	}
	buf.CompleteTransfer()

	dst = buf.BeginTransfer()
	for i := range dst {
		dst[i] = 2222
	}
	buf.CompleteTransfer()

	for i, s := range buf.Samples() {
		if s != 2222 {
			t.Fatalf("sample %d = %d after reuse, want 2222", i, s)
		}
	}
}
