//go:build rp2040

package main

import (
	"device/rp"
	"errors"
	"runtime"
	"runtime/volatile"
	"time"
	"unsafe"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/core"
)

// ADC data request from the system DREQ table, RP2040 datasheet 2.5.3.1.
// Exactly one channel may pace itself from it.
const dreqADC = 0x24

const numDMAChannels = 12

var (
	errDMABusy   = errors.New("dma: channel busy")
	errDMAEmpty  = errors.New("dma: empty burst")
	errUnclaimed = errors.New("dma: channel not claimed")
)

// claimedChannels tracks software ownership of the twelve channels,
// one bit per channel.
var claimedChannels uint16

// dmaChannelHW is one channel's register block. See rp.DMA_Type.
type dmaChannelHW struct {
	READ_ADDR   volatile.Register32
	WRITE_ADDR  volatile.Register32
	TRANS_COUNT volatile.Register32
	CTRL_TRIG   volatile.Register32
	_           [12]volatile.Register32 // alias registers
}

func dmaChannel(idx uint8) *dmaChannelHW {
	channels := (*[numDMAChannels]dmaChannelHW)(unsafe.Pointer(rp.DMA))
	return &channels[idx]
}

// RpDmaDriver implements core.DMADriver on one claimed RP2040 DMA channel.
// Every burst is the same shape: 16-bit reads from the fixed ADC FIFO
// register into an incrementing destination, paced by the ADC data
// request, started by the CTRL_TRIG write.
type RpDmaDriver struct {
	hw      *dmaChannelHW
	idx     uint8
	claimed bool
	timeout time.Duration
}

var _ core.DMADriver = (*RpDmaDriver)(nil)

// NewRPDmaDriver constructs the driver; Claim picks the channel.
func NewRPDmaDriver() *RpDmaDriver {
	return &RpDmaDriver{}
}

// SetTimeout bounds every WaitForFinish call. Zero or negative waits
// forever, which is the peripheral's native behavior.
func (d *RpDmaDriver) SetTimeout(timeout time.Duration) {
	if timeout < 0 {
		timeout = 0
	}
	d.timeout = timeout
}

// Claim reserves the lowest free channel.
func (d *RpDmaDriver) Claim() error {
	if d.claimed {
		return nil
	}
	for i := uint8(0); i < numDMAChannels; i++ {
		if claimedChannels&(1<<i) == 0 {
			claimedChannels |= 1 << i
			d.idx = i
			d.hw = dmaChannel(i)
			d.claimed = true
			return nil
		}
	}
	return core.ErrNoChannel
}

// Release disables the channel and returns it to the free pool.
func (d *RpDmaDriver) Release() {
	if !d.claimed {
		return
	}
	d.hw.CTRL_TRIG.ClearBits(rp.DMA_CH0_CTRL_TRIG_EN_Msk)
	claimedChannels &^= 1 << d.idx
	d.claimed = false
	d.hw = nil
}

// StartPull arms one burst and starts it immediately.
func (d *RpDmaDriver) StartPull(dst []uint16) error {
	if !d.claimed {
		return errUnclaimed
	}
	if len(dst) == 0 {
		return errDMAEmpty
	}
	if d.busy() {
		return errDMABusy
	}

	hw := d.hw
	hw.CTRL_TRIG.ClearBits(rp.DMA_CH0_CTRL_TRIG_EN_Msk)
	hw.READ_ADDR.Set(uint32(uintptr(unsafe.Pointer(&rp.ADC.FIFO))))
	hw.WRITE_ADDR.Set(uint32(uintptr(unsafe.Pointer(&dst[0]))))
	hw.TRANS_COUNT.Set(uint32(len(dst)))

	var cc dmaChannelConfig
	cc.SetTREQ_SEL(dreqADC)
	cc.SetTransferDataSize(dmaTxSize16)
	cc.SetChainTo(d.idx) // chain to self: no chaining
	cc.SetReadIncrement(false)
	cc.SetWriteIncrement(true)
	cc.SetEnable(true)

	// The CTRL_TRIG write starts the transfer.
	hw.CTRL_TRIG.Set(cc.CTRL)
	return nil
}

// WaitForFinish blocks until the armed burst completes, yielding between
// polls. With a timeout set it aborts the channel and reports
// core.ErrTransferTimeout once the deadline passes, leaving the channel
// safe to re-arm.
func (d *RpDmaDriver) WaitForFinish() error {
	if !d.claimed {
		return errUnclaimed
	}
	deadline := d.newDeadline()
	for d.busy() {
		if deadline.expired() {
			d.abort()
			return core.ErrTransferTimeout
		}
		gosched()
	}
	return nil
}

func (d *RpDmaDriver) busy() bool {
	return d.hw.CTRL_TRIG.Get()&rp.DMA_CH0_CTRL_TRIG_BUSY != 0
}

// abort stops the in-flight transfer and waits for the in-flight bus
// accesses to flush. Until CHAN_ABORT reads back zero the channel must not
// be restarted.
func (d *RpDmaDriver) abort() {
	chMask := uint32(1) << d.idx
	rp.DMA.CHAN_ABORT.Set(chMask)

	deadline := d.newDeadline()
	for rp.DMA.CHAN_ABORT.Get()&chMask != 0 {
		if deadline.expired() {
			println("dma: abort flush timeout")
			break
		}
		gosched()
	}
	d.hw.CTRL_TRIG.ClearBits(rp.DMA_CH0_CTRL_TRIG_EN_Msk)
}

type deadline struct {
	t time.Time
}

func (dl deadline) expired() bool {
	if dl.t.IsZero() {
		return false
	}
	return time.Since(dl.t) > 0
}

func (d *RpDmaDriver) newDeadline() deadline {
	if d.timeout <= 0 {
		return deadline{}
	}
	return deadline{t: time.Now().Add(d.timeout)}
}

type dmaTxSize uint32

const (
	dmaTxSize8 dmaTxSize = iota
	dmaTxSize16
	dmaTxSize32
)

// dmaChannelConfig builds a CTRL_TRIG word from the reset state. The
// fields left at zero (ring, byte swap, sniff, high priority, IRQ quiet)
// are exactly the ones every burst here wants off.
type dmaChannelConfig struct {
	CTRL uint32
}

// SetTREQ_SEL selects the transfer request signal pacing the channel.
func (cc *dmaChannelConfig) SetTREQ_SEL(dreq uint32) {
	cc.CTRL = (cc.CTRL & ^uint32(rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_Msk)) |
		(dreq << rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_Pos)
}

// SetChainTo selects the channel triggered on completion; a channel's own
// index disables chaining.
func (cc *dmaChannelConfig) SetChainTo(chainTo uint8) {
	cc.CTRL = (cc.CTRL & ^uint32(rp.DMA_CH0_CTRL_TRIG_CHAIN_TO_Msk)) |
		(uint32(chainTo) << rp.DMA_CH0_CTRL_TRIG_CHAIN_TO_Pos)
}

func (cc *dmaChannelConfig) SetTransferDataSize(size dmaTxSize) {
	cc.CTRL = (cc.CTRL & ^uint32(rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_Msk)) |
		(uint32(size) << rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_Pos)
}

func (cc *dmaChannelConfig) SetReadIncrement(incr bool) {
	setBitPos(&cc.CTRL, rp.DMA_CH0_CTRL_TRIG_INCR_READ_Pos, incr)
}

func (cc *dmaChannelConfig) SetWriteIncrement(incr bool) {
	setBitPos(&cc.CTRL, rp.DMA_CH0_CTRL_TRIG_INCR_WRITE_Pos, incr)
}

func (cc *dmaChannelConfig) SetEnable(enable bool) {
	setBitPos(&cc.CTRL, rp.DMA_CH0_CTRL_TRIG_EN_Pos, enable)
}

func setBitPos(cc *uint32, pos uint32, bit bool) {
	if bit {
		*cc = *cc | (1 << pos)
	} else {
		*cc = *cc & ^(1 << pos)
	}
}

func gosched() {
	runtime.Gosched()
}
