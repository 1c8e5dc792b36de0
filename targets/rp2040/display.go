//go:build rp2040

package main

import (
	"image/color"
	"machine"
	"strconv"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/AntonioFialhoSN/ATIVIDADECap5-Aplicacoes-DMA/core"
)

// The OLED sits on I2C1: SDA on GPIO14, SCL on GPIO15, 400 kHz.
const (
	oledSDA  = machine.GPIO14
	oledSCL  = machine.GPIO15
	oledAddr = 0x3C

	oledWidth  = 128
	oledHeight = 64
)

// Fixed three-line layout. tinyfont y coordinates are glyph baselines, so
// the rows sit one font height below their top edges.
const (
	lineX     = 5
	titleY    = 10
	readingY  = 26
	footerY   = 42
	titleText = "SENSOR DE TEMP"
	footText  = "RP2040 INTERNO"
)

var oledWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// OledDisplay renders the averaged reading on the SSD1306. It owns the bus
// and the framebuffer; the loop only hands it a temperature.
type OledDisplay struct {
	dev  ssd1306.Device
	line []byte
}

var _ core.Display = (*OledDisplay)(nil)

// NewOledDisplay brings up the bus and panel and leaves a blank frame
// showing.
func NewOledDisplay() (*OledDisplay, error) {
	err := machine.I2C1.Configure(machine.I2CConfig{
		SDA:       oledSDA,
		SCL:       oledSCL,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C1)
	dev.Configure(ssd1306.Config{
		Width:    oledWidth,
		Height:   oledHeight,
		Address:  oledAddr,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearBuffer()
	dev.ClearDisplay()

	return &OledDisplay{
		dev:  dev,
		line: make([]byte, 0, 24),
	}, nil
}

// ShowTemperature redraws the whole frame with the new reading.
func (d *OledDisplay) ShowTemperature(celsius float32) error {
	d.dev.ClearBuffer()

	// Reuse one scratch line per frame instead of fmt to keep the render
	// path allocation-light.
	d.line = d.line[:0]
	d.line = append(d.line, "Temp: "...)
	d.line = strconv.AppendFloat(d.line, float64(celsius), 'f', 2, 32)
	d.line = append(d.line, " C"...)

	tinyfont.WriteLine(&d.dev, &proggy.TinySZ8pt7b, lineX, titleY, titleText, oledWhite)
	tinyfont.WriteLine(&d.dev, &proggy.TinySZ8pt7b, lineX, readingY, string(d.line), oledWhite)
	tinyfont.WriteLine(&d.dev, &proggy.TinySZ8pt7b, lineX, footerY, footText, oledWhite)

	return d.dev.Display()
}
