package core

// Electrical characteristics of the on-chip ADC path feeding the
// temperature sensor channel. The reference is the board's 3.3 V rail and
// conversions are 12 bits wide, so one count is 3.3/4096 volts.
const (
	adcVoltageRef = 3.3
	adcMaxCount   = 1 << 12
)

// RP2040 datasheet characterization of the internal sensor: the diode
// reads 0.706 V at 27 degC and drops 1.721 mV per degree above that.
const (
	sensorBaseCelsius = 27.0
	sensorBaseVolts   = 0.706
	sensorVoltsPerDeg = 0.001721
)

// ConvertToCelsius maps one raw 12-bit conversion from the internal
// temperature sensor to degrees Celsius. It is total over the uint16
// domain and performs no range validation; the acquisition path only ever
// feeds it FIFO entries in 0..4095. All arithmetic is single precision to
// match the sensor characterization.
func ConvertToCelsius(raw uint16) float32 {
	const countsToVolts = float32(adcVoltageRef) / adcMaxCount
	voltage := float32(raw) * countsToVolts
	return sensorBaseCelsius - (voltage-sensorBaseVolts)/sensorVoltsPerDeg
}
