package core

// Display is the opaque render target for cycle results. The loop hands it
// one averaged reading per cycle; layout, bus access and framebuffer
// handling belong entirely to the implementation.
type Display interface {
	ShowTemperature(celsius float32) error
}

// DisplayFunc adapts a plain function to the Display interface.
type DisplayFunc func(celsius float32) error

func (f DisplayFunc) ShowTemperature(celsius float32) error {
	return f(celsius)
}
