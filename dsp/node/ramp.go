package node

// ramp moves a parameter linearly toward a target over a fixed number of
// samples. Setting a new target while a ramp is in flight continues from
// the current live value, never from the ramp's origin.
type ramp struct {
	current   float64
	target    float64
	perSample float64
}

func newRamp(initial float64) ramp {
	return ramp{current: initial, target: initial}
}

// setTarget schedules a ramp from the current value to target over
// transitionSeconds at the given sample rate.
func (r *ramp) setTarget(target, transitionSeconds, sampleRate float64) {
	r.target = target

	samples := transitionSeconds * sampleRate
	if samples < 1 {
		r.current = target
		r.perSample = 0

		return
	}

	r.perSample = (target - r.current) / samples
}

// advance moves the ramp forward by n samples and returns the new value.
func (r *ramp) advance(n int) float64 {
	if r.perSample == 0 {
		return r.current
	}

	r.current += r.perSample * float64(n)

	overshotUp := r.perSample > 0 && r.current >= r.target
	overshotDown := r.perSample < 0 && r.current <= r.target
	if overshotUp || overshotDown {
		r.current = r.target
		r.perSample = 0
	}

	return r.current
}

// active reports whether a ramp is still in flight.
func (r *ramp) active() bool {
	return r.perSample != 0
}

// value returns the current live value without advancing.
func (r *ramp) value() float64 {
	return r.current
}

// jump sets the value immediately, cancelling any ramp.
func (r *ramp) jump(v float64) {
	r.current = v
	r.target = v
	r.perSample = 0
}
