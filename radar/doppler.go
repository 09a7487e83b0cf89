package radar

// Propagation speed for both the range delay and the Doppler shift.
const speedOfLight = 299792458.0

// Doppler returns the frequency shift observed off a reflector moving at
// v m/s relative to a transmitted tone of hz. Positive v recedes and
// shifts the return down.
func Doppler(hz, v float64) float64 {
	return hz * ((speedOfLight-v)/(speedOfLight+v) - 1)
}
