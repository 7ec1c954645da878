package racing

// Speed samples a per-race speed for a horse in the given condition.
// The baseline maps condition 1..100 onto roughly [0.505, 1.0] and a
// fresh +/-10% jitter is applied on every call.
func Speed(condition int, rng RNG) float64 {
	baseline := 0.5 + float64(condition)/100*0.5
	jitter := 0.9 + rng.Float64()*0.2
	return baseline * jitter
}
