package parameter

// Default scene, two unit spheres on crossing paths
const (
	DefaultRadius      = 0.5
	DefaultMass        = 1.0
	DefaultRestitution = 1.0

	// DefaultStep is the simulated time advanced per tick
	DefaultStep = 0.5

	// DefaultTickRate is auto-step ticks per second, 0 steps only on request
	DefaultTickRate = 0

	// MaxTickRate caps -rate and scene tick_rate
	MaxTickRate = 240
)

// Default body placement
var (
	DefaultBodyAPosition = [2]float64{0, 0}
	DefaultBodyAVelocity = [2]float64{-1, 0}
	DefaultBodyBPosition = [2]float64{0.5, -2}
	DefaultBodyBVelocity = [2]float64{0, 8}
)
