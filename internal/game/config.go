package game

// Config gathers every tunable of the simulation and the bot. The decision
// core never reaches for package-level constants: whoever constructs a World
// or a Bot injects one of these, so tests and the headless runner can vary
// any knob without recompiling.
type Config struct {
	// Arena and actors.
	ArenaWidth  int
	ArenaHeight int
	TankSize    int // side of the square hull, pixels
	BulletSize  int
	TankSpeed   float64 // pixels per tick
	TurnRate    float64 // degrees per tick
	BulletSpeed float64 // pixels per tick

	// Firing rules.
	MaxBounces     int // wall bounces before a bullet dies
	FireCooldown   int // ticks between shots
	MaxLiveBullets int // cap on in-flight bullets per tank
	SafeFrames     int // ticks after spawn during which a bullet cannot hit its owner

	// Occupancy grid.
	CellSize     int
	BufferRadius int // Chebyshev inflation radius, in cells

	// Global planner.
	Strategy              Strategy
	EightConnected        bool
	NearestWalkableRadius int // ring-search bound for blocked endpoints

	// Path following.
	PathUpdateEvery int     // recompute the global path every N ticks
	ArrivalDist     float64 // waypoint considered reached inside this distance
	LookAheadDist   float64 // arc length ahead of the tank for the steering point

	// Combat.
	VisionRange  float64 // engagement + line-of-sight envelope
	AimTolerance float64 // degrees; inside this the barrel counts as on target
	ShotMaxSteps int     // step budget for the forward shot simulation
	SafeExitDist float64 // self-hit checks start only beyond this travel distance

	// Threat assessment.
	ThreatRadius    float64 // bullets farther than this are ignored
	ThreatMargin    float64 // added to the half hull width for the miss test
	DodgeDist       float64 // offset of the evasive goal point from the tank
	ClearanceProbes int     // samples per side when picking the dodge direction

	// Local trajectory planner.
	Catalog      []MotionPrimitive
	Weights      ScoreWeights
	PathAdhereN  int     // endpoint is scored against the first N path points
	ClearanceMin float64 // clearance below this is penalized
	RiskRadius   float64 // bullet proximity below this accrues risk

	// Recovery.
	StuckCheckEvery    int     // displacement sample cadence, ticks
	StuckMinMove       float64 // displacement below this counts as "not moving"
	StuckTrigger       int     // consecutive low-displacement samples to trip
	RecoveryScanDist   float64 // radius of the radial obstacle scan
	RecoveryScanStep   float64 // degrees between scan samples
	RecoverySector     float64 // degrees per density sector
	RecoveryTurnFast   int     // rotate-override ticks for large corrections
	RecoveryTurnSlow   int     // rotate-override ticks near alignment
	RecoveryForward    int     // sustained advance ticks once aligned
	RecoveryAlignSmall float64 // degrees; below this the escape heading is "aligned"
	RecoveryAlignLarge float64 // degrees; above this corrections re-evaluate fast
}

// ScoreWeights are the local planner's objective weights.
type ScoreWeights struct {
	Collision  float64 // flat penalty for any collided trajectory
	Heading    float64 // per degree of heading error at the endpoint
	PathAdhere float64 // per pixel from the nearest scored path point
	Clearance  float64 // per pixel of clearance deficit
	Risk       float64 // per pixel of bullet proximity deficit
	GoalDist   float64 // per pixel of residual distance to the goal
}

// DefaultConfig returns the stock arena and bot tuning.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:  600,
		ArenaHeight: 600,
		TankSize:    30,
		BulletSize:  6,
		TankSpeed:   4,
		TurnRate:    4,
		BulletSpeed: 5,

		MaxBounces:     2,
		FireCooldown:   20,
		MaxLiveBullets: 5,
		SafeFrames:     6,

		CellSize:     20,
		BufferRadius: 0,

		Strategy:              StrategyBFS,
		EightConnected:        false,
		NearestWalkableRadius: 5,

		PathUpdateEvery: 10,
		ArrivalDist:     20,
		LookAheadDist:   60,

		VisionRange:  300,
		AimTolerance: 10,
		ShotMaxSteps: 240,
		SafeExitDist: 45,

		ThreatRadius:    80,
		ThreatMargin:    30,
		DodgeDist:       80,
		ClearanceProbes: 3,

		Catalog: DefaultCatalog(),
		Weights: ScoreWeights{
			Collision:  1000,
			Heading:    0.6,
			PathAdhere: 0.5,
			Clearance:  2.0,
			Risk:       4.0,
			GoalDist:   0.35,
		},
		PathAdhereN:  4,
		ClearanceMin: 30,
		RiskRadius:   60,

		StuckCheckEvery:    15,
		StuckMinMove:       6,
		StuckTrigger:       2,
		RecoveryScanDist:   60,
		RecoveryScanStep:   15,
		RecoverySector:     45,
		RecoveryTurnFast:   4,
		RecoveryTurnSlow:   8,
		RecoveryForward:    30,
		RecoveryAlignSmall: 15,
		RecoveryAlignLarge: 60,
	}
}
