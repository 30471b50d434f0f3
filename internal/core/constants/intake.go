package constants

const (
	// DefaultDailyGoalMl is the daily intake goal assumed when the caller
	// supplies none
	DefaultDailyGoalMl = 2000.0

	// DefaultCupSizeMl is the cup volume used for ml-to-cups conversion
	DefaultCupSizeMl = 250.0

	// MlPerKgFactor is the base recommendation factor (ml of water per kg
	// of body weight per day)
	MlPerKgFactor = 33.0
)

// Activity level identifiers for intake recommendation
const (
	ActivitySedentary = "sedentary"
	ActivityModerate  = "moderate"
	ActivityActive    = "active"
)

// Climate identifiers for intake recommendation
const (
	ClimateCold      = "cold"
	ClimateTemperate = "temperate"
	ClimateHot       = "hot"
)
