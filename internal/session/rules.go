package session

const (
	// FoodScore is awarded for every food eaten.
	FoodScore = 10

	// InitialSpeed is the tick rate, in ticks per second, of a new session.
	InitialSpeed = 6
	// MaxSpeed caps the tick rate.
	MaxSpeed = 15
	// SpeedUpEvery is the number of points between speed increases.
	SpeedUpEvery = 50
)
