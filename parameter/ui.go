package parameter

// Frame rate control surface
const (
	FPSDefault = 60
	FPSMin     = 20
	FPSMax     = 90
	FPSStep    = 5

	// FPSFloor is the lowest rate used to derive dt
	FPSFloor = 10
)

// Timeline chart
const (
	// TimelineHeight is the chart height in terminal rows
	TimelineHeight = 6
)
