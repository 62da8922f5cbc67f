package event

// EventType represents the type of lifecycle event
type EventType int

const (
	// EventInfection marks a healthy cell turning infected
	// Trigger: InfectionSystem | Subject: cell ID, X/Y: cell position
	EventInfection EventType = iota

	// EventBurst marks an infected cell dying and releasing viruses
	// Trigger: InfectionSystem | Subject: cell ID, Count: viruses released
	EventBurst

	// EventCapture marks an antibody docking on a free virus
	// Trigger: CaptureSystem | Subject: virus ID
	EventCapture

	// EventCellAttach marks an antibody docking on an infected cell
	// Trigger: CaptureSystem | Subject: cell ID
	EventCellAttach

	// EventVirusCleanup marks a leukocyte consuming a virus
	// Trigger: CleanupSystem | Subject: virus ID, Count: antibodies spawned
	EventVirusCleanup

	// EventCellCleanup marks a leukocyte removing an infected or dead cell
	// Trigger: CleanupSystem | Subject: cell ID, Count: antibodies spawned
	EventCellCleanup

	// EventDivision marks a grown cell splitting into two
	// Trigger: GrowthSystem | Subject: parent cell ID
	EventDivision

	// EventReset marks world reinitialization
	// Trigger: Simulation.Reset
	EventReset
)

var typeNames = map[EventType]string{
	EventInfection:    "infection",
	EventBurst:        "burst",
	EventCapture:      "capture",
	EventCellAttach:   "cell_attach",
	EventVirusCleanup: "virus_cleanup",
	EventCellCleanup:  "cell_cleanup",
	EventDivision:     "division",
	EventReset:        "reset",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is a single lifecycle occurrence recorded during a tick
type Event struct {
	Type    EventType
	Tick    uint64
	Subject uint64 // Agent ID the event is about
	X, Y    float64
	Count   int
}
