package parameter

// Arena geometry
const (
	// CanvasSize is the side of the square world viewport in pixels
	CanvasSize = 720

	// ArenaRadius is the radius of the circular arena
	ArenaRadius = 320.0

	// ArenaCenter is the arena center on both axes
	ArenaCenter = CanvasSize / 2
)

// Population sizes at reset
const (
	PopulationCells      = 90
	PopulationViruses    = 50
	PopulationAntibodies = 14
	PopulationLeukocytes = 4
)

// Agent sizes
const (
	// CellRadiusSmall is the radius of a newborn cell
	CellRadiusSmall = 10.0

	// CellRadiusLarge is the radius of a fully grown cell
	CellRadiusLarge = 18.0

	// VirusRadius is the virus collision and draw radius
	VirusRadius = 7.0

	// AntibodyGlyphSize is the arm length of the drawn Y glyph
	AntibodyGlyphSize = 7.0

	// AntibodyRadius is the antibody collision radius against cells
	AntibodyRadius = 3.0

	// LeukocyteRadius is the leukocyte collision and cleanup radius
	LeukocyteRadius = 13.0
)

// Reset placement
const (
	// PlacementMarginCell keeps initial cells away from the boundary
	PlacementMarginCell = 70.0

	// PlacementSpacingCell is extra clearance between initial cell centers beyond two large radii
	PlacementSpacingCell = 14.0

	// PlacementAttemptsCell bounds rejection sampling for initial cells
	PlacementAttemptsCell = 6000

	PlacementMarginVirus     = 20.0
	PlacementMarginAntibody  = 15.0
	PlacementMarginLeukocyte = 25.0

	// PlacementClearance is the gap required between a mobile agent and any cell at reset
	PlacementClearance = 2.0

	// PlacementAttemptsMobile caps retries for mobile agents before placing without clearance
	PlacementAttemptsMobile = 100000
)
