package answers

import "fmt"

// Slot builds the id of field in the i-th repeated row of a group,
// for example Slot("emp", 3, "name") is "emp3_name".
func Slot(prefix string, i int, field string) string {
	return fmt.Sprintf("%s%d_%s", prefix, i, field)
}

// Equipment is a class of equipment on the driving experience page.
type Equipment string

// Equipment classes in page order.
const (
	StraightTruck  Equipment = "straight_truck"
	TractorSemi    Equipment = "tractor_semi"
	TractorTwins   Equipment = "tractor_twins"
	TractorTriples Equipment = "tractor_triples"
	TankVehicle    Equipment = "tank"
	MotorcoachBus  Equipment = "bus"
	OtherEquipment Equipment = "other"
)

var equipmentLabels = map[Equipment]string{
	StraightTruck:  "Straight Truck",
	TractorSemi:    "Tractor and Semi-Trailer",
	TractorTwins:   "Tractor - Two Trailers",
	TractorTriples: "Tractor - Three Trailers",
	TankVehicle:    "Tank Vehicle",
	MotorcoachBus:  "Motorcoach / School Bus",
	OtherEquipment: "Other",
}

// AllEquipment returns the classes in the order they appear on the page.
func AllEquipment() []Equipment {
	return []Equipment{StraightTruck, TractorSemi, TractorTwins, TractorTriples, TankVehicle, MotorcoachBus, OtherEquipment}
}

// Label returns the printed name of the class.
func (e Equipment) Label() string {
	if l, ok := equipmentLabels[e]; ok {
		return l
	}
	return string(e)
}

// Key returns the id of field for this class, for example
// TractorSemi.Key("miles") is "exp_tractor_semi_miles".
func (e Equipment) Key(field string) string {
	return "exp_" + string(e) + "_" + field
}

// Row budgets. Answers beyond these are not drawn.
const (
	Employers        = 8
	EmployersPerPage = 4
	Accidents        = 5
	Violations       = 4
	Licenses         = 3
	Addresses        = 3
	Schools          = 2
	ReviewViolations = 5
	InquiryLetters   = 6
	ChecklistItems   = 14
)
