package domain

// DeviceType enumerates the supported console families
type DeviceType string

const (
	DevicePlayStation1   DeviceType = "PlayStation 1"
	DevicePlayStation2   DeviceType = "PlayStation 2"
	DevicePlayStation3   DeviceType = "PlayStation 3"
	DevicePlayStation4   DeviceType = "PlayStation 4"
	DevicePlayStation5   DeviceType = "PlayStation 5"
	DeviceXbox360        DeviceType = "Xbox 360"
	DeviceXboxOne        DeviceType = "Xbox One"
	DeviceXboxSeriesX    DeviceType = "Xbox Series X"
	DeviceNintendoSwitch DeviceType = "Nintendo Switch"
)

// ConsoleUnitStatus is the operational status of a single console unit
type ConsoleUnitStatus string

const (
	UnitAvailable   ConsoleUnitStatus = "available"
	UnitInUse       ConsoleUnitStatus = "in-use"
	UnitMaintenance ConsoleUnitStatus = "maintenance"
)

// ConsoleUnit is one physical bookable instance of a device
// (e.g. "PS5 #2" within a PlayStation 5 device record)
type ConsoleUnit struct {
	ConsoleID string // stable identifier, unique within the device
	Status    ConsoleUnitStatus
}

// Device belongs to exactly one parlour and owns a set of console units.
// PricePerHour is flat across units; price derivation for bookings uses
// the parlour price, this field is kept for display.
type Device struct {
	ID           int64
	ParlourID    int64
	Type         DeviceType
	ConsoleUnits []ConsoleUnit
	PricePerHour float64
}

// FindConsoleUnit looks up a console unit by its consoleId
func (d *Device) FindConsoleUnit(consoleID string) (*ConsoleUnit, bool) {
	for i := range d.ConsoleUnits {
		if d.ConsoleUnits[i].ConsoleID == consoleID {
			return &d.ConsoleUnits[i], true
		}
	}
	return nil, false
}
