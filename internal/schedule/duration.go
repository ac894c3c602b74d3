package schedule

import "strings"

// GeneralMedicine is the specialty name (case-insensitive substring) that
// switches the slot duration policy.
const GeneralMedicine = "medicina general"

const (
	generalMedicineSlotMinutes = 20
	defaultSlotMinutes         = 30
)

// SlotDuration maps a specialty name to its appointment length in minutes.
// The policy is a pure function of the name and callers must query it with a
// freshly loaded specialty, never a cached one.
func SlotDuration(specialtyName string) int {
	if strings.Contains(strings.ToLower(specialtyName), GeneralMedicine) {
		return generalMedicineSlotMinutes
	}
	return defaultSlotMinutes
}
