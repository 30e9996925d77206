package calendar

// slots is the fixed bookable vocabulary: half-hour increments across
// the two clinic shifts (9:00-11:30 and 1:00-4:30). Every doctor offers
// the same labels; per-doctor availability is display data only.
var slots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "1:00 PM", "1:30 PM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM",
}

// Slots returns the ordered slot vocabulary. The slice is a copy.
func Slots() []string {
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

// ValidSlot reports whether label belongs to the vocabulary.
func ValidSlot(label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
