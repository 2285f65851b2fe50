package pricing

import "errors"

// DeliveryKind selects how the order is delivered. Exactly one kind is
// active at a time.
type DeliveryKind string

const (
	DeliveryStandard  DeliveryKind = "standard"
	DeliveryExpress   DeliveryKind = "express"
	DeliveryScheduled DeliveryKind = "scheduled"
)

// Fee is the fixed delivery charge for the kind, independent of cart
// contents. Unknown kinds ship as standard.
func (k DeliveryKind) Fee() float64 {
	switch k {
	case DeliveryExpress:
		return 49
	case DeliveryScheduled:
		return 29
	default:
		return 0
	}
}

// TimeSlots are the windows a scheduled delivery can be booked into.
var TimeSlots = []string{
	"9am-12pm",
	"12pm-3pm",
	"3pm-6pm",
	"6pm-9pm",
}

var (
	ErrUnknownDeliveryKind = errors.New("unknown delivery option")
	ErrUnknownTimeSlot     = errors.New("unknown delivery time slot")
)

// DeliveryOption is the active delivery choice. Date and TimeSlot are
// meaningful for scheduled delivery only.
type DeliveryOption struct {
	Kind     DeliveryKind `json:"kind"`
	Date     string       `json:"date,omitempty"`
	TimeSlot string       `json:"time_slot,omitempty"`
}

// Validate checks the option is one of the known kinds and, for a
// scheduled delivery with a slot chosen, that the slot is one of the
// fixed windows.
func (o DeliveryOption) Validate() error {
	switch o.Kind {
	case DeliveryStandard, DeliveryExpress:
		return nil
	case DeliveryScheduled:
		if o.TimeSlot == "" {
			return nil
		}
		for _, slot := range TimeSlots {
			if o.TimeSlot == slot {
				return nil
			}
		}
		return ErrUnknownTimeSlot
	default:
		return ErrUnknownDeliveryKind
	}
}
