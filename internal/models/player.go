package models

// Handedness is the hand a player favors.
type Handedness string

const (
	HandednessLeft  Handedness = "left"
	HandednessRight Handedness = "right"
)

// Valid reports whether h is one of the allowed handedness values.
func (h Handedness) Valid() bool {
	return h == HandednessLeft || h == HandednessRight
}

// Player is a record owned by the user who created it. CreatedBy holds the
// owner's user id; it is the only owner key used anywhere in the service.
type Player struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Rating     string     `json:"rating"`
	Handedness Handedness `json:"handedness"`
	CreatedBy  string     `json:"created_by"`
}
