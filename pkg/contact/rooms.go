package contact

// RoomOption is one entry of the room type select.
type RoomOption struct {
	ID    string
	Label string
}

// RoomOptions are offered in this order after the empty placeholder.
// The validator only checks that a value was chosen.
var RoomOptions = []RoomOption{
	{ID: "classic", Label: "Classic double"},
	{ID: "deluxe", Label: "Deluxe room"},
	{ID: "garden-suite", Label: "Garden suite"},
	{ID: "event", Label: "Event or conference space"},
}
