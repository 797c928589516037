package domain

// RoomID is an externally supplied room identifier. A room exists only while
// it has members; there is no room entity beyond the identifier.
type RoomID string
