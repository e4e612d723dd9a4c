package broadcast

// RoomBroadcaster delivers a real-time event to every connection joined
// to a room. Rooms are keyed by circle id or member id.
type RoomBroadcaster interface {
	EmitToRoom(room, event string, data any)
}
