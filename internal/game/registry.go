package game

// RoomRegistry is the process-local room store. Rooms are ephemeral; nothing
// here survives a restart. Constructed per coordinator, never global.
type RoomRegistry struct {
	rooms map[RoomCode]*Room
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[RoomCode]*Room)}
}

func (r *RoomRegistry) Save(room *Room) {
	r.rooms[room.Code()] = room
}

func (r *RoomRegistry) FindByCode(code RoomCode) (*Room, bool) {
	room, ok := r.rooms[code]
	return room, ok
}

func (r *RoomRegistry) Delete(code RoomCode) {
	delete(r.rooms, code)
}

func (r *RoomRegistry) Exists(code RoomCode) bool {
	_, ok := r.rooms[code]
	return ok
}

// ConnEntry is where a connection sits: which room, which slot.
type ConnEntry struct {
	Code RoomCode
	Slot int
}

// ConnectionRegistry indexes connections into rooms so inbound events route
// without scanning. The Room stays the source of truth for membership; this
// mapping is rebuilt on join and dropped on disconnect.
type ConnectionRegistry struct {
	conns map[string]ConnEntry
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{conns: make(map[string]ConnEntry)}
}

func (r *ConnectionRegistry) Register(connID string, code RoomCode, slot int) {
	r.conns[connID] = ConnEntry{Code: code, Slot: slot}
}

func (r *ConnectionRegistry) Get(connID string) (ConnEntry, bool) {
	entry, ok := r.conns[connID]
	return entry, ok
}

// Remove deletes the mapping and returns what it was, so the caller can
// still find the room to notify after the connection is gone.
func (r *ConnectionRegistry) Remove(connID string) (ConnEntry, bool) {
	entry, ok := r.conns[connID]
	if ok {
		delete(r.conns, connID)
	}
	return entry, ok
}
