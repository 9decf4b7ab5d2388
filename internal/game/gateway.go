package game

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// NetworkSession abstracts the websocket so pumps are testable.
type NetworkSession interface {
	Close(reason string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

// MatchRecorder receives finished matches. The hub tolerates a nil recorder.
type MatchRecorder interface {
	RecordMatch(roomCode string, winnerSlot, rounds int, cause string) error
}

const (
	outboxSize   = 64
	pingInterval = 30 * time.Second
)

type wsConn struct {
	socket *websocket.Conn
}

func NewWebsocketConnection(conn *websocket.Conn) *wsConn {
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(2 * pingInterval))
	})
	return &wsConn{socket: conn}
}

func (wc *wsConn) Write(data []byte) error {
	return wc.socket.WriteMessage(websocket.TextMessage, data)
}

func (wc *wsConn) Ping() error {
	return wc.socket.WriteMessage(websocket.PingMessage, nil)
}

func (wc *wsConn) Read() ([]byte, error) {
	_, p, err := wc.socket.ReadMessage()
	return p, err
}

func (wc *wsConn) Close(reason string) {
	wc.socket.SetWriteDeadline(time.Now().Add(20 * time.Second))
	wc.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))
	wc.socket.Close()
}

type session struct {
	id     string
	conn   NetworkSession
	outbox chan []byte
	// done is closed by the hub loop when the session ends; the outbox is
	// never closed, so a racing push cannot panic.
	done    chan struct{}
	limiter *rate.Limiter
}

type commandKind int

const (
	cmdRegister commandKind = iota
	cmdUnregister
	cmdEvent
)

type command struct {
	kind commandKind
	s    *session
	env  Envelope
}

// Hub is the session gateway: it owns every live connection and runs all
// game-state mutation on one goroutine, so rooms and registries need no
// locks. Register, events and unregister all travel through one FIFO queue,
// which preserves per-connection order: a session's events are always
// processed after its registration and before its disconnect.
type Hub struct {
	coordinator *Coordinator
	recorder    MatchRecorder
	logger      zerolog.Logger

	sessions map[string]*session
	queue    chan command
}

func NewHub(coordinator *Coordinator, recorder MatchRecorder, logger zerolog.Logger) *Hub {
	return &Hub{
		coordinator: coordinator,
		recorder:    recorder,
		logger:      logger,
		sessions:    make(map[string]*session),
		queue:       make(chan command, 1024),
	}
}

// Connect adopts an upgraded websocket: assigns a connection id, starts the
// pumps and hands the session to the hub loop.
func (h *Hub) Connect(conn NetworkSession) {
	s := &session{
		id:      uuid.NewString(),
		conn:    conn,
		outbox:  make(chan []byte, outboxSize),
		done:    make(chan struct{}),
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
	// Enqueue the registration before the pumps start, so the FIFO queue
	// guarantees it lands ahead of anything the pumps produce.
	h.queue <- command{kind: cmdRegister, s: s}
	go h.readPump(s)
	go h.writePump(s)
}

func (h *Hub) readPump(s *session) {
	defer func() {
		h.queue <- command{kind: cmdUnregister, s: s}
	}()

	for {
		data, err := s.conn.Read()
		if err != nil {
			return
		}
		if !s.limiter.Allow() {
			continue
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			h.logger.Debug().Str("conn", s.id).Err(err).Msg("dropping malformed frame")
			continue
		}
		h.queue <- command{kind: cmdEvent, s: s, env: env}
	}
}

func (h *Hub) writePump(s *session) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		s.conn.Close("")
	}()

	for {
		select {
		case <-s.done:
			return
		case data := <-s.outbox:
			if err := s.conn.Write(data); err != nil {
				return
			}
		case <-ticker.C:
			if err := s.conn.Ping(); err != nil {
				return
			}
		}
	}
}

// Run processes registrations, disconnects and client events until the
// context is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			for _, s := range h.sessions {
				close(s.done)
			}
			return ctx.Err()
		case cmd := <-h.queue:
			switch cmd.kind {
			case cmdRegister:
				h.sessions[cmd.s.id] = cmd.s
				h.logger.Debug().Str("conn", cmd.s.id).Msg("connected")
			case cmdUnregister:
				h.handleDisconnect(cmd.s)
			case cmdEvent:
				h.dispatch(cmd.s, cmd.env)
			}
		}
	}
}

func (h *Hub) dispatch(s *session, env Envelope) {
	// A session that already disconnected produces no effects: its events
	// are dropped before any handler can touch the registries.
	if _, live := h.sessions[s.id]; !live {
		h.logger.Debug().Str("conn", s.id).Str("event", env.Event).Msg("dropping event from closed session")
		return
	}

	switch env.Event {
	case EventCreateRoom:
		h.handleCreateRoom(s)
	case EventJoinRoom:
		h.handleJoinRoom(s, env.Data)
	case EventSelectChar:
		h.handleSelectCharacter(s, env.Data)
	case EventSubmitWord:
		h.handleSubmitWord(s, env.Data)
	case EventSentenceReady:
		h.handleSentenceReady(s, env.Data)
	case EventRecordingDone:
		h.handleRecordingDone(s, env.Data)
	case EventJudgmentReady:
		h.handleJudgmentReady(s, env.Data)
	case EventRoundComplete:
		h.handleRoundComplete(s, env.Data)
	default:
		h.logger.Debug().Str("conn", s.id).Str("event", env.Event).Msg("unknown event")
	}
}

func (h *Hub) handleCreateRoom(s *session) {
	result := h.coordinator.CreateRoom(s.id)
	h.send(s, EventRoomCreated, roomAssignedPayload{
		RoomCode:   result.RoomCode.String(),
		PlayerSlot: result.Slot,
	})
	h.logger.Info().Str("room", result.RoomCode.String()).Str("conn", s.id).Msg("room created")
}

func (h *Hub) handleJoinRoom(s *session, data json.RawMessage) {
	var payload joinRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.send(s, EventRoomJoined, errorPayload{Error: ErrInvalidCode.Error()})
		return
	}

	result, err := h.coordinator.JoinRoom(s.id, payload.RoomCode)
	if err != nil {
		h.send(s, EventRoomJoined, errorPayload{Error: err.Error()})
		return
	}

	h.send(s, EventRoomJoined, roomAssignedPayload{
		RoomCode:   result.RoomCode.String(),
		PlayerSlot: result.Slot,
	})
	h.broadcast(result.RoomCode, EventGameStart, nil, "")
	h.logger.Info().Str("room", result.RoomCode.String()).Str("conn", s.id).Msg("room joined")
}

func (h *Hub) handleSelectCharacter(s *session, data json.RawMessage) {
	var payload selectCharacterPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	result, ok := h.coordinator.SelectCharacter(s.id, payload.CharacterID)
	if !ok {
		return
	}
	if result.BothSelected {
		h.broadcast(result.RoomCode, EventBothCharsSelected, bothCharsSelectedPayload{
			Char1: result.Characters[1],
			Char2: result.Characters[2],
		}, "")
	}
}

func (h *Hub) handleSubmitWord(s *session, data json.RawMessage) {
	var payload submitWordPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	result, ok := h.coordinator.SubmitWord(s.id, payload.Word)
	if !ok {
		return
	}

	h.broadcast(result.RoomCode, EventOpponentWord, nil, s.id)
	if result.BothSubmitted {
		h.broadcast(result.RoomCode, EventWordsReady, wordsReadyPayload{
			Word1: result.Words[1],
			Word2: result.Words[2],
		}, "")
	}
}

func (h *Hub) handleSentenceReady(s *session, data json.RawMessage) {
	var payload sentenceReadyPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	code, ok := h.coordinator.SetSentence(s.id, payload.Sentence)
	if !ok {
		return
	}
	h.broadcast(code, EventSentenceGenerated, sentenceGeneratedPayload{Sentence: payload.Sentence}, "")
}

func (h *Hub) handleRecordingDone(s *session, data json.RawMessage) {
	var payload recordingDonePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	result, ok := h.coordinator.SubmitRecording(s.id, payload.AudioData)
	if !ok {
		return
	}

	h.broadcast(result.RoomCode, EventOpponentRecording, nil, s.id)
	if result.BothDone {
		h.broadcast(result.RoomCode, EventBothRecordingsDone, bothRecordingsDonePayload{
			Audio1: result.Recordings[1],
			Audio2: result.Recordings[2],
		}, "")
	}
}

// handleJudgmentReady relays the slot-1 client's judgment verbatim. The
// resolver is deterministic, so the peer trusts this result without
// recomputing it.
func (h *Hub) handleJudgmentReady(s *session, data json.RawMessage) {
	code, ok := h.coordinator.RoomCodeOf(s.id)
	if !ok {
		return
	}
	h.broadcastRaw(code, EventJudgmentResult, data, "")
}

func (h *Hub) handleRoundComplete(s *session, data json.RawMessage) {
	var payload roundCompletePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}

	result, ok := h.coordinator.RoundComplete(s.id, payload.Hp, payload.Round)
	if !ok {
		return
	}

	h.broadcast(result.RoomCode, EventRoundResult, roundResultPayload{
		Hp:         result.Hp,
		Round:      result.Round,
		KnockedOut: result.Terminated,
	}, "")

	if result.Terminated {
		h.recordMatch(result.RoomCode, result.WinnerSlot, result.Round, "ko")
	}
}

func (h *Hub) handleDisconnect(s *session) {
	if _, known := h.sessions[s.id]; !known {
		return
	}
	delete(h.sessions, s.id)
	close(s.done)

	result, ok := h.coordinator.Disconnect(s.id)
	if !ok {
		return
	}
	for _, id := range result.Remaining {
		if peer, ok := h.sessions[id]; ok {
			h.send(peer, EventOpponentLeft, nil)
		}
	}
	if result.Live {
		h.recordMatch(result.RoomCode, result.RemainingSlot, result.Rounds, "forfeit")
	}
	h.logger.Info().Str("room", result.RoomCode.String()).Str("conn", s.id).Msg("room closed")
}

func (h *Hub) recordMatch(code RoomCode, winnerSlot, rounds int, cause string) {
	if h.recorder == nil {
		return
	}
	if err := h.recorder.RecordMatch(code.String(), winnerSlot, rounds, cause); err != nil {
		h.logger.Warn().Err(err).Str("room", code.String()).Msg("recording match history")
	}
}

func (h *Hub) send(s *session, event string, payload any) {
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		h.logger.Error().Err(err).Str("event", event).Msg("marshaling event")
		return
	}
	h.push(s, data)
}

func (h *Hub) broadcast(code RoomCode, event string, payload any, exceptID string) {
	data, err := marshalEnvelope(event, payload)
	if err != nil {
		h.logger.Error().Err(err).Str("event", event).Msg("marshaling event")
		return
	}
	h.fanOut(code, data, exceptID)
}

// broadcastRaw forwards an already-encoded payload untouched.
func (h *Hub) broadcastRaw(code RoomCode, event string, data json.RawMessage, exceptID string) {
	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		return
	}
	h.fanOut(code, frame, exceptID)
}

func (h *Hub) fanOut(code RoomCode, data []byte, exceptID string) {
	for _, id := range h.coordinator.Members(code) {
		if id == exceptID {
			continue
		}
		if s, ok := h.sessions[id]; ok {
			h.push(s, data)
		}
	}
}

// push never blocks the hub loop; a peer that cannot drain its outbox loses
// frames instead of stalling the whole process. Frames for a finished
// session fall into the done case and vanish.
func (h *Hub) push(s *session, data []byte) {
	select {
	case s.outbox <- data:
	case <-s.done:
	default:
		h.logger.Warn().Str("conn", s.id).Msg("outbox full, dropping frame")
	}
}
