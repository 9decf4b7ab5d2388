package game

import "encoding/json"

// Envelope is the wire frame for both directions: a named event plus its
// JSON payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Client -> server events.
const (
	EventCreateRoom    = "create-room"
	EventJoinRoom      = "join-room"
	EventSelectChar    = "select-character"
	EventSubmitWord    = "submit-word"
	EventSentenceReady = "sentence-ready"
	EventRecordingDone = "recording-done"
	EventJudgmentReady = "judgment-ready"
	EventRoundComplete = "round-complete"
)

// Server -> client events.
const (
	EventRoomCreated        = "room-created"
	EventRoomJoined         = "room-joined"
	EventGameStart          = "game-start"
	EventBothCharsSelected  = "both-characters-selected"
	EventOpponentWord       = "opponent-word-submitted"
	EventWordsReady         = "words-ready"
	EventSentenceGenerated  = "sentence-generated"
	EventOpponentRecording  = "opponent-recording-done"
	EventBothRecordingsDone = "both-recordings-done"
	EventJudgmentResult     = "judgment-result"
	EventRoundResult        = "round-result"
	EventOpponentLeft       = "opponent-left"
)

type joinRoomPayload struct {
	RoomCode string `json:"roomCode"`
}

type selectCharacterPayload struct {
	CharacterID int `json:"characterId"`
}

type submitWordPayload struct {
	Word string `json:"word"`
}

type sentenceReadyPayload struct {
	Sentence string `json:"sentence"`
}

type recordingDonePayload struct {
	AudioData string `json:"audioData"`
}

type roundCompletePayload struct {
	Hp         map[int]int `json:"hp"`
	Round      int         `json:"round"`
	KnockedOut bool        `json:"knockedOut"`
}

type roomAssignedPayload struct {
	RoomCode   string `json:"roomCode"`
	PlayerSlot int    `json:"playerSlot"`
}

type errorPayload struct {
	Error string `json:"error"`
}

type bothCharsSelectedPayload struct {
	Char1 int `json:"char1"`
	Char2 int `json:"char2"`
}

type wordsReadyPayload struct {
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
}

type sentenceGeneratedPayload struct {
	Sentence string `json:"sentence"`
}

type bothRecordingsDonePayload struct {
	Audio1 string `json:"audio1"`
	Audio2 string `json:"audio2"`
}

type roundResultPayload struct {
	Hp         map[int]int `json:"hp"`
	Round      int         `json:"round"`
	KnockedOut bool        `json:"knockedOut"`
}

func marshalEnvelope(event string, payload any) ([]byte, error) {
	env := Envelope{Event: event}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Data = data
	}
	return json.Marshal(env)
}
