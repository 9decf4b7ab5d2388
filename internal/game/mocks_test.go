package game

import (
	"github.com/stretchr/testify/mock"
)

// --- NetworkSession ---

type MockNetworkSession struct {
	mock.Mock
}

func (m *MockNetworkSession) Close(reason string) {
	m.Called(reason)
}

func (m *MockNetworkSession) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockNetworkSession) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockNetworkSession) Ping() error {
	args := m.Called()
	return args.Error(0)
}

// --- MatchRecorder ---

type MockMatchRecorder struct {
	mock.Mock
}

func (m *MockMatchRecorder) RecordMatch(roomCode string, winnerSlot, rounds int, cause string) error {
	args := m.Called(roomCode, winnerSlot, rounds, cause)
	return args.Error(0)
}
