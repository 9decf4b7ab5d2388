// Package history keeps a durable log of finished matches. Rooms themselves
// are ephemeral; only the outcome survives the process.
package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketMatches = []byte("matches")

const (
	CauseKnockout = "ko"
	CauseForfeit  = "forfeit"
)

type Match struct {
	RoomCode   string    `json:"room_code"`
	WinnerSlot int       `json:"winner_slot"`
	Rounds     int       `json:"rounds"`
	Cause      string    `json:"cause"`
	FinishedAt time.Time `json:"finished_at"`
}

type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketMatches)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating matches bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(m Match) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketMatches)
		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}

		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal match: %w", err)
		}

		var key [8]byte
		binary.BigEndian.PutUint64(key[:], seq)
		return b.Put(key[:], data)
	})
}

// RecordMatch satisfies the hub's recorder interface.
func (s *Store) RecordMatch(roomCode string, winnerSlot, rounds int, cause string) error {
	return s.Save(Match{
		RoomCode:   roomCode,
		WinnerSlot: winnerSlot,
		Rounds:     rounds,
		Cause:      cause,
		FinishedAt: time.Now(),
	})
}

// Recent returns up to n matches, newest first.
func (s *Store) Recent(n int) ([]Match, error) {
	var matches []Match
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketMatches).Cursor()
		for k, v := c.Last(); k != nil && len(matches) < n; k, v = c.Prev() {
			var m Match
			if err := json.Unmarshal(v, &m); err != nil {
				return fmt.Errorf("unmarshal match: %w", err)
			}
			matches = append(matches, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
