package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const invocationHistoryLimit = 20

// Storage persists observational data for the demo bot, currently a capped
// per-actor invocation history. Command state itself is never persisted.
type Storage struct {
	ds *datastore.DataStore
}

// InvocationRecord is one executed command invocation.
type InvocationRecord struct {
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Command  string    `json:"command"`
	Args     []string  `json:"args"`
	Datetime time.Time `json:"datetime"`
}

type actorRecord struct {
	InvocationsList []InvocationRecord `json:"invocations_list"`
}

// New opens or creates the datastore file at path.
func New(path string) (*Storage, error) {
	ds, err := datastore.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open datastore: %w", err)
	}
	return &Storage{ds: ds}, nil
}

// Close flushes and closes the underlying datastore.
func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateActorRecord loads the record for an actor, creating an empty one
// on first use. The datastore hands back generic JSON values, so the record is
// round-tripped through json to regain its shape.
func (s *Storage) getOrCreateActorRecord(userID string) (*actorRecord, error) {
	data, exists := s.ds.Get(userID)
	if !exists {
		record := &actorRecord{InvocationsList: []InvocationRecord{}}
		s.ds.Add(userID, record)
		return record, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}
	var record actorRecord
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to actorRecord: %w", err)
	}

	if len(record.InvocationsList) > invocationHistoryLimit {
		record.InvocationsList = record.InvocationsList[len(record.InvocationsList)-invocationHistoryLimit:]
	}
	return &record, nil
}

// AppendInvocation records an invocation for the given actor.
func (s *Storage) AppendInvocation(rec InvocationRecord) error {
	record, err := s.getOrCreateActorRecord(rec.UserID)
	if err != nil {
		return err
	}
	record.InvocationsList = append(record.InvocationsList, rec)
	if len(record.InvocationsList) > invocationHistoryLimit {
		record.InvocationsList = record.InvocationsList[len(record.InvocationsList)-invocationHistoryLimit:]
	}
	s.ds.Add(rec.UserID, record)
	return nil
}

// FetchInvocations returns the recorded history for an actor, oldest first.
func (s *Storage) FetchInvocations(userID string) ([]InvocationRecord, error) {
	record, err := s.getOrCreateActorRecord(userID)
	if err != nil {
		return nil, err
	}
	return record.InvocationsList, nil
}
