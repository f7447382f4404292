package storage

import "fmt"

// AddNote appends a note for a user in a guild and returns its 1-based number.
func (s *Storage) AddNote(guildID, userID, text string) (int, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return 0, err
	}
	record.Notes[userID] = append(record.Notes[userID], text)
	if err := s.ds.Set(guildID, record); err != nil {
		return 0, err
	}
	return len(record.Notes[userID]), nil
}

// ListNotes returns a user's notes in insertion order.
func (s *Storage) ListNotes(guildID, userID string) ([]string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.Notes[userID], nil
}

// DeleteNote removes a user's note by its 1-based number.
func (s *Storage) DeleteNote(guildID, userID string, number int) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	notes := record.Notes[userID]
	if number < 1 || number > len(notes) {
		return fmt.Errorf("no note #%d", number)
	}
	record.Notes[userID] = append(notes[:number-1], notes[number:]...)
	return s.ds.Set(guildID, record)
}
