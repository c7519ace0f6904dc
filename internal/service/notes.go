package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/Dan9191/calc-service/internal/catalog"
	"github.com/Dan9191/calc-service/internal/models"
	"github.com/google/uuid"
)

// NoteColors is the sticky note palette
var NoteColors = []string{
	"#fefe9c", // yellow
	"#a8e6ff", // light blue
	"#ffb3d9", // pink
	"#ffa7a6", // salmon
	"#b8f5cc", // light green
}

func notesKey(calculatorID string) string {
	return "notes-" + calculatorID
}

// ListNotes returns the notes a device attached to a calculator
func (s *Service) ListNotes(ctx context.Context, deviceID, calculatorID string) ([]models.Note, error) {
	if _, err := catalog.ByID(calculatorID); err != nil {
		return nil, err
	}
	return readList[models.Note](ctx, s, s.scope(deviceID), notesKey(calculatorID))
}

// AddNote appends a note with a random palette colour
func (s *Service) AddNote(ctx context.Context, deviceID, calculatorID, text string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.ListNotes(ctx, deviceID, calculatorID)
	if err != nil {
		return models.Note{}, err
	}
	note := models.Note{
		ID:    uuid.New().String(),
		Text:  text,
		Color: NoteColors[rand.IntN(len(NoteColors))],
	}
	notes = append(notes, note)
	if err := writeList(ctx, s.scope(deviceID), notesKey(calculatorID), notes); err != nil {
		return models.Note{}, err
	}
	s.log.WithField("calculator", calculatorID).Debugf("Note %s added", note.ID)
	return note, nil
}

// UpdateNote replaces the text of a note
func (s *Service) UpdateNote(ctx context.Context, deviceID, calculatorID, noteID, text string) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.ListNotes(ctx, deviceID, calculatorID)
	if err != nil {
		return models.Note{}, err
	}
	for i := range notes {
		if notes[i].ID == noteID {
			notes[i].Text = text
			if err := writeList(ctx, s.scope(deviceID), notesKey(calculatorID), notes); err != nil {
				return models.Note{}, err
			}
			return notes[i], nil
		}
	}
	return models.Note{}, fmt.Errorf("note %s: %w", noteID, ErrNotFound)
}

// DeleteNote removes a note
func (s *Service) DeleteNote(ctx context.Context, deviceID, calculatorID, noteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.ListNotes(ctx, deviceID, calculatorID)
	if err != nil {
		return err
	}
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return fmt.Errorf("note %s: %w", noteID, ErrNotFound)
	}
	return writeList(ctx, s.scope(deviceID), notesKey(calculatorID), kept)
}

// ShareNotes emails every note of a calculator to the given address
func (s *Service) ShareNotes(ctx context.Context, deviceID, calculatorID, to string) error {
	if s.mailer == nil {
		return ErrMailDisabled
	}
	calc, err := catalog.ByID(calculatorID)
	if err != nil {
		return err
	}
	notes, err := s.ListNotes(ctx, deviceID, calculatorID)
	if err != nil {
		return err
	}
	if err := s.mailer.SendNotes(to, calc.Name, notes); err != nil {
		return err
	}
	s.log.Infof("Shared %d notes of %s", len(notes), calculatorID)
	return nil
}
