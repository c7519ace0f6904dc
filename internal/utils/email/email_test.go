package email

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Dan9191/calc-service/internal/config"
	"github.com/Dan9191/calc-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

func newTestSender() *Sender {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSender(&config.Config{SenderEmail: "calc@example.com"}, log)
}

func TestSendNotes(t *testing.T) {
	s := newTestSender()
	var sent *email.Email
	s.send = func(e *email.Email) error {
		sent = e
		return nil
	}

	notes := []models.Note{{ID: "1", Text: "home loan"}, {ID: "2", Text: "car loan"}}
	if err := s.SendNotes("me@example.com", "EMI Calculator", notes); err != nil {
		t.Fatalf("SendNotes: %v", err)
	}
	if sent.From != "calc@example.com" || sent.To[0] != "me@example.com" {
		t.Errorf("envelope = %s -> %v", sent.From, sent.To)
	}
	if sent.Subject != "Your notes: EMI Calculator" {
		t.Errorf("subject = %q", sent.Subject)
	}
	body := string(sent.Text)
	if !strings.Contains(body, "1. home loan\n2. car loan\n") {
		t.Errorf("body = %q", body)
	}
}

func TestSendNotes_Empty(t *testing.T) {
	if body := notesBody("GPA Calculator", nil); !strings.Contains(body, "(no notes)") {
		t.Errorf("body = %q", body)
	}
}

func TestSendNotes_Failure(t *testing.T) {
	s := newTestSender()
	s.send = func(*email.Email) error { return errors.New("smtp down") }
	if err := s.SendNotes("me@example.com", "EMI Calculator", nil); err == nil {
		t.Fatal("expected error")
	}
}
