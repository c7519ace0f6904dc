package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dan9191/calc-service/internal/config"
	"github.com/Dan9191/calc-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger,
	}
	s.send = s.sendSMTP
	return s
}

func (s *Sender) sendSMTP(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	return e.Send(addr, auth)
}

// SendNotes emails the notes attached to one calculator
func (s *Sender) SendNotes(to, calculatorName string, notes []models.Note) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your notes: %s", calculatorName)
	e.Text = []byte(notesBody(calculatorName, notes))

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send notes to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

func notesBody(calculatorName string, notes []models.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Notes saved for the %s:\n\n", calculatorName)
	if len(notes) == 0 {
		b.WriteString("(no notes)\n")
	}
	for i, n := range notes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, n.Text)
	}
	b.WriteString("\nSent from Calc Service")
	return b.String()
}
