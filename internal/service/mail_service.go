package service

import (
	"fmt"

	"medicare-plus/config"

	"github.com/go-gomail/gomail"
	"github.com/sirupsen/logrus"
)

// MailService is the notification collaborator. Callers treat every send as
// fire-and-forget: a delivery failure is logged and never propagated into
// the result already returned to the client.
type MailService interface {
	SendWelcome(to, name string)
	SendBookingConfirmation(to, name, doctorName, date, timeRange string)
}

type mailService struct {
	dialer *gomail.Dialer
	from   string
	log    *logrus.Logger
}

func NewMailService(cfg config.MailConfig, log *logrus.Logger) MailService {
	return &mailService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

func (s *mailService) SendWelcome(to, name string) {
	body := fmt.Sprintf("Hello %s,\n\nYou have successfully registered to MediCare+.\n\nBest regards,\nMediCare+ Team", name)
	s.send(to, "Registration Notification", body)
}

func (s *mailService) SendBookingConfirmation(to, name, doctorName, date, timeRange string) {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment with Dr. %s on %s (%s) is confirmed.\n\nBest regards,\nMediCare+ Team",
		name, doctorName, date, timeRange,
	)
	s.send(to, "Appointment Confirmation", body)
}

func (s *mailService) send(to, subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Warnf("Failed to send mail %q to %s: %+v", subject, to, err)
	}
}
