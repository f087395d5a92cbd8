package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/ScriptedSpythoN/demoos/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendMedicalReviewed(to, studentName, status, remark, fromDate, toDate string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &emailServiceImpl{cfg: cfg, templates: templates}, nil
}

type medicalReviewedData struct {
	StudentName string
	Status      string
	Remark      string
	FromDate    string
	ToDate      string
}

func (e *emailServiceImpl) SendMedicalReviewed(to, studentName, status, remark, fromDate, toDate string) error {
	var body bytes.Buffer
	data := medicalReviewedData{
		StudentName: studentName,
		Status:      status,
		Remark:      remark,
		FromDate:    fromDate,
		ToDate:      toDate,
	}
	if err := e.templates.ExecuteTemplate(&body, "medical_reviewed.html", data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	subject := fmt.Sprintf("Medical leave request %s", status)
	return e.send(to, subject, body.String())
}

func (e *emailServiceImpl) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	auth := smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.Host)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		e.cfg.From, to, subject, htmlBody,
	))

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = smtp.SendMail(addr, auth, e.cfg.From, []string{to}, msg)
		if lastErr == nil {
			return nil
		}
		slog.Warn("email send failed",
			slog.String("to", to),
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()),
		)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
