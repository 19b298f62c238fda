package notifications

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	config "github.com/yogamaster/yoga_master/configs"
)

type EmailService struct {
	http        *resty.Client
	apiKey      string
	senderEmail string
	senderName  string
}

type emailPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// NewEmailService returns nil when the mailer is not configured; callers
// treat a nil service as "notifications disabled".
func NewEmailService() *EmailService {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		return nil
	}

	return &EmailService{
		http:        resty.New().SetBaseURL("https://api.brevo.com").SetTimeout(10 * time.Second),
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *EmailService) Send(name, email, subject, htmlContent string) {
	if s == nil {
		return
	}

	payload := emailPayload{
		Sender:      map[string]string{"name": s.senderName, "email": s.senderEmail},
		To:          []map[string]string{{"name": name, "email": email}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	resp, err := s.http.R().
		SetHeader("api-key", s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/v3/smtp/email")
	if err != nil {
		log.Printf("Failed to send email to %s: %v", email, err)
		return
	}
	if resp.IsError() {
		log.Printf("Email API returned %d for %s: %s", resp.StatusCode(), email, resp.String())
		return
	}

	log.Printf("✅ Email sent to %s", email)
}

// SendEnrollmentConfirmation fires after a successful checkout.
func (s *EmailService) SendEnrollmentConfirmation(email string, classCount int, transactionID string) {
	subject := "Your Enrollment is Confirmed!"
	body := fmt.Sprintf(
		"<h1>Enrollment Confirmed</h1><p>Your payment was successful and you are now enrolled in %d class(es). Transaction reference: %s.</p>",
		classCount, transactionID,
	)
	s.Send(email, email, subject, body)
}
