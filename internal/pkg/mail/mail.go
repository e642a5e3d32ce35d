package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/shivajik/profilelinks/internal/pkg/env"
)

// SendMail sends an email via SMTP
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// SendAccountActivation sends the post-registration email carrying the
// account confirmation link.
func SendAccountActivation(to, name, token string) error {
	base := env.GetEnv("APP_URL", "http://localhost:3000")
	link := fmt.Sprintf("%s/api/auth/activate/%s", base, token)
	subject := "Activate your account"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please confirm your email address to activate your account:</p>"+
			"<p><a href=\"%s\">%s</a></p>",
		name, link, link,
	)
	return SendMail(to, subject, body)
}

// SendSubscriptionActivated sends the post-payment receipt email. Failures
// are logged and returned but must never block the activation path.
func SendSubscriptionActivated(to, planName, billingCycle string) error {
	subject := fmt.Sprintf("Your %s subscription is active", planName)
	body := fmt.Sprintf(
		"<p>Thanks for upgrading!</p><p>Your <strong>%s</strong> plan (%s billing) is now active. "+
			"Manage your subscription anytime from your account settings.</p>",
		planName, billingCycle,
	)
	return SendMail(to, subject, body)
}
