package mailer

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendResetToken(toEmail, token string) error
	SendReceipt(toEmail, clientName string, total float64, closedAt time.Time) error
	SendOverdueNotice(toEmail, clientName string, amount float64, dueDate time.Time) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}
	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to BarberFlow!</h2>
			<p>Your verification code is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 15 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, otp)
	return s.send(toEmail, "Your Verification Code", body)
}

func (s *emailService) SendResetToken(toEmail, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>You requested to reset your password. Click the button below to proceed:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>This link will expire in 1 hour.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetLink, resetLink)
	return s.send(toEmail, "Reset Your Password", body)
}

func (s *emailService) SendReceipt(toEmail, clientName string, total float64, closedAt time.Time) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you for your visit, %s!</h2>
			<p>Your sale was closed on %s.</p>
			<h1 style="color: #4CAF50;">R$ %.2f</h1>
			<p>We hope to see you again soon.</p>
		</div>
	`, clientName, closedAt.Format("02/01/2006 15:04"), total)
	return s.send(toEmail, "Your Receipt", body)
}

func (s *emailService) SendOverdueNotice(toEmail, clientName string, amount float64, dueDate time.Time) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payment Overdue</h2>
			<p>Hello %s, a subscription payment of <strong>R$ %.2f</strong> was due on %s and is still pending.</p>
			<p>Please settle it to keep the subscription active.</p>
		</div>
	`, clientName, amount, dueDate.Format("02/01/2006"))
	return s.send(toEmail, "Payment Overdue", body)
}
