package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService builds the SMTP sender; it errors when the SMTP environment
// is not configured so callers can run without email.
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass),
		from:   os.Getenv("SMTP_FROM"),
	}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order #%d confirmed - Little Lemon", order.ID))

	var lines strings.Builder
	for _, item := range order.Items {
		lines.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td style="text-align:center">%d</td><td style="text-align:right">%s</td></tr>`,
			item.MenuItem, item.Quantity, item.Price.StringFixed(2)))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #495e57; text-align: center; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        td { padding: 8px; border-bottom: 1px solid #eee; }
        .total { font-size: 18px; font-weight: bold; color: #495e57; text-align: right; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Little Lemon</div>
        <h2>Thank you for your order!</h2>
        <p>Your order <strong>#%d</strong> has been received and is being prepared.</p>
        <table>%s</table>
        <p class="total">Total: %s</p>
        <div class="footer">Little Lemon Restaurant &middot; This is an automated message, please do not reply.</div>
    </div>
</body>
</html>`, order.ID, lines.String(), order.Total.StringFixed(2))

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
