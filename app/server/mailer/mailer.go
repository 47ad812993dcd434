package mailer

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
)

// Mailer relays contact-form submissions to the operator address over
// implicit-TLS SMTP.
type Mailer struct {
	host     string
	port     int
	address  string
	password string
}

func New(host string, port int, address, password string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		address:  address,
		password: password,
	}
}

// Send delivers one fire-and-forget message composed from the form fields.
// The transport connection is released whether or not delivery succeeds.
func (m *Mailer) Send(name, email, phone, message string) error {
	conn, err := tls.Dial("tcp", fmt.Sprintf("%s:%d", m.host, m.port), &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("dial mail transport: %w", err)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open smtp session: %w", err)
	}
	defer client.Close()

	if err := client.Auth(smtp.PlainAuth("", m.address, m.password, m.host)); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	if err := client.Mail(m.address); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(m.address); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("open message body: %w", err)
	}

	body := fmt.Sprintf(
		"Subject: New Message from blog\r\n\r\nName: %s\nUser email: %s\nPhone Number: %s\nMessage: %s",
		name, email, phone, message,
	)
	if _, err := w.Write([]byte(body)); err != nil {
		return fmt.Errorf("write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish message body: %w", err)
	}

	return client.Quit()
}
