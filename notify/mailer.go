package notify

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// mailTimeout bounds the whole dial/handshake/send exchange; the mail
// transport is the one external call allowed to be slow.
const mailTimeout = 30 * time.Second

var ErrNotConfigured = errors.New("email service not configured")

// Mailer sends transactional mail over SMTP with STARTTLS.
type Mailer struct {
	Host string
	Port string
	User string
	Pass string
}

func NewMailer(host, port, user, pass string) *Mailer {
	return &Mailer{Host: host, Port: port, User: user, Pass: pass}
}

func (m *Mailer) Configured() bool {
	return m.User != "" && m.Pass != ""
}

// Send delivers a message. html takes precedence over text when both are
// set, matching what the consuming frontend sends.
func (m *Mailer) Send(to, subject, text, html string) error {
	if !m.Configured() {
		return ErrNotConfigured
	}

	addr := net.JoinHostPort(m.Host, m.Port)
	conn, err := net.DialTimeout("tcp", addr, mailTimeout)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	conn.SetDeadline(time.Now().Add(mailTimeout))

	client, err := smtp.NewClient(conn, m.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	if err := client.Mail(m.User); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	wc, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := wc.Write([]byte(m.buildMessage(to, subject, text, html))); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func (m *Mailer) buildMessage(to, subject, text, html string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.User)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	if html != "" {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(html)
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		b.WriteString(text)
	}
	b.WriteString("\r\n")
	return b.String()
}
