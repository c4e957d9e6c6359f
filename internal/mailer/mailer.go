// Package mailer delivers the rendered digest over SMTP.
package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/dailybrief/newsdigest/internal/logger"
	"github.com/dailybrief/newsdigest/internal/metrics"
	"github.com/dailybrief/newsdigest/internal/retry"
)

const (
	dialTimeout    = 30 * time.Second
	sessionTimeout = 2 * time.Minute
)

// ErrIncompleteConfig means dispatch was asked for without a full SMTP
// account, so no connection was attempted.
var ErrIncompleteConfig = errors.New("mail config incomplete")

// Config carries the SMTP account used for dispatch.
type Config struct {
	Server   string
	Port     int
	Sender   string
	Password string
	Receiver string
}

// Complete reports whether every field needed for dispatch is set.
func (c Config) Complete() bool {
	return c.Server != "" && c.Port > 0 && c.Sender != "" && c.Password != "" && c.Receiver != ""
}

// Subject builds the dated digest subject line.
func Subject(t time.Time) string {
	return "每日新闻导览-" + t.Format("2006-01-02")
}

// Mailer sends HTML mail through one SMTP account.
type Mailer struct {
	cfg Config
}

func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers html under subject, retrying transient failures with
// exponential backoff.
func (m *Mailer) Send(ctx context.Context, subject string, html []byte) error {
	if !m.cfg.Complete() {
		return ErrIncompleteConfig
	}

	cfg := retry.Config{MaxAttempts: 3, Delay: 2 * time.Second, Backoff: true}
	err := retry.Do(ctx, cfg, func() error {
		return m.sendOnce(subject, html)
	})
	if err != nil {
		return fmt.Errorf("sending digest email: %w", err)
	}

	metrics.Global.IncrementEmailsSent()
	logger.Info("邮件发送成功", "receiver", m.cfg.Receiver)
	return nil
}

func (m *Mailer) sendOnce(subject string, html []byte) error {
	addr := net.JoinHostPort(m.cfg.Server, strconv.Itoa(m.cfg.Port))
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", addr, err)
	}
	if err := conn.SetDeadline(time.Now().Add(sessionTimeout)); err != nil {
		conn.Close()
		return fmt.Errorf("setting deadline: %w", err)
	}

	c, err := smtp.NewClient(conn, m.cfg.Server)
	if err != nil {
		conn.Close()
		return fmt.Errorf("greeting %s: %w", addr, err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.cfg.Server}); err != nil {
			return fmt.Errorf("starting TLS: %w", err)
		}
	}
	if ok, _ := c.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", m.cfg.Sender, m.cfg.Password, m.cfg.Server)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("authenticating: %w", err)
		}
	}

	if err := c.Mail(m.cfg.Sender); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := c.Rcpt(m.cfg.Receiver); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(m.message(subject, html)); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message: %w", err)
	}
	return c.Quit()
}

// message assembles the RFC 5322 payload. The subject is Q-encoded so
// Chinese text survives 7-bit transport.
func (m *Mailer) message(subject string, html []byte) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.Sender)
	fmt.Fprintf(&b, "To: %s\r\n", m.cfg.Receiver)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.Write(html)
	return b.Bytes()
}
