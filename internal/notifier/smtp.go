package notifier

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/polyforge/printdesk/internal/domain/model"
)

// SMTPNotifier sends order summaries through an SMTP server.
type SMTPNotifier struct {
	client *mail.Client
	from   string
	to     string
	logger *slog.Logger
}

// NewSMTP constructs an SMTP notifier.
func NewSMTP(host string, port int, username, password, from, to string, logger *slog.Logger) (*SMTPNotifier, error) {
	opts := []mail.Option{mail.WithPort(port)}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}

	return &SMTPNotifier{client: client, from: from, to: to, logger: logger}, nil
}

// Notify formats and sends the order summary, attaching the uploaded model
// file when present.
func (n *SMTPNotifier) Notify(ctx context.Context, order *model.Order, upload *model.Upload) error {
	msg, err := n.buildMessage(order, upload)
	if err != nil {
		return err
	}

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	n.logger.Info("order notification sent",
		slog.String("order_id", order.ID),
		slog.String("to", n.to),
	)
	return nil
}

func (n *SMTPNotifier) buildMessage(order *model.Order, upload *model.Upload) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(n.to); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}

	msg.Subject(Subject(order))
	msg.SetBodyString(mail.TypeTextPlain, Body(order))

	if upload != nil && len(upload.Data) > 0 {
		contentType := DetectContentType(upload.Data)
		if err := msg.AttachReader(upload.FileName, bytes.NewReader(upload.Data),
			mail.WithFileContentType(mail.ContentType(contentType))); err != nil {
			return nil, fmt.Errorf("attach model file: %w", err)
		}
	}

	return msg, nil
}
