package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	portssvc "github.com/szabol/damage_report_app/internal/core/ports/services"
)

var _ portssvc.MailSender = (*SendGridSender)(nil)

// SendGridSender delivers notification e-mails through the SendGrid API.
type SendGridSender struct {
	apiKey      string
	fromName    string
	fromAddress string
}

// NewSendGridSender creates a SendGrid-backed mail sender.
func NewSendGridSender(apiKey, fromName, fromAddress string) *SendGridSender {
	return &SendGridSender{apiKey: apiKey, fromName: fromName, fromAddress: fromAddress}
}

// SendMail renders the intro and detail lines into a plain-text and an HTML
// body and sends one message. No retries, the caller owns failure handling.
func (s *SendGridSender) SendMail(ctx context.Context, to string, subject string, intro string, details []portssvc.MessageDetail) error {
	from := sgmail.NewEmail(s.fromName, s.fromAddress)
	recipient := sgmail.NewEmail("", to)

	text, html := renderBody(intro, details)
	message := sgmail.NewSingleEmail(from, subject, recipient, text, html)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid rejected message: status %d", response.StatusCode)
	}
	return nil
}

func renderBody(intro string, details []portssvc.MessageDetail) (text string, html string) {
	var tb strings.Builder
	var hb strings.Builder

	tb.WriteString(intro)
	tb.WriteString("\n\n")
	hb.WriteString("<p>")
	hb.WriteString(htmlEscape(intro))
	hb.WriteString("</p><table>")

	for _, d := range details {
		fmt.Fprintf(&tb, "%s: %s\n", d.Label, d.Value)
		fmt.Fprintf(&hb, "<tr><td><strong>%s</strong></td><td>%s</td></tr>", htmlEscape(d.Label), htmlEscape(d.Value))
	}
	hb.WriteString("</table>")
	return tb.String(), hb.String()
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func htmlEscape(s string) string {
	return htmlEscaper.Replace(s)
}
