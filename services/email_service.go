package services

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"modularcloset_server/lib"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce = sync.Once{}
)

// EmailService delivers contractor inquiry leads to the sales inbox.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendContractorInquiry forwards a validated lead from the contractor
// landing page. Field values are HTML-escaped; the inquiry arrives as
// untrusted input.
func (es *EmailService) SendContractorInquiry(inquiry *structs.ContractorInquiry) error {
	subject := fmt.Sprintf("Contractor inquiry from %s", inquiry.Name)

	var body strings.Builder
	body.WriteString("<h2>New contractor inquiry</h2>")
	body.WriteString("<table>")
	writeRow(&body, "Name", inquiry.Name)
	writeRow(&body, "Email", inquiry.Email)
	writeRow(&body, "Phone", inquiry.Phone)
	writeRow(&body, "Company", inquiry.Company)
	writeRow(&body, "Submitted from", es.cfg.Server.AppURL+lib.ResolveRoute("pages.contractors"))
	body.WriteString("</table>")
	if inquiry.Message != "" {
		body.WriteString("<h3>Message</h3>")
		body.WriteString("<p>" + html.EscapeString(inquiry.Message) + "</p>")
	}

	if err := es.SendEmail(es.cfg.Email.ContractorTo, subject, body.String()); err != nil {
		return err
	}

	es.logger.Info("Contractor inquiry forwarded", gecho.Field("email", inquiry.Email))
	return nil
}

func writeRow(body *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(body, "<tr><td><strong>%s</strong></td><td>%s</td></tr>", label, html.EscapeString(value))
}
