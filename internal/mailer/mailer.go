// Package mailer delivers assessment summary emails over SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends report summary emails. When no SMTP host is configured the
// mailer runs in disabled mode and reports every send as a failure, which
// callers surface as a non-fatal delivery warning.
type Mailer struct {
	host    string
	port    int
	user    string
	pass    string
	from    string
	baseURL string
}

func New(host string, port int, user, pass, from, baseURL string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from, baseURL: baseURL}
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool { return m.host != "" }

// SendReport builds and dispatches the summary email for one assessment.
func (m *Mailer) SendReport(to, companyName string, score int, assessmentID string) error {
	if !m.Enabled() {
		return fmt.Errorf("smtp not configured")
	}

	body, err := buildReportBody(companyName, score, assessmentID, m.baseURL)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Your Cybersecurity Assessment Report - %s", companyName))
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}
	return nil
}

type emailData struct {
	CompanyName  string
	Score        int
	ScoreColor   string
	AssessmentID string
	BaseURL      string
}

// scoreColor picks the progress-bar color for the email by score tier.
func scoreColor(score int) string {
	switch {
	case score >= 80:
		return "#10b981"
	case score >= 60:
		return "#3b82f6"
	case score >= 40:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

var emailTemplate = template.Must(template.New("report-email").Parse(emailTemplateHTML))

func buildReportBody(companyName string, score int, assessmentID, baseURL string) (string, error) {
	var buf bytes.Buffer
	err := emailTemplate.Execute(&buf, emailData{
		CompanyName:  companyName,
		Score:        score,
		ScoreColor:   scoreColor(score),
		AssessmentID: assessmentID,
		BaseURL:      baseURL,
	})
	if err != nil {
		return "", fmt.Errorf("build report email: %w", err)
	}
	return buf.String(), nil
}

const emailTemplateHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: #6366f1; color: white; padding: 20px; text-align: center;">
    <h1>GoCyberCheck Assessment Report</h1>
  </div>

  <div style="padding: 20px; background: #f8fafc;">
    <h2>Hello {{ .CompanyName }},</h2>
    <p>Thank you for completing your cybersecurity assessment. Here are your results:</p>

    <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3>Security Score: {{ .Score }}%</h3>
      <div style="background: #e5e7eb; height: 20px; border-radius: 10px; overflow: hidden;">
        <div style="background: {{ .ScoreColor }}; height: 100%; width: {{ .Score }}%;"></div>
      </div>
    </div>

    <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3>Next Steps:</h3>
      <ul>
        <li>Review your detailed assessment report</li>
        <li>Implement priority security recommendations</li>
        <li>Schedule a consultation with our experts</li>
        <li>Set up regular security assessments</li>
      </ul>
    </div>

    <div style="text-align: center; margin: 30px 0;">
      <a href="{{ .BaseURL }}/api/v1/assessments/{{ .AssessmentID }}/report.html"
         style="background: #6366f1; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">
        View Full Report
      </a>
    </div>

    <p style="color: #6b7280; font-size: 14px;">
      If you have any questions, please contact our support team.
    </p>
  </div>

  <div style="background: #374151; color: white; padding: 20px; text-align: center; font-size: 12px;">
    <p>&copy; GoCyberCheck. All rights reserved.</p>
  </div>
</div>
`
