package verification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// EmailData holds what the verification email templates render.
type EmailData struct {
	Recipient string
	Code      string
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>CipherHacks verification code</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #e5e7eb; background: #0b0f19; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #111827; color: #22d3ee; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #1f2937; }
        .code { font-family: monospace; font-size: 28px; letter-spacing: 4px; color: #22d3ee; text-align: center; padding: 16px; border: 1px dashed #22d3ee; }
        .footer { text-align: center; padding: 20px; color: #9ca3af; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>CipherHacks</h1>
        </div>
        <div class="content">
            <p>Hi {{.Recipient}},</p>
            <p>Use the code below to verify your email address:</p>
            <div class="code">{{.Code}}</div>
        </div>
        <div class="footer">
            <p>If you did not request this code you can ignore this email.</p>
        </div>
    </div>
</body>
</html>`

const textTemplate = `Hi {{.Recipient}},

Your CipherHacks verification code is: {{.Code}}

If you did not request this code you can ignore this email.
`

var (
	parsedHTML = htmltemplate.Must(htmltemplate.New("verification.html").Parse(htmlTemplate))
	parsedText = texttemplate.Must(texttemplate.New("verification.txt").Parse(textTemplate))
)

// RenderEmail returns the HTML body and its plain-text fallback.
func RenderEmail(data EmailData) (html string, text string, err error) {
	var htmlBody bytes.Buffer
	if err := parsedHTML.Execute(&htmlBody, data); err != nil {
		return "", "", fmt.Errorf("failed to execute html email template: %w", err)
	}

	var textBody bytes.Buffer
	if err := parsedText.Execute(&textBody, data); err != nil {
		return "", "", fmt.Errorf("failed to execute text email template: %w", err)
	}

	return htmlBody.String(), textBody.String(), nil
}
