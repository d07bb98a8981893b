package utils

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"

	"sitebuilder-backend/shared/config"
)

// Mailer is the delivery interface handlers depend on, so tests can
// swap in a fake
type Mailer interface {
	SendVerificationEmail(toEmail, userName, verificationToken string) error
	SendOTPEmail(toEmail, userName, code string) error
	SendPasswordResetEmail(toEmail, userName, resetToken string) error
}

type EmailService struct {
	config *config.Config
}

func NewEmailService() *EmailService {
	return &EmailService{
		config: config.GetConfig(),
	}
}

type EmailData struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

func (e *EmailService) SendEmail(emailData EmailData) error {
	addr := fmt.Sprintf("%s:%s", e.config.SMTPHost, e.config.SMTPPort)

	var client *smtp.Client
	var err error

	if e.config.SMTPPort == "465" {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
			ServerName:         e.config.SMTPHost,
		}

		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			client, err = smtp.Dial(addr)
			if err != nil {
				return err
			}
		} else {
			client, err = smtp.NewClient(conn, e.config.SMTPHost)
			if err != nil {
				return err
			}
		}
	} else {
		client, err = smtp.Dial(addr)
		if err != nil {
			return err
		}

		if ok, _ := client.Extension("STARTTLS"); ok {
			config := &tls.Config{ServerName: e.config.SMTPHost}
			if err = client.StartTLS(config); err != nil {
				// Non-critical error, continue without TLS
			}
		}
	}
	defer client.Close()

	auth := smtp.PlainAuth("", e.config.SMTPUsername, e.config.SMTPPassword, e.config.SMTPHost)
	if err = client.Auth(auth); err != nil {
		return err
	}

	if err = client.Mail(e.config.EmailFrom); err != nil {
		return err
	}

	if err = client.Rcpt(emailData.To); err != nil {
		return err
	}

	var contentType string
	if emailData.IsHTML {
		contentType = "text/html; charset=UTF-8"
	} else {
		contentType = "text/plain; charset=UTF-8"
	}

	message := fmt.Sprintf("To: %s\r\n"+
		"From: %s <%s>\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: %s\r\n"+
		"\r\n"+
		"%s\r\n",
		emailData.To,
		e.config.EmailFromName,
		e.config.EmailFrom,
		emailData.Subject,
		contentType,
		emailData.Body)

	w, err := client.Data()
	if err != nil {
		return err
	}

	_, err = w.Write([]byte(message))
	if err != nil {
		return err
	}

	err = w.Close()
	if err != nil {
		return err
	}

	client.Quit()

	return nil
}

func (e *EmailService) sendTemplated(toEmail, subject, name, htmlTemplate string, data interface{}) error {
	tmpl, err := template.New(name).Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	return e.SendEmail(EmailData{
		To:      toEmail,
		Subject: subject,
		Body:    htmlBody.String(),
		IsHTML:  true,
	})
}

func (e *EmailService) SendVerificationEmail(toEmail, userName, verificationToken string) error {
	verificationURL := fmt.Sprintf("%s/verify-email?token=%s", e.config.FrontendURL, verificationToken)

	htmlTemplate := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Verify Your Email</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; padding: 30px; border-radius: 10px;">
        <h1 style="color: #343a40; text-align: center;">Welcome!</h1>

        <p style="color: #6c757d; font-size: 16px;">Hello {{.UserName}},</p>

        <p style="color: #6c757d; font-size: 16px;">
            Thank you for signing up. To activate your account, please click the
            verification link below:
        </p>

        <div style="text-align: center; margin: 30px 0;">
            <a href="{{.VerificationURL}}"
               style="background-color: #3B82F6; color: white; padding: 12px 30px; text-decoration: none;
                      border-radius: 5px; font-weight: bold; display: inline-block;">
                Verify My Email
            </a>
        </div>

        <p style="color: #6c757d; font-size: 14px;">
            If the button doesn't work, copy and paste this link into your browser:
        </p>

        <p style="color: #3B82F6; font-size: 14px; word-break: break-all;">
            {{.VerificationURL}}
        </p>

        <hr style="border: none; border-top: 1px solid #dee2e6; margin: 30px 0;">

        <p style="color: #6c757d; font-size: 12px; text-align: center;">
            This verification link will expire in 15 minutes. If you didn't create an account,
            please ignore this email.
        </p>
    </div>
</body>
</html>`

	templateData := struct {
		UserName        string
		VerificationURL string
	}{
		UserName:        userName,
		VerificationURL: verificationURL,
	}

	return e.sendTemplated(toEmail, "Verify Your Email Address", "verification", htmlTemplate, templateData)
}

func (e *EmailService) SendOTPEmail(toEmail, userName, code string) error {
	htmlTemplate := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Your Verification Code</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; padding: 30px; border-radius: 10px;">
        <h1 style="color: #343a40; text-align: center;">Verification Code</h1>

        <p style="color: #6c757d; font-size: 16px;">Hello {{.UserName}},</p>

        <p style="color: #6c757d; font-size: 16px;">
            Use the code below to verify your email address:
        </p>

        <div style="text-align: center; margin: 30px 0;">
            <span style="font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #343a40;">
                {{.Code}}
            </span>
        </div>

        <hr style="border: none; border-top: 1px solid #dee2e6; margin: 30px 0;">

        <p style="color: #6c757d; font-size: 12px; text-align: center;">
            This code will expire in 10 minutes. If you didn't request it, please ignore this email.
        </p>
    </div>
</body>
</html>`

	templateData := struct {
		UserName string
		Code     string
	}{
		UserName: userName,
		Code:     code,
	}

	return e.sendTemplated(toEmail, "Your Verification Code", "otp", htmlTemplate, templateData)
}

func (e *EmailService) SendPasswordResetEmail(toEmail, userName, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", e.config.FrontendURL, resetToken)

	htmlTemplate := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password Reset</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; padding: 30px; border-radius: 10px;">
        <h1 style="color: #343a40; text-align: center;">Password Reset Request</h1>

        <p style="color: #6c757d; font-size: 16px;">Hello {{.UserName}},</p>

        <p style="color: #6c757d; font-size: 16px;">
            We received a request to reset your password. To proceed, please click
            the button below:
        </p>

        <div style="text-align: center; margin: 30px 0;">
            <a href="{{.ResetURL}}"
               style="background-color: #3B82F6; color: white; padding: 12px 30px; text-decoration: none;
                      border-radius: 5px; font-weight: bold; display: inline-block;">
                Reset My Password
            </a>
        </div>

        <p style="color: #6c757d; font-size: 14px;">
            If the button doesn't work, copy and paste this link into your browser:
        </p>

        <p style="color: #3B82F6; font-size: 14px; word-break: break-all;">
            {{.ResetURL}}
        </p>

        <hr style="border: none; border-top: 1px solid #dee2e6; margin: 30px 0;">

        <p style="color: #dc3545; font-size: 14px;">
            <strong>Important:</strong> This password reset link will expire in 15 minutes. If you didn't
            request a password reset, please ignore this email.
        </p>
    </div>
</body>
</html>`

	templateData := struct {
		UserName string
		ResetURL string
	}{
		UserName: userName,
		ResetURL: resetURL,
	}

	return e.sendTemplated(toEmail, "Password Reset Request", "password_reset", htmlTemplate, templateData)
}
