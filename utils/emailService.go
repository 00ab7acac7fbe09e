package utils

import (
	"edusphere/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers one HTML email through SendGrid
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig == nil || config.AppConfig.SendgridAPIKey == "" {
		log.Printf("Email delivery disabled, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail(config.AppConfig.AppName, config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// HTML wrapper shared by all outgoing emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B2A4A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2A4A; line-height: 1.6; }
			.content h2 { color: #1B2A4A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2F855A; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2F855A; margin: 20px 0; }
			.cert-number { font-family: monospace; font-size: 18px; letter-spacing: 2px; background: #F0F4F8; padding: 10px; border-radius: 4px; display: inline-block; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EDUSPHERE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 EduSphere. All rights reserved.<br>
				Keep learning, keep growing.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to EduSphere"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>EduSphere</strong>! We are thrilled to have you onboard.</p>
		<p>Your account has been successfully created. You can now browse the catalog and enroll in your first course.</p>
		<p>If you have any questions, feel free to reach out to our support team.</p>
	`, name)

	go SendEmail(email, name, subject, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Enrollment confirmation
func SendEnrollmentEmail(email, name, courseTitle string) {
	subject := "Enrollment Confirmed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Open your dashboard and start with the first lesson.
		</div>
	`, name, courseTitle)

	go SendEmail(email, name, subject, getEmailTemplate("Enrollment Successful", body))
}

// 3. Purchase receipt
func SendPurchaseEmail(email, name, courseTitle string, amount float64, reference string) {
	subject := "Purchase Receipt: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for purchasing <strong>%s</strong>.</p>
		<div class="info-box">
			Amount: <strong>$%.2f</strong><br>
			Reference: %s
		</div>
		<p>The course is already unlocked in your library.</p>
	`, name, courseTitle, amount, reference)

	go SendEmail(email, name, subject, getEmailTemplate("Purchase Confirmed", body))
}

// 4. Course completed
func SendCourseCompletedEmail(email, name, courseTitle string) {
	subject := "Course Completed: " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You have completed <strong>%s</strong>.</p>
		<p>Your certificate is being issued and will appear in your profile shortly.</p>
	`, name, courseTitle)

	go SendEmail(email, name, subject, getEmailTemplate("Congratulations!", body))
}

// 5. Certificate issued
func SendCertificateIssuedEmail(email, name, courseTitle, certificateNumber string) {
	subject := "Your Certificate for " + courseTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your certificate for <strong>%s</strong> has been issued.</p>
		<div style="text-align: center; margin: 20px 0;">
			<span class="cert-number">%s</span>
		</div>
		<p>Anyone can verify it with this number on our verification page.</p>
		<a href="#" class="btn">View Certificate</a>
	`, name, courseTitle, certificateNumber)

	go SendEmail(email, name, subject, getEmailTemplate("Certificate Issued", body))
}

// 6. Withdrawal processed (to instructor)
func SendWithdrawalProcessedEmail(email, name string, amount float64) {
	subject := "Payout Processed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payout of <strong>$%.2f</strong> has been processed.</p>
		<p>Funds should reach your account within 3-5 business days.</p>
	`, name, amount)

	go SendEmail(email, name, subject, getEmailTemplate("Payout Processed", body))
}

// 7. Withdrawal rejected (to instructor)
func SendWithdrawalRejectedEmail(email, name string, amount float64, reason string) {
	subject := "Payout Could Not Be Processed"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Unfortunately, your payout request of <strong>$%.2f</strong> was rejected.</p>
		<div style="color: #dc3545; font-weight: bold;">Reason: %s</div>
		<p>Please review your earnings balance and submit a new request.</p>
	`, name, amount, reason)

	go SendEmail(email, name, subject, getEmailTemplate("Payout Rejected", body))
}

// 8. Live class scheduled (to enrolled learner)
func SendLiveClassEmail(email, name, courseTitle, topic string, joinURL string) {
	subject := fmt.Sprintf("Live Class Scheduled: %s", courseTitle)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A new live class has been scheduled for <strong>%s</strong>.</p>
		<div class="info-box">
			Topic: <strong>%s</strong>
		</div>
		<a href="%s" class="btn">Join Live Class</a>
	`, name, courseTitle, topic, joinURL)

	go SendEmail(email, name, subject, getEmailTemplate("Live Class Scheduled", body))
}
