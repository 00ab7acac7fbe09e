package services

import "edusphere/utils"

// Notifier dispatches learner-facing notifications for workflow events.
// Dispatch is fire-and-forget; implementations must not block.
type Notifier interface {
	CourseCompleted(email, name, courseTitle string)
	CertificateIssued(email, name, courseTitle, certificateNumber string)
}

var notifier Notifier = emailNotifier{}

// SetNotifier swaps the notification backend. Used by tests.
func SetNotifier(n Notifier) {
	notifier = n
}

type emailNotifier struct{}

func (emailNotifier) CourseCompleted(email, name, courseTitle string) {
	utils.SendCourseCompletedEmail(email, name, courseTitle)
}

func (emailNotifier) CertificateIssued(email, name, courseTitle, certificateNumber string) {
	utils.SendCertificateIssuedEmail(email, name, courseTitle, certificateNumber)
}
