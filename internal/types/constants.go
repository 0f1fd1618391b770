package types

import (
	"os"
	"strings"
)

const (
	ContextUserKey   = "user"
	ContextClaimsKey = "claims"
	ContextResumeKey = "resume_file"
)

const (
	RoleAssessor  = "assessor"
	RoleModerator = "moderator"
	RoleSDP       = "sdp"
	RoleAdmin     = "admin"
)

const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in-progress"
	JobStatusClosed     = "closed"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
)

// MaxResumeSizeBytes caps resume uploads at 5 MB before any service runs.
const MaxResumeSizeBytes = int64(5 * 1024 * 1024)

var ValidRoles = []string{RoleAssessor, RoleModerator, RoleSDP, RoleAdmin}

var ValidJobStatuses = []string{JobStatusOpen, JobStatusInProgress, JobStatusClosed}

var ValidApplicationStatuses = []string{ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected}

var ValidPaymentStatuses = []string{PaymentStatusPending, PaymentStatusCompleted, PaymentStatusRefunded}

// NotificationEligibleRoles is the role set notified when a job posts.
// Under the current role set this means everyone except the poster.
var NotificationEligibleRoles = []string{RoleAssessor, RoleModerator, RoleSDP, RoleAdmin}

var AllowedResumeTypes = map[string]bool{
	"text/plain":         true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/rtf": true,
	"text/rtf":        true,
}

func IsValidRole(role string) bool {
	return contains(ValidRoles, role)
}

func IsValidJobStatus(status string) bool {
	return contains(ValidJobStatuses, status)
}

func IsValidApplicationStatus(status string) bool {
	return contains(ValidApplicationStatuses, status)
}

func IsValidPaymentStatus(status string) bool {
	return contains(ValidPaymentStatuses, status)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
