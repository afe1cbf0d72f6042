package service

import "context"

// TemplateMessage is the payload accepted by the external notification
// collaborator. TemplateData carries template-specific values such as the
// password-reset link.
type TemplateMessage struct {
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Subject      string            `json:"subject"`
	TemplateType string            `json:"templateType"`
	TemplateData map[string]string `json:"templateData"`
}

// Mailer defines the interface to the external notification service. The call
// is synchronous; a non-acknowledged delivery is an error the caller must
// surface. There is no retry here.
type Mailer interface {
	SendTemplate(ctx context.Context, msg *TemplateMessage) error
}
