package frontend_domain

import (
	"github.com/breadit-dev/breadit/frontend/internal/toast"
	"github.com/breadit-dev/breadit/shared/domain"
)

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	User       *domain.User
	Toasts     []toast.Toast
	Validation ValidationData
	CSRFToken  string // CSRF token for form submissions
}

// ValidationData holds the limits the browser checks before submitting.
type ValidationData struct {
	UsernameMinLen int
	UsernameMaxLen int
}
