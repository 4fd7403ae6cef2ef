package ui

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"sync"
	"time"

	"hraktech_web/content"
	"hraktech_web/motion"
)

// DefaultDisplayWindow is how long the success state stays visible before the
// form resets to an empty draft.
const DefaultDisplayWindow = 4 * time.Second

// FormState is the lifecycle of one contact form instance.
type FormState int

const (
	FormIdle FormState = iota
	FormSubmitting
	FormSucceeded
)

func (s FormState) String() string {
	switch s {
	case FormSubmitting:
		return "submitting"
	case FormSucceeded:
		return "succeeded"
	default:
		return "idle"
	}
}

// Draft is the user-entered content of the contact form.
type Draft struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Company string `json:"company" form:"company"`
	Project string `json:"project" form:"project"`
	Message string `json:"message" form:"message"`
}

// Get returns a field by its form name.
func (d Draft) Get(field string) string {
	switch field {
	case "name":
		return d.Name
	case "email":
		return d.Email
	case "company":
		return d.Company
	case "project":
		return d.Project
	case "message":
		return d.Message
	}
	return ""
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Validation error codes.
const (
	CodeRequired      = "required"
	CodeInvalidEmail  = "invalid_email"
	CodeInvalidOption = "invalid_option"
)

// FieldError reports one invalid field.
type FieldError struct {
	Field string
	Code  string
}

// ValidationError lists every invalid field in form order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Code)
	}
	return "invalid contact form: " + strings.Join(parts, ", ")
}

// For returns the error code for field, or "".
func (e *ValidationError) For(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Code
		}
	}
	return ""
}

// ErrBusy is returned when Submit is called while a submission is running or
// the success state is still displayed.
var ErrBusy = errors.New("contact form is busy")

// Submitter delivers a validated draft.
type Submitter interface {
	Submit(ctx context.Context, draft Draft) error
}

// ContactForm owns one draft. Fields change only through Set; a successful
// submission shows the success state for the display window and then resets
// the draft.
type ContactForm struct {
	def           content.ContactForm
	displayWindow time.Duration

	mu      sync.Mutex
	draft   Draft
	state   FormState
	focused string
}

// NewContactForm builds a form from the configured field definitions.
func NewContactForm(def content.ContactForm, displayWindow time.Duration) *ContactForm {
	if displayWindow <= 0 {
		displayWindow = DefaultDisplayWindow
	}
	return &ContactForm{def: def, displayWindow: displayWindow}
}

// Definition returns the configured fields.
func (f *ContactForm) Definition() content.ContactForm { return f.def }

// Set updates one field. Unknown fields are ignored.
func (f *ContactForm) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch field {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "company":
		f.draft.Company = value
	case "project":
		f.draft.Project = value
	case "message":
		f.draft.Message = value
	}
}

// Draft returns a copy of the current draft.
func (f *ContactForm) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *ContactForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Focused returns the name of the field that has focus, if any.
func (f *ContactForm) Focused() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused
}

// Validate checks the draft against the field definitions.
func (f *ContactForm) Validate() error {
	return ValidateDraft(f.def, f.Draft())
}

// ValidateDraft checks d against def.
func ValidateDraft(def content.ContactForm, d Draft) error {
	var errs []FieldError
	for _, field := range def.Fields {
		value := strings.TrimSpace(d.Get(field.Name))
		if value == "" {
			if field.Required {
				errs = append(errs, FieldError{Field: field.Name, Code: CodeRequired})
			}
			continue
		}
		switch field.Type {
		case "email":
			if addr, err := mail.ParseAddress(value); err != nil || addr.Address != value {
				errs = append(errs, FieldError{Field: field.Name, Code: CodeInvalidEmail})
			}
		case "select":
			if !field.HasOption(value) {
				errs = append(errs, FieldError{Field: field.Name, Code: CodeInvalidOption})
			}
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// Mount attaches focus tracking for every field and entrance animations to
// scope.
func (f *ContactForm) Mount(scope *motion.Scope) {
	for _, field := range f.def.Fields {
		name := field.Name
		target := "#" + name
		scope.Listen(target, "focus", func() {
			f.mu.Lock()
			f.focused = name
			f.mu.Unlock()
		})
		scope.Listen(target, "blur", func() {
			f.mu.Lock()
			if f.focused == name {
				f.focused = ""
			}
			f.mu.Unlock()
		})
	}
	scope.Animate(motion.Tween{
		Target:        "#contact form .field",
		From:          map[string]any{"opacity": 0, "y": 20},
		Duration:      0.6,
		Stagger:       0.08,
		Ease:          "power2.out",
		ScrollTrigger: &motion.ScrollTrigger{Trigger: "#contact form", Start: "top 85%"},
	})
}

// Submit validates the draft and hands it to submitter. It blocks for the
// duration of the submission. On success the form enters FormSucceeded and
// scope resets it to an empty draft after the display window.
func (f *ContactForm) Submit(ctx context.Context, scope *motion.Scope, submitter Submitter) error {
	f.mu.Lock()
	if f.state != FormIdle {
		f.mu.Unlock()
		return ErrBusy
	}
	draft := f.draft
	if err := ValidateDraft(f.def, draft); err != nil {
		f.mu.Unlock()
		return err
	}
	f.state = FormSubmitting
	f.mu.Unlock()

	if err := submitter.Submit(ctx, draft); err != nil {
		f.mu.Lock()
		f.state = FormIdle
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	f.state = FormSucceeded
	f.mu.Unlock()

	scope.After(f.displayWindow, f.Reset)
	return nil
}

// Reset clears the draft and returns to FormIdle.
func (f *ContactForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = Draft{}
	f.state = FormIdle
	f.focused = ""
}

// DisplayWindow returns how long the success state is shown.
func (f *ContactForm) DisplayWindow() time.Duration { return f.displayWindow }
