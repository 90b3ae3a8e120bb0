package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"postbox/app/models"
)

// Bounds holds the configurable field constraints for users and posts.
type Bounds struct {
	NameMin    int
	NameMax    int
	EmailMax   int
	AgeMax     int
	TitleMin   int
	TitleMax   int
	ContentMin int

	// StrictEmail requires a syntactically valid address. When false,
	// any string up to EmailMax characters is accepted.
	StrictEmail bool
}

// DefaultBounds returns the strict constraint set.
func DefaultBounds() Bounds {
	return Bounds{
		NameMin:     2,
		NameMax:     50,
		EmailMax:    100,
		AgeMax:      120,
		TitleMin:    3,
		TitleMax:    100,
		ContentMin:  10,
		StrictEmail: true,
	}
}

// FieldError describes a single violated constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors collects every violated constraint for one payload.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validator checks candidate user and post payloads against its
// bounds. It performs no lookups; cross-entity checks belong to the
// services layer.
type Validator struct {
	bounds Bounds
	check  *validator.Validate
}

// New creates a Validator enforcing the given bounds.
func New(bounds Bounds) *Validator {
	return &Validator{
		bounds: bounds,
		check:  validator.New(),
	}
}

// rule is one entry of the declarative constraint table.
type rule struct {
	field   string
	value   interface{}
	tag     string
	message string
}

// ValidateUser checks name length, email form, and age range. It
// returns an Errors value listing every violation, or nil.
func (v *Validator) ValidateUser(in models.UserInput) error {
	emailTag := fmt.Sprintf("max=%d", v.bounds.EmailMax)
	emailMsg := fmt.Sprintf("email must be at most %d characters", v.bounds.EmailMax)
	if v.bounds.StrictEmail {
		emailTag = "required,email"
		emailMsg = "email must be a valid address"
	}

	return v.run([]rule{
		{
			field:   "name",
			value:   in.Name,
			tag:     fmt.Sprintf("min=%d,max=%d", v.bounds.NameMin, v.bounds.NameMax),
			message: fmt.Sprintf("name must be between %d and %d characters", v.bounds.NameMin, v.bounds.NameMax),
		},
		{
			field:   "email",
			value:   in.Email,
			tag:     emailTag,
			message: emailMsg,
		},
		{
			field:   "age",
			value:   in.Age,
			tag:     fmt.Sprintf("gt=0,lte=%d", v.bounds.AgeMax),
			message: fmt.Sprintf("age must be between 1 and %d", v.bounds.AgeMax),
		},
	})
}

// ValidatePost checks title and content length. Author existence is
// not checked here.
func (v *Validator) ValidatePost(in models.PostInput) error {
	return v.run([]rule{
		{
			field:   "title",
			value:   in.Title,
			tag:     fmt.Sprintf("min=%d,max=%d", v.bounds.TitleMin, v.bounds.TitleMax),
			message: fmt.Sprintf("title must be between %d and %d characters", v.bounds.TitleMin, v.bounds.TitleMax),
		},
		{
			field:   "content",
			value:   in.Content,
			tag:     fmt.Sprintf("min=%d", v.bounds.ContentMin),
			message: fmt.Sprintf("content must be at least %d characters", v.bounds.ContentMin),
		},
	})
}

// run evaluates the whole rule table so the caller sees every
// violation, not just the first.
func (v *Validator) run(rules []rule) error {
	var errs Errors
	for _, r := range rules {
		if err := v.check.Var(r.value, r.tag); err != nil {
			errs = append(errs, FieldError{Field: r.field, Rule: r.tag, Message: r.message})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
