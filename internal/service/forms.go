package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var validate = newValidator()

// newValidator reports fields by their json names and adds the clinic's
// slug and phone rules.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return digitCount(fl.Field().String()) >= 7
	})
	return v
}

// messages maps "field.tag" or "field" to the text shown next to the input.
type messages map[string]string

// check runs the struct's validate tags and translates failures into
// ValidationErrors, first failure per field.
func check(v any, msgs messages) core.ValidationErrors {
	errs := core.ValidationErrors{}
	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("form", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		field := fe.Field()
		msg, ok := msgs[field+"."+fe.Tag()]
		if !ok {
			msg, ok = msgs[field]
		}
		if !ok {
			msg = defaultMessage(fe)
		}
		errs.Add(field, msg)
	}
	return errs
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "slug":
		return "Use lower-case letters, digits and hyphens"
	case "oneof":
		return "Choose one of the listed options"
	}
	return "This value is not valid"
}

// Slugify lower-cases s and joins its alphanumeric runs with hyphens.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// SplitLines turns a textarea into one entry per non-blank line.
func SplitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func required(errs core.ValidationErrors, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, msg)
	}
}

var appointmentMessages = messages{
	"name":           "Please enter your name",
	"email.required": "Please enter your email",
	"email":          "Please enter a valid email address",
	"phone.required": "Please enter your phone number",
	"phone":          "Please enter a valid phone number",
	"service":        "Please choose a service",
	"date.required":  "Please choose a date",
	"date":           "Please choose a valid date",
	"time.required":  "Please choose a time",
	"time":           "Please choose a valid time",
	"status":         "Unknown appointment status",
}

// ValidateAppointment normalises a public booking form in place.
func ValidateAppointment(a *core.Appointment) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Service = strings.TrimSpace(a.Service)
	a.Date = strings.TrimSpace(a.Date)
	a.Time = strings.TrimSpace(a.Time)
	a.Message = strings.TrimSpace(a.Message)

	return check(a, appointmentMessages).Err()
}

var serviceMessages = messages{
	"title":            "Title is required",
	"shortDescription": "Short description is required",
	"slug":             "Use lower-case letters, digits and hyphens",
	"iconName":         "Unknown icon",
}

// ValidateService normalises an admin service form in place. An empty slug
// is derived from the title.
func ValidateService(s *core.Service) error {
	s.Title = strings.TrimSpace(s.Title)
	s.ShortDescription = strings.TrimSpace(s.ShortDescription)
	s.Slug = strings.TrimSpace(s.Slug)
	if s.Slug == "" {
		s.Slug = Slugify(s.Title)
	}
	if s.IconName == "" {
		s.IconName = core.ServiceIcons[0]
	}

	return check(s, serviceMessages).Err()
}

var postMessages = messages{
	"title":    "Title is required",
	"excerpt":  "Excerpt is required",
	"content":  "Content is required",
	"slug":     "Use lower-case letters, digits and hyphens",
	"category": "Choose a category",
}

func ValidateBlogPost(p *core.BlogPost) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Excerpt = strings.TrimSpace(p.Excerpt)
	p.Slug = strings.TrimSpace(p.Slug)
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}

	return check(p, postMessages).Err()
}

var testimonialMessages = messages{
	"name":    "Name is required",
	"content": "Testimonial text is required",
	"rating":  "Choose a rating from 1 to 5",
}

func ValidateTestimonial(t *core.Testimonial) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Role = strings.TrimSpace(t.Role)
	t.Content = strings.TrimSpace(t.Content)

	return check(t, testimonialMessages).Err()
}

var userMessages = messages{
	"email.required": "Email is required",
	"email":          "Enter a valid email address",
	"name":           "Name is required",
	"role":           "Choose a role",
}

// ValidateAdminUser checks the users form. Password is only required when
// creating; an empty password on edit keeps the stored one.
func ValidateAdminUser(u *core.AdminUser, creating bool) error {
	u.Email = strings.TrimSpace(u.Email)
	u.Name = strings.TrimSpace(u.Name)

	errs := check(u, userMessages)
	if creating && u.Password == "" {
		errs.Add("password", "Password is required")
	}

	pages := make([]string, 0, len(u.AllowedPages))
	for _, p := range u.AllowedPages {
		if core.Contains(core.AllPages, p) && !core.Contains(pages, p) {
			pages = append(pages, p)
		}
	}
	u.AllowedPages = pages
	return errs.Err()
}

var settingsMessages = messages{
	"clinicName": "Clinic name is required",
	"email":      "Enter a valid email address",
}

func ValidateSettings(s *core.Settings) error {
	s.ClinicName = strings.TrimSpace(s.ClinicName)
	s.Email = strings.TrimSpace(s.Email)

	return check(s, settingsMessages).Err()
}

func ValidateAbout(a *core.AboutPage) error {
	a.Name = strings.TrimSpace(a.Name)

	return check(a, messages{"name": "Name is required"}).Err()
}
