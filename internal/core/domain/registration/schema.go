package registration

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const MinPasswordLength = 8

// PasswordSymbols is the set of characters accepted as a password symbol.
const PasswordSymbols = "!@#$%^&*"

const (
	MsgNameRequired            = "Enter your name"
	MsgEmailRequired           = "Enter your email"
	MsgEmailInvalid            = "Enter a valid email"
	MsgPasswordRequired        = "Enter your password"
	MsgPasswordTooShort        = "Password must be at least 8 characters long"
	MsgPasswordWeakComposition = "Password needs upper and lower case letters, a digit and one of " + PasswordSymbols
)

type ViolationKind string

const (
	Required        ViolationKind = "required"
	InvalidFormat   ViolationKind = "invalid_format"
	TooShort        ViolationKind = "too_short"
	WeakComposition ViolationKind = "weak_composition"
)

type Violation struct {
	Kind    ViolationKind
	Message string
}

// Report holds every violation found per field, in rule order.
// Fields without violations are absent.
type Report map[Field][]Violation

func (r Report) IsValid() bool {
	return len(r) == 0
}

// Kinds returns the violation kinds recorded for the field.
func (r Report) Kinds(field Field) []ViolationKind {
	kinds := make([]ViolationKind, 0, len(r[field]))
	for _, v := range r[field] {
		kinds = append(kinds, v.Kind)
	}
	return kinds
}

func (r Report) Has(field Field, kind ViolationKind) bool {
	for _, v := range r[field] {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// FieldErrors picks the first violation of each field.
func (r Report) FieldErrors() FieldErrors {
	errs := make(FieldErrors, len(r))
	for field, violations := range r {
		if len(violations) > 0 {
			errs[field] = violations[0].Message
		}
	}
	return errs
}

func (r Report) Err() error {
	if r.IsValid() {
		return nil
	}
	return &ValidationError{Errors: r.FieldErrors()}
}

type rule struct {
	kind ViolationKind
	rule validation.Rule
}

type fieldRules struct {
	field Field
	value func(Input) string
	rules []rule
}

var errWeakComposition = errors.New(MsgPasswordWeakComposition)

var compositionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[a-z]`),
	regexp.MustCompile(`[A-Z]`),
	regexp.MustCompile(`[0-9]`),
	regexp.MustCompile(`[` + regexp.QuoteMeta(PasswordSymbols) + `]`),
}

func checkComposition(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	for _, p := range compositionPatterns {
		if !p.MatchString(s) {
			return errWeakComposition
		}
	}
	return nil
}

var schema = []fieldRules{
	{
		field: FieldName,
		value: func(i Input) string { return strings.TrimSpace(i.Name) },
		rules: []rule{
			{kind: Required, rule: validation.Required.Error(MsgNameRequired)},
		},
	},
	{
		field: FieldEmail,
		value: func(i Input) string { return i.Email },
		rules: []rule{
			{kind: Required, rule: validation.Required.Error(MsgEmailRequired)},
			{kind: InvalidFormat, rule: is.Email.Error(MsgEmailInvalid)},
		},
	},
	{
		field: FieldPassword,
		value: func(i Input) string { return string(i.Password) },
		rules: []rule{
			{kind: Required, rule: validation.Required.Error(MsgPasswordRequired)},
			{kind: TooShort, rule: validation.RuneLength(MinPasswordLength, 0).Error(MsgPasswordTooShort)},
			{kind: WeakComposition, rule: validation.By(checkComposition)},
		},
	},
}

// Validate evaluates every field independently. A failed Required rule hides
// the remaining rules of its field; other rules of a field are all evaluated.
func Validate(input Input) Report {
	report := Report{}
	for _, fr := range schema {
		value := fr.value(input)
		for _, r := range fr.rules {
			err := validation.Validate(value, r.rule)
			if err == nil {
				continue
			}
			report[fr.field] = append(report[fr.field], Violation{Kind: r.kind, Message: err.Error()})
			if r.kind == Required {
				break
			}
		}
	}
	return report
}
