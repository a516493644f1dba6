// Package schema evaluates the declarative field rules of a store draft.
// Each wizard step checks a fixed subset of the draft; validation always
// collects every violation for its scope instead of stopping at the first.
package schema

import (
	"reflect"
	"regexp"
	"strings"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9-]+$`)
	handlePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	phonePattern  = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	hhmmPattern   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// stepFields maps each wizard step to the draft fields it gates on. The
// review step checks nothing of its own; it is reached only after the prior
// steps have passed. Address fields carry no rules at the schema level, so
// the address step gates trivially; the submission backend is the authority
// on how much address a live store needs.
var stepFields = map[entity.Step][]string{
	entity.StepIdentity: {"Name", "Slug", "BrandName", "Username", "Email", "Phone"},
	entity.StepAddress:  {"Address.Country", "Address.State", "Address.Line1", "Address.Line2", "Address.City", "Address.Zip"},
	entity.StepContent:  {"About", "Policy", "ShippingType", "ShowContact"},
	entity.StepMedia:    {"Cover", "Logo"},
	entity.StepHours:    {"Hours"},
	entity.StepReview:   nil,
}

// Validator evaluates draft rules. It is stateless apart from the compiled
// rule set: identical drafts always produce identical error maps.
type Validator struct {
	validate *validator.Validate
}

// New compiles the rule set and registers the custom rule tags.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Error-map paths use the json names of the fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	patterns := map[string]*regexp.Regexp{
		"slugchars": slugPattern,
		"handle":    handlePattern,
		"phone":     phonePattern,
		"hhmm":      hhmmPattern,
	}
	for tag, pattern := range patterns {
		if err := v.RegisterValidation(tag, matchFunc(pattern)); err != nil {
			return nil, errors.Wrapf(err, "register %s rule", tag)
		}
	}

	if err := v.RegisterValidation("weekday", validWeekday); err != nil {
		return nil, errors.Wrap(err, "register weekday rule")
	}
	if err := v.RegisterValidation("image_mime", imageMIME); err != nil {
		return nil, errors.Wrap(err, "register image_mime rule")
	}
	if err := v.RegisterValidation("max_upload", maxUpload); err != nil {
		return nil, errors.Wrap(err, "register max_upload rule")
	}

	return &Validator{validate: v}, nil
}

// ValidateStep checks only the fields the given step gates on and returns
// every violation found. An empty map means the step passes.
func (v *Validator) ValidateStep(step entity.Step, draft *entity.StoreDraft) entity.ErrorMap {
	fields, ok := stepFields[step]
	if !ok || len(fields) == 0 {
		return entity.ErrorMap{}
	}

	em := v.collect(v.validate.StructPartial(draft, fields...))
	if step == entity.StepHours {
		checkWeekOrder(draft, em)
	}

	return em
}

// ValidateAll checks the entire draft against the full rule table. This is
// the final submission gate, independent of the per-step gating.
func (v *Validator) ValidateAll(draft *entity.StoreDraft) entity.ErrorMap {
	em := v.collect(v.validate.Struct(draft))
	checkWeekOrder(draft, em)

	return em
}

// collect turns validator output into an error map keyed by dotted field
// path, e.g. "address.city" or "store_hours[3].open_time".
func (v *Validator) collect(err error) entity.ErrorMap {
	em := entity.ErrorMap{}
	if err == nil {
		return em
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		em["draft"] = err.Error()

		return em
	}

	for _, fe := range verrs {
		em[fieldPath(fe)] = ruleMessage(fe)
	}

	return em
}

// checkWeekOrder enforces that a seven-entry schedule names each day exactly
// once, in canonical week order. Length mismatches are already reported by
// the len rule, so the order check only applies to full-length schedules.
func checkWeekOrder(draft *entity.StoreDraft, em entity.ErrorMap) {
	if len(draft.Hours) != len(entity.WeekOrder) {
		return
	}
	if !draft.Hours.InWeekOrder() {
		em["store_hours"] = "days must appear exactly once each, in Monday through Sunday order"
	}
}

// fieldPath strips the root struct name from the tag-name namespace:
// "StoreDraft.store_hours[3].open_time" -> "store_hours[3].open_time".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func matchFunc(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func validWeekday(fl validator.FieldLevel) bool {
	day := entity.Weekday(fl.Field().String())
	for _, d := range entity.WeekOrder {
		if day == d {
			return true
		}
	}

	return false
}
