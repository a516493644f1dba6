// Package entity contains the core business objects of the project.
package entity

import (
	"bazaar/internal/errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Mutation errors returned by the field-scoped setters.
var (
	ErrUnknownField      = errors.New("unknown draft field")
	ErrInvalidFieldValue = errors.New("invalid value type for draft field")
	ErrDayIndexRange     = errors.New("day index out of range")
	ErrUnknownSlot       = errors.New("unknown attachment slot")
)

// StoreDraft is the in-progress store registration record built across the
// wizard steps. It is created empty (apart from the default weekly hours),
// optionally hydrated with identity fields from an authenticated user, and
// terminally consumed exactly once by a successful submission.
//
// The validate tags are the declarative per-field rule table; the schema
// package evaluates them per step and collects every violation.
type StoreDraft struct {
	OwnerID uuid.UUID `json:"owner_id"`

	// Identity and contact fields.
	Name      string `json:"name" validate:"required,min=3,max=100"`
	Slug      string `json:"slug" validate:"required,min=3,slugchars"`
	BrandName string `json:"brand_name" validate:"omitempty,min=2,max=100"`
	Username  string `json:"username" validate:"required,min=3,max=30,handle"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,phone"`

	// Free-text content.
	About  string `json:"about" validate:"omitempty,min=10"`
	Policy string `json:"policy" validate:"omitempty,min=10"`

	// Classification and visibility flags. Verified is server-assigned and
	// not reachable through SetField.
	ShippingType ShippingType `json:"shipping_type" validate:"required,oneof=local_pickup regional national international"`
	ShowContact  bool         `json:"show_contact"`
	Active       bool         `json:"is_active"`
	Verified     bool         `json:"is_verified"`

	// Media slots. Limits are bytes: 5 MiB for the cover, 2 MiB for the logo.
	Cover *Attachment `json:"cover_photo" validate:"omitempty,image_mime,max_upload=5242880"`
	Logo  *Attachment `json:"logo" validate:"omitempty,image_mime,max_upload=2097152"`

	Hours   WeekHours `json:"store_hours" validate:"len=7,dive"`
	Address Address   `json:"address"`
}

// NewStoreDraft creates an empty draft with the default weekly schedule.
func NewStoreDraft() *StoreDraft {
	return &StoreDraft{
		ShippingType: ShippingLocalPickup,
		Active:       true,
		Hours:        DefaultWeekHours(),
	}
}

// Slugify derives a URL slug from a display name: lowercased, with
// non-alphanumeric runs collapsed to single hyphens and no leading or
// trailing hyphen.
func Slugify(name string) string {
	return slug.Make(name)
}

// SetField writes one top-level scalar field and returns the dotted error-map
// path of the field written. Writing the display name also regenerates the
// slug; the derivation is one-directional, editing the slug does not feed
// back into the name.
func (d *StoreDraft) SetField(field string, value any) (string, error) {
	switch field {
	case "name":
		v, ok := value.(string)
		if !ok {
			return "", errors.Wrapf(ErrInvalidFieldValue, "field %q wants a string", field)
		}
		d.Name = v
		d.Slug = Slugify(v)
	case "slug":
		v, ok := value.(string)
		if !ok {
			return "", errors.Wrapf(ErrInvalidFieldValue, "field %q wants a string", field)
		}
		d.Slug = v
	case "brand_name":
		return field, setString(&d.BrandName, field, value)
	case "username":
		return field, setString(&d.Username, field, value)
	case "email":
		return field, setString(&d.Email, field, value)
	case "phone":
		return field, setString(&d.Phone, field, value)
	case "about":
		return field, setString(&d.About, field, value)
	case "policy":
		return field, setString(&d.Policy, field, value)
	case "shipping_type":
		v, ok := value.(string)
		if !ok {
			return "", errors.Wrapf(ErrInvalidFieldValue, "field %q wants a string", field)
		}
		d.ShippingType = ShippingType(v)
	case "show_contact":
		return field, setBool(&d.ShowContact, field, value)
	case "is_active":
		return field, setBool(&d.Active, field, value)
	default:
		return "", errors.Wrapf(ErrUnknownField, "field %q", field)
	}

	return field, nil
}

// SetAddressField writes one field of the nested address sub-record and
// returns its dotted error-map path, e.g. "address.city".
func (d *StoreDraft) SetAddressField(field string, value string) (string, error) {
	switch field {
	case "country":
		d.Address.Country = value
	case "state":
		d.Address.State = value
	case "line1":
		d.Address.Line1 = value
	case "line2":
		d.Address.Line2 = value
	case "city":
		d.Address.City = value
	case "zip":
		d.Address.Zip = value
	default:
		return "", errors.Wrapf(ErrUnknownField, "address field %q", field)
	}

	return "address." + field, nil
}

// SetHourField replaces one field of the targeted day entry, leaving the
// other six entries untouched. The day name itself is fixed and cannot be
// rewritten. dayIndex must be in [0,7).
func (d *StoreDraft) SetHourField(dayIndex int, field string, value any) (string, error) {
	if dayIndex < 0 || dayIndex >= len(d.Hours) {
		return "", errors.Wrapf(ErrDayIndexRange, "day index %d", dayIndex)
	}

	entry := &d.Hours[dayIndex]
	switch field {
	case "is_open":
		if err := setBool(&entry.IsOpen, field, value); err != nil {
			return "", err
		}
	case "open_time":
		if err := setString(&entry.OpenTime, field, value); err != nil {
			return "", err
		}
	case "close_time":
		if err := setString(&entry.CloseTime, field, value); err != nil {
			return "", err
		}
	default:
		return "", errors.Wrapf(ErrUnknownField, "hours field %q", field)
	}

	return HourFieldPath(dayIndex, field), nil
}

// SetFile stores or clears an attachment reference. Passing nil clears the
// slot. File constraints are not checked here; the step validator applies
// them.
func (d *StoreDraft) SetFile(slot AttachmentSlot, att *Attachment) (string, error) {
	switch slot {
	case SlotCover:
		d.Cover = att
	case SlotLogo:
		d.Logo = att
	default:
		return "", errors.Wrapf(ErrUnknownSlot, "slot %q", slot)
	}

	return string(slot), nil
}

func setString(dst *string, field string, value any) error {
	v, ok := value.(string)
	if !ok {
		return errors.Wrapf(ErrInvalidFieldValue, "field %q wants a string", field)
	}
	*dst = v

	return nil
}

func setBool(dst *bool, field string, value any) error {
	v, ok := value.(bool)
	if !ok {
		return errors.Wrapf(ErrInvalidFieldValue, "field %q wants a bool", field)
	}
	*dst = v

	return nil
}
