package service

import (
	"context"
	"fmt"

	"bazaar/internal/domain/entity"
)

// FormField is one flat key/value pair of the transport payload.
type FormField struct {
	Key   string
	Value string
}

// FilePart is one binary part of the transport payload. The content is not
// carried inline; the submitter streams it from the attachment store by key.
type FilePart struct {
	Field    string // multipart field name, e.g. "cover_photo"
	Filename string
	MIME     string
	Size     int64
	BlobKey  string
}

// StorePayload is the flattened, multipart-encodable representation of a
// store draft, built exactly once per successful submission.
type StorePayload struct {
	Fields []FormField
	Files  []FilePart
}

// SubmissionResult is the acknowledgment from the marketplace backend.
type SubmissionResult struct {
	StoreID  string
	StoreURL string
}

// StoreSubmitter is the outbound submission boundary: one "create store"
// call carrying the multipart payload. Failures are opaque; no field-level
// detail comes back through this interface.
type StoreSubmitter interface {
	CreateStore(ctx context.Context, payload *StorePayload) (*SubmissionResult, error)
}

// BuildStorePayload flattens a draft into the transport payload: scalars
// as-is, booleans coerced to "1"/"0", the hours sequence expanded into
// indexed field paths, the address into bracketed entries, and binary slots
// appended only when non-nil. The verified flag is server-assigned and never
// sent.
func BuildStorePayload(d *entity.StoreDraft) *StorePayload {
	p := &StorePayload{}

	p.add("owner_id", d.OwnerID.String())
	p.add("name", d.Name)
	p.add("slug", d.Slug)
	p.add("brand_name", d.BrandName)
	p.add("username", d.Username)
	p.add("email", d.Email)
	p.add("phone", d.Phone)
	p.add("about", d.About)
	p.add("policy", d.Policy)
	p.add("shipping_type", string(d.ShippingType))
	p.add("show_contact", formBool(d.ShowContact))
	p.add("is_active", formBool(d.Active))

	for i, day := range d.Hours {
		prefix := fmt.Sprintf("store_hours[%d]", i)
		p.add(prefix+"[day]", string(day.Day))
		p.add(prefix+"[is_open]", formBool(day.IsOpen))
		p.add(prefix+"[open_time]", day.OpenTime)
		p.add(prefix+"[close_time]", day.CloseTime)
	}

	p.addAddress("country", d.Address.Country)
	p.addAddress("state", d.Address.State)
	p.addAddress("line1", d.Address.Line1)
	p.addAddress("line2", d.Address.Line2)
	p.addAddress("city", d.Address.City)
	p.addAddress("zip", d.Address.Zip)

	p.addFile(string(entity.SlotCover), d.Cover)
	p.addFile(string(entity.SlotLogo), d.Logo)

	return p
}

func (p *StorePayload) add(key, value string) {
	p.Fields = append(p.Fields, FormField{Key: key, Value: value})
}

// addAddress appends an address entry only when the field is populated.
func (p *StorePayload) addAddress(field, value string) {
	if value == "" {
		return
	}
	p.add(fmt.Sprintf("address[%s]", field), value)
}

func (p *StorePayload) addFile(field string, att *entity.Attachment) {
	if att == nil {
		return
	}
	p.Files = append(p.Files, FilePart{
		Field:    field,
		Filename: att.Filename,
		MIME:     att.MIME,
		Size:     att.Size,
		BlobKey:  att.Key,
	})
}

func formBool(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
