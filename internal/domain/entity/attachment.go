package entity

// AttachmentSlot names one of the two binary upload slots of a store draft.
type AttachmentSlot string

const (
	SlotCover AttachmentSlot = "cover_photo"
	SlotLogo  AttachmentSlot = "logo"
)

// ValidSlot reports whether s names a known attachment slot.
func ValidSlot(s AttachmentSlot) bool {
	return s == SlotCover || s == SlotLogo
}

// Attachment is a reference to uploaded file content held in the attachment
// store. The draft only carries the metadata; the bytes live behind the
// blob key until submission. Uploads are not validated eagerly, size and
// MIME rules are applied by the step validator.
type Attachment struct {
	Key      string `json:"key"`      // blob key in the attachment store
	Filename string `json:"filename"` // original client filename
	MIME     string `json:"mime"`     // content type as declared by the upload
	Size     int64  `json:"size"`     // content length in bytes
}
