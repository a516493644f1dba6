package schema

import (
	"fmt"
	"strconv"
	"strings"

	"bazaar/internal/domain/entity"
	"bazaar/internal/util"

	"github.com/go-playground/validator/v10"
)

// ruleMessage renders the human-readable message for one violated rule.
func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		if fe.Field() == "store_hours" {
			return fmt.Sprintf("must contain exactly %s day entries", fe.Param())
		}

		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "slugchars":
		return "may only contain lowercase letters, digits and hyphens"
	case "handle":
		return "may only contain letters, digits, underscores and hyphens"
	case "phone":
		return "must be 10 to 15 digits with an optional leading +"
	case "hhmm":
		return "must be a 24-hour time in HH:MM format"
	case "weekday":
		return "must be a valid day name"
	case "image_mime":
		return "must be a JPEG, PNG or WebP image"
	case "max_upload":
		limit, err := strconv.ParseInt(fe.Param(), 10, 64)
		if err != nil {
			return "exceeds the upload size limit"
		}

		return fmt.Sprintf("must be %s or smaller", util.FormatBytes(limit))
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}

// allowedImageMIMEs are the accepted attachment content types.
var allowedImageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

func imageMIME(fl validator.FieldLevel) bool {
	att, ok := fl.Field().Interface().(entity.Attachment)
	if !ok {
		return false
	}
	_, allowed := allowedImageMIMEs[att.MIME]

	return allowed
}

func maxUpload(fl validator.FieldLevel) bool {
	att, ok := fl.Field().Interface().(entity.Attachment)
	if !ok {
		return false
	}
	limit, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil {
		return false
	}

	return att.Size <= limit
}
