package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreDraft_Defaults(t *testing.T) {
	draft := NewStoreDraft()

	assert.Equal(t, ShippingLocalPickup, draft.ShippingType)
	assert.True(t, draft.Active)
	assert.False(t, draft.Verified)
	assert.Len(t, draft.Hours, 7)
	assert.True(t, draft.Hours.InWeekOrder())
}

func TestDefaultWeekHours(t *testing.T) {
	hours := DefaultWeekHours()

	require.Len(t, hours, 7)
	for i, entry := range hours[:6] {
		assert.Equal(t, WeekOrder[i], entry.Day)
		assert.True(t, entry.IsOpen)
		assert.Equal(t, DefaultOpenTime, entry.OpenTime)
		assert.Equal(t, DefaultCloseTime, entry.CloseTime)
	}
	assert.Equal(t, Sunday, hours[6].Day)
	assert.False(t, hours[6].IsOpen)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Shop!!", "my-shop"},
		{"Blue Bottle Ceramics", "blue-bottle-ceramics"},
		{"  Édition Spéciale  ", "edition-speciale"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.name))
		})
	}
}

func TestStoreDraft_SetField_NameRegeneratesSlug(t *testing.T) {
	draft := NewStoreDraft()

	path, err := draft.SetField("name", "My Shop!!")

	require.NoError(t, err)
	assert.Equal(t, "name", path)
	assert.Equal(t, "My Shop!!", draft.Name)
	assert.Equal(t, "my-shop", draft.Slug)
}

func TestStoreDraft_SetField_SlugDoesNotFeedBack(t *testing.T) {
	draft := NewStoreDraft()
	_, err := draft.SetField("name", "My Shop")
	require.NoError(t, err)

	_, err = draft.SetField("slug", "custom-slug")
	require.NoError(t, err)

	assert.Equal(t, "My Shop", draft.Name)
	assert.Equal(t, "custom-slug", draft.Slug)
}

func TestStoreDraft_SetField_UnknownField(t *testing.T) {
	draft := NewStoreDraft()

	_, err := draft.SetField("tax_rate", "0.21")

	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestStoreDraft_SetField_VerifiedNotReachable(t *testing.T) {
	draft := NewStoreDraft()

	_, err := draft.SetField("is_verified", true)

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.False(t, draft.Verified)
}

func TestStoreDraft_SetField_TypeMismatch(t *testing.T) {
	draft := NewStoreDraft()

	_, err := draft.SetField("name", 42)
	assert.ErrorIs(t, err, ErrInvalidFieldValue)

	_, err = draft.SetField("show_contact", "yes")
	assert.ErrorIs(t, err, ErrInvalidFieldValue)
}

func TestStoreDraft_SetAddressField(t *testing.T) {
	draft := NewStoreDraft()

	path, err := draft.SetAddressField("city", "Lisbon")

	require.NoError(t, err)
	assert.Equal(t, "address.city", path)
	assert.Equal(t, "Lisbon", draft.Address.City)

	_, err = draft.SetAddressField("planet", "Earth")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestStoreDraft_SetHourField(t *testing.T) {
	draft := NewStoreDraft()

	path, err := draft.SetHourField(2, "open_time", "07:30")

	require.NoError(t, err)
	assert.Equal(t, "store_hours[2].open_time", path)
	assert.Equal(t, "07:30", draft.Hours[2].OpenTime)
	assert.Equal(t, DefaultOpenTime, draft.Hours[1].OpenTime)
	assert.Len(t, draft.Hours, 7)
}

func TestStoreDraft_SetHourField_IndexRange(t *testing.T) {
	draft := NewStoreDraft()

	for _, idx := range []int{-1, 7, 100} {
		_, err := draft.SetHourField(idx, "is_open", false)
		assert.ErrorIs(t, err, ErrDayIndexRange, "index %d", idx)
	}
}

func TestStoreDraft_SetHourField_DayNotWritable(t *testing.T) {
	draft := NewStoreDraft()

	_, err := draft.SetHourField(0, "day", "friday")

	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, Monday, draft.Hours[0].Day)
}

func TestStoreDraft_SetFile(t *testing.T) {
	draft := NewStoreDraft()
	att := &Attachment{Key: "uploads/a", Filename: "a.png", MIME: "image/png", Size: 1024}

	path, err := draft.SetFile(SlotLogo, att)
	require.NoError(t, err)
	assert.Equal(t, "logo", path)
	assert.Equal(t, att, draft.Logo)

	_, err = draft.SetFile(SlotLogo, nil)
	require.NoError(t, err)
	assert.Nil(t, draft.Logo)

	_, err = draft.SetFile("banner", att)
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestStoreDraft_Clone_Detached(t *testing.T) {
	draft := NewStoreDraft()
	draft.Name = "Original"
	draft.Logo = &Attachment{Key: "uploads/a"}

	clone := draft.Clone()
	clone.Name = "Mutated"
	clone.Hours[0].OpenTime = "00:00"

	assert.Equal(t, "Original", draft.Name)
	assert.Equal(t, DefaultOpenTime, draft.Hours[0].OpenTime)
	assert.Equal(t, draft.Logo, clone.Logo)
}

func TestErrorMap_ClearAndClone(t *testing.T) {
	errs := ErrorMap{"name": "is required", "email": "must be valid"}

	errs.Clear("name")
	assert.NotContains(t, errs, "name")
	assert.False(t, errs.IsEmpty())

	clone := errs.Clone()
	clone.Clear("email")
	assert.Contains(t, errs, "email")
}

func TestHourFieldPath(t *testing.T) {
	assert.Equal(t, "store_hours[3].open_time", HourFieldPath(3, "open_time"))
}
