// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	journalDomain "github.com/lifelog-app/lifelog/internal/journal/domain"
	customValidation "github.com/lifelog-app/lifelog/internal/validation"
)

// CreateEntryRequest contains the parameters for creating a journal entry.
// The payload fields are sealed server-side before persistence.
type CreateEntryRequest struct {
	EntryDate string   `json:"entry_date" binding:"required"`
	Text      string   `json:"text" binding:"required"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags"`
	Location  string   `json:"location"`
}

// Validate checks if the create entry request is valid.
func (r *CreateEntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.EntryDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.Text, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Mood, validation.Length(0, 64)),
		validation.Field(&r.Location, validation.Length(0, 255)),
	)
}

// Payload converts the request body into the plaintext entry payload.
func (r *CreateEntryRequest) Payload() *journalDomain.EntryPayload {
	return &journalDomain.EntryPayload{
		Text:     r.Text,
		Mood:     r.Mood,
		Tags:     r.Tags,
		Location: r.Location,
	}
}

// UpdateEntryRequest contains the parameters for replacing an entry's payload.
// The entry ID is extracted from the URL parameter, not the request body.
type UpdateEntryRequest struct {
	Text     string   `json:"text" binding:"required"`
	Mood     string   `json:"mood"`
	Tags     []string `json:"tags"`
	Location string   `json:"location"`
}

// Validate checks if the update entry request is valid.
func (r *UpdateEntryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Mood, validation.Length(0, 64)),
		validation.Field(&r.Location, validation.Length(0, 255)),
	)
}

// Payload converts the request body into the plaintext entry payload.
func (r *UpdateEntryRequest) Payload() *journalDomain.EntryPayload {
	return &journalDomain.EntryPayload{
		Text:     r.Text,
		Mood:     r.Mood,
		Tags:     r.Tags,
		Location: r.Location,
	}
}
