package v1

import (
	"time"

	"github.com/go-playground/validator"
)

// Attachment is a file stored alongside a letter. StorageKey locates the
// blob in whatever store the upload collaborator used; the browser only
// displays it.
type Attachment struct {
	Filename   string `yaml:"filename" validate:"required"`
	StorageKey string `yaml:"storageKey" validate:"required"`
	MediaType  string `yaml:"mediaType,omitempty" validate:""`
	SizeBytes  int64  `yaml:"sizeBytes,omitempty" validate:"min=0"`
}

// Letter is one registry record. Records are immutable for the duration of
// a browsing session; changes arrive only as a complete fresh snapshot.
type Letter struct {
	ID        ID         `yaml:"id,omitempty" validate:""`
	Direction Direction  `yaml:"direction" validate:"required,oneof=incoming outgoing"`
	Type      LetterType `yaml:"type" validate:"required,oneof=official memo invitation circular"`

	AgendaNumber   string `yaml:"agendaNumber,omitempty" validate:""`
	DocumentNumber string `yaml:"documentNumber,omitempty" validate:""`

	Subject     string `yaml:"subject" validate:"required"`
	Origin      string `yaml:"origin,omitempty" validate:""`
	Destination string `yaml:"destination,omitempty" validate:""`

	DispositionContent string              `yaml:"dispositionContent,omitempty" validate:""`
	DispositionTargets []DispositionTarget `yaml:"dispositionTargets,omitempty" validate:"unique"`

	// LetterDate is the date written on the letter itself. ReceivedAt is
	// when it entered the registry; it drives date filtering and the
	// default sort.
	LetterDate time.Time `yaml:"letterDate,omitempty" validate:""`
	ReceivedAt time.Time `yaml:"receivedAt" validate:"required"`

	Attachments []Attachment `yaml:"attachments,omitempty" validate:"dive"`

	// Deleted marks a soft-deleted record. Deleted letters are excluded
	// from snapshots until restored.
	Deleted bool `yaml:"deleted,omitempty" validate:""`
}

func (l *Letter) Validate() error {
	validate := validator.New()
	return validate.Struct(*l)
}

// ByReceivedAtDesc sorts letters newest first, breaking ties by ID so the
// order is deterministic across reloads.
type ByReceivedAtDesc []*Letter

func (p ByReceivedAtDesc) Len() int {
	return len(p)
}

func (p ByReceivedAtDesc) Less(i, j int) bool {
	if !p[i].ReceivedAt.Equal(p[j].ReceivedAt) {
		return p[i].ReceivedAt.After(p[j].ReceivedAt)
	}
	return p[i].ID < p[j].ID
}

func (p ByReceivedAtDesc) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}
