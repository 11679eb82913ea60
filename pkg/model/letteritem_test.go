package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

func TestRowTitlePrefersDocumentNumber(t *testing.T) {
	l := &v1.Letter{
		Subject:        "Quarterly budget review",
		DocumentNumber: "045/OUT/2025",
		AgendaNumber:   "AGD-7",
	}
	assert.Equal(t, "045/OUT/2025 Quarterly budget review", rowTitle(l))

	l.DocumentNumber = ""
	assert.Equal(t, "AGD-7 Quarterly budget review", rowTitle(l))

	l.AgendaNumber = ""
	assert.Equal(t, "Quarterly budget review", rowTitle(l))
}

func TestRowDetailsFollowsDirection(t *testing.T) {
	in := &v1.Letter{
		Direction: v1.DirectionIncoming,
		Type:      v1.LetterTypeOfficial,
		Origin:    "City Planning Office",
	}
	assert.Contains(t, rowDetails(in), "from City Planning Office")

	out := &v1.Letter{
		Direction:   v1.DirectionOutgoing,
		Type:        v1.LetterTypeMemo,
		Destination: "Finance Bureau",
	}
	assert.Contains(t, rowDetails(out), "to Finance Bureau")
}

func TestAttachmentNote(t *testing.T) {
	l := &v1.Letter{}
	assert.Equal(t, "", attachmentNote(l))

	l.Attachments = []v1.Attachment{
		{Filename: "minutes.pdf", StorageKey: "k1", SizeBytes: 1024},
		{Filename: "floorplan.png", StorageKey: "k2", SizeBytes: 2048},
	}
	note := attachmentNote(l)
	assert.Contains(t, note, "2")
	assert.Contains(t, note, "3.0 KiB")
}

func TestLetterMarkdownLayout(t *testing.T) {
	l := &v1.Letter{
		ID:                 "ltr-1",
		Direction:          v1.DirectionIncoming,
		Type:               v1.LetterTypeInvitation,
		Subject:            "Opening ceremony",
		Origin:             "Mayor's Office",
		DispositionContent: "Treasurer to arrange transport.",
		DispositionTargets: []v1.DispositionTarget{v1.TargetTreasurer},
		ReceivedAt:         time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC),
		Attachments: []v1.Attachment{
			{Filename: "invitation.pdf", StorageKey: "k1", SizeBytes: 4096},
		},
	}

	md := letterMarkdown(l)
	assert.True(t, strings.HasPrefix(md, "# Opening ceremony\n"))
	assert.Contains(t, md, "**Origin:** Mayor's Office")
	assert.Contains(t, md, "## Disposition\n\nTreasurer to arrange transport.")
	assert.Contains(t, md, "* invitation.pdf (4.0 KiB)")
	// Empty fields stay out of the render entirely.
	assert.NotContains(t, md, "Destination")
	assert.NotContains(t, md, "Agenda")
}

func TestDirectionGlyph(t *testing.T) {
	assert.NotEqual(t, directionGlyph(v1.DirectionIncoming), directionGlyph(v1.DirectionOutgoing))
}
