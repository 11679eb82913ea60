package v1

// ID is an opaque unique identifier for a letter. The registry assigns a
// UUID when the snapshot record carries none.
type ID string

// Direction indicates whether a letter is incoming or outgoing
// correspondence.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

var Directions = []Direction{DirectionIncoming, DirectionOutgoing}

// Label returns the human-readable form used in the UI and when matching
// free-text search.
func (d Direction) Label() string {
	switch d {
	case DirectionIncoming:
		return "Incoming"
	case DirectionOutgoing:
		return "Outgoing"
	}
	return string(d)
}

// LetterType classifies a letter within the registry.
type LetterType string

const (
	LetterTypeOfficial   LetterType = "official"
	LetterTypeMemo       LetterType = "memo"
	LetterTypeInvitation LetterType = "invitation"
	LetterTypeCircular   LetterType = "circular"
)

// LetterTypes lists every letter type in display order.
var LetterTypes = []LetterType{
	LetterTypeOfficial,
	LetterTypeMemo,
	LetterTypeInvitation,
	LetterTypeCircular,
}

func (t LetterType) Label() string {
	switch t {
	case LetterTypeOfficial:
		return "Official Letter"
	case LetterTypeMemo:
		return "Internal Memo"
	case LetterTypeInvitation:
		return "Invitation"
	case LetterTypeCircular:
		return "Circular"
	}
	return string(t)
}

// DispositionTarget is an internal routing destination a letter can be
// dispositioned to.
type DispositionTarget string

const (
	TargetChair     DispositionTarget = "chair"
	TargetViceChair DispositionTarget = "vice-chair"
	TargetSecretary DispositionTarget = "secretary"
	TargetTreasurer DispositionTarget = "treasurer"
	TargetGeneral   DispositionTarget = "general-affairs"
	TargetArchive   DispositionTarget = "archive"
)

var DispositionTargets = []DispositionTarget{
	TargetChair,
	TargetViceChair,
	TargetSecretary,
	TargetTreasurer,
	TargetGeneral,
	TargetArchive,
}

func (t DispositionTarget) Label() string {
	switch t {
	case TargetChair:
		return "Chair"
	case TargetViceChair:
		return "Vice Chair"
	case TargetSecretary:
		return "Secretary"
	case TargetTreasurer:
		return "Treasurer"
	case TargetGeneral:
		return "General Affairs"
	case TargetArchive:
		return "Archive"
	}
	return string(t)
}

type ByID []ID

func (p ByID) Len() int {
	return len(p)
}

func (p ByID) Less(i, j int) bool {
	return p[i] < p[j]
}

func (p ByID) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}
