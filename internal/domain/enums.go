package domain

// ItemType identifies the kind of learning item a card is attached to.
type ItemType string

const (
	ItemTypeVocab     ItemType = "vocab"
	ItemTypeGrammar   ItemType = "grammar"
	ItemTypeReading   ItemType = "reading"
	ItemTypeListening ItemType = "listening"
)

// ItemTypes lists every item type in display order.
var ItemTypes = []ItemType{ItemTypeVocab, ItemTypeGrammar, ItemTypeReading, ItemTypeListening}

func (t ItemType) String() string { return string(t) }

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeVocab, ItemTypeGrammar, ItemTypeReading, ItemTypeListening:
		return true
	}
	return false
}

// Language is the source-language tag of a learning item.
type Language string

const (
	LanguageJapanese Language = "japanese"
	LanguageEnglish  Language = "english"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageJapanese, LanguageEnglish:
		return true
	}
	return false
}

// Outcome is the result of a single answer submission.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

func (o Outcome) String() string { return string(o) }

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeCorrect, OutcomeIncorrect:
		return true
	}
	return false
}

// OutcomeOf maps a correctness flag to an Outcome.
func OutcomeOf(correct bool) Outcome {
	if correct {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

// CardLabel is the human-facing review state of a card at an instant.
// Exactly one label applies to a card at any time.
type CardLabel string

const (
	CardLabelUnsolved CardLabel = "unsolved"
	CardLabelWaiting  CardLabel = "waiting"
	CardLabelOverdue  CardLabel = "overdue"
	CardLabelFrozen   CardLabel = "frozen"
	CardLabelMastered CardLabel = "mastered"
)

func (l CardLabel) String() string { return string(l) }

func (l CardLabel) IsValid() bool {
	switch l {
	case CardLabelUnsolved, CardLabelWaiting, CardLabelOverdue, CardLabelFrozen, CardLabelMastered:
		return true
	}
	return false
}

// DemotionMode selects how far a mistake pushes a card down the stage ladder.
type DemotionMode string

const (
	// DemotionReset sends the card back to stage 0.
	DemotionReset DemotionMode = "reset"
	// DemotionStep lowers the stage by a fixed number of rungs.
	DemotionStep DemotionMode = "step"
)

func (m DemotionMode) IsValid() bool {
	switch m {
	case DemotionReset, DemotionStep:
		return true
	}
	return false
}

// ResourceType names a change-notification topic.
type ResourceType string

const (
	ResourceCard        ResourceType = "card"
	ResourceFolder      ResourceType = "folder"
	ResourceWrongAnswer ResourceType = "wrong_answer"
	ResourceHistory     ResourceType = "history"
)

func (r ResourceType) IsValid() bool {
	switch r {
	case ResourceCard, ResourceFolder, ResourceWrongAnswer, ResourceHistory:
		return true
	}
	return false
}
