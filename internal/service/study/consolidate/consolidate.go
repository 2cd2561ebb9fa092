package consolidate

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// Session is a time-clustered run of events treated as one attempt.
type Session struct {
	Start   time.Time
	End     time.Time
	Events  int
	Correct bool
}

// Sessions clusters events in answer order. A gap strictly greater than gap
// starts a new session. Events with a repeated non-nil id are ignored and
// timestamp ties keep log order.
func Sessions(item ReviewableItem, events []domain.AttemptEvent, gap time.Duration) []Session {
	sorted := dedupe(events)
	slices.SortStableFunc(sorted, func(a, b domain.AttemptEvent) int {
		return a.AnsweredAt.Compare(b.AnsweredAt)
	})

	var out []Session
	for _, e := range sorted {
		ok := item.IsCorrect(e)
		if n := len(out); n > 0 && e.AnsweredAt.Sub(out[n-1].End) <= gap {
			s := &out[n-1]
			s.End = e.AnsweredAt
			s.Events++
			s.Correct = s.Correct && ok
			continue
		}
		out = append(out, Session{Start: e.AnsweredAt, End: e.AnsweredAt, Events: 1, Correct: ok})
	}
	return out
}

// Consolidate folds the events of one logical item into a record.
// It is deterministic: the same log always yields the same record.
func Consolidate(item ReviewableItem, events []domain.AttemptEvent, gap time.Duration) domain.ConsolidatedRecord {
	rec := domain.ConsolidatedRecord{ItemType: item.Type()}
	if len(events) > 0 {
		rec.Key = item.LogicalKey(events[0])
	}

	for _, s := range Sessions(item, events, gap) {
		rec.TotalAttempts++
		if s.Correct {
			rec.CorrectCount++
			rec.LastResult = domain.OutcomeCorrect
		} else {
			rec.IncorrectCount++
			rec.LastResult = domain.OutcomeIncorrect
		}
		rec.SolvedAt = s.End
	}
	return rec
}

// ByItem groups a mixed event log by item type and logical key and folds each
// group. Events of unknown types are skipped. Records are ordered by most
// recent session first, then by key.
func ByItem(events []domain.AttemptEvent, gap time.Duration) []domain.ConsolidatedRecord {
	type groupKey struct {
		typ domain.ItemType
		key string
	}

	groups := make(map[groupKey][]domain.AttemptEvent)
	var order []groupKey
	for _, e := range events {
		item, err := For(e.ItemType)
		if err != nil {
			continue
		}
		k := groupKey{typ: e.ItemType, key: item.LogicalKey(e)}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}

	out := make([]domain.ConsolidatedRecord, 0, len(order))
	for _, k := range order {
		item, _ := For(k.typ)
		out = append(out, Consolidate(item, groups[k], gap))
	}

	slices.SortStableFunc(out, func(a, b domain.ConsolidatedRecord) int {
		if c := b.SolvedAt.Compare(a.SolvedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// RecordKey identifies a record. Logical keys are only unique within a type.
type RecordKey struct {
	Type domain.ItemType
	Key  string
}

// Index returns records keyed by item type and logical key for lookups in
// list views.
func Index(records []domain.ConsolidatedRecord) map[RecordKey]domain.ConsolidatedRecord {
	m := make(map[RecordKey]domain.ConsolidatedRecord, len(records))
	for _, r := range records {
		m[RecordKey{Type: r.ItemType, Key: r.Key}] = r
	}
	return m
}

func dedupe(events []domain.AttemptEvent) []domain.AttemptEvent {
	seen := make(map[uuid.UUID]struct{}, len(events))
	out := make([]domain.AttemptEvent, 0, len(events))
	for _, e := range events {
		if e.ID != uuid.Nil {
			if _, dup := seen[e.ID]; dup {
				continue
			}
			seen[e.ID] = struct{}{}
		}
		out = append(out, e)
	}
	return out
}
