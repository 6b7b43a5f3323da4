package boost

// Kind names one of the three pending boost slots.
type Kind string

const (
	KindCommunity    Kind = "community"
	KindThumbnailCTR Kind = "thumbnail_ctr"
	KindStream       Kind = "stream"
)

// CombineRule describes what happens when a boost lands on a slot that is
// still holding an unconsumed value.
type CombineRule string

const (
	// RuleAdditiveCapped sums contributions. Each contribution is capped by
	// the minigame that produced it; the running total is not.
	RuleAdditiveCapped CombineRule = "additive_capped"
	// RuleReplace overwrites whatever was pending.
	RuleReplace CombineRule = "replace"
)

func RuleFor(k Kind) CombineRule {
	switch k {
	case KindCommunity, KindThumbnailCTR:
		return RuleAdditiveCapped
	case KindStream:
		return RuleReplace
	default:
		return ""
	}
}

// StreamBonus is the multiplier triple left by a successful stream.
type StreamBonus struct {
	ViewsMultiplier float64 `json:"viewsMultiplier"`
	SubsMultiplier  float64 `json:"subsMultiplier"`
	MoneyMultiplier float64 `json:"moneyMultiplier"`
}

// Ledger holds at most one pending value per kind. Every value is consumed
// by exactly the next upload that applies it.
type Ledger struct {
	Community    int          `json:"pendingCommunityBoost,omitempty"`
	ThumbnailCTR float64      `json:"pendingThumbnailCTRBoost,omitempty"`
	Stream       *StreamBonus `json:"pendingStreamBonus,omitempty"`
}

func (l *Ledger) AddCommunity(points int) {
	if points <= 0 {
		return
	}
	l.Community += points
}

func (l *Ledger) AddThumbnailCTR(boost float64) {
	if boost <= 0 {
		return
	}
	l.ThumbnailCTR += boost
}

func (l *Ledger) SetStream(b StreamBonus) {
	l.Stream = &b
}

// TakeCommunity returns the pending community points and clears the slot.
// ok is false when nothing positive was pending; the slot is left alone.
func (l *Ledger) TakeCommunity() (int, bool) {
	if l.Community <= 0 {
		return 0, false
	}
	v := l.Community
	l.Community = 0
	return v, true
}

func (l *Ledger) TakeThumbnailCTR() (float64, bool) {
	if l.ThumbnailCTR <= 0 {
		return 0, false
	}
	v := l.ThumbnailCTR
	l.ThumbnailCTR = 0
	return v, true
}

func (l *Ledger) TakeStream() (StreamBonus, bool) {
	if l.Stream == nil {
		return StreamBonus{}, false
	}
	v := *l.Stream
	l.Stream = nil
	return v, true
}

// Pending lists the kinds currently holding a value, in upload order.
func (l Ledger) Pending() []Kind {
	out := []Kind{}
	if l.ThumbnailCTR > 0 {
		out = append(out, KindThumbnailCTR)
	}
	if l.Community > 0 {
		out = append(out, KindCommunity)
	}
	if l.Stream != nil {
		out = append(out, KindStream)
	}
	return out
}

func (l Ledger) Clone() Ledger {
	out := l
	if l.Stream != nil {
		s := *l.Stream
		out.Stream = &s
	}
	return out
}
