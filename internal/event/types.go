package event

import "time"

// Profile names which calendar a query lands on.
type Profile string

const (
	ProfilePersonal Profile = "personal"
	ProfileWork     Profile = "work"
	ProfileOther    Profile = "other"
)

// AliasTable maps a lowercase guest display name to an email address. It is
// built once from configuration and never mutated afterwards.
type AliasTable map[string]string

// Sections maps a section key to the verbatim query substring that followed
// its keyword. "title" is always present; other keys only when their keyword
// occurred. The synonym keys desc/details/where are already normalized away.
type Sections map[string]string

// Section keys.
const (
	SectionTitle = "title"
	SectionOn    = "on"
	SectionAt    = "at"
	SectionFrom  = "from"
	SectionWith  = "with"
	SectionNote  = "note"
	SectionFor   = "for"
	SectionIn    = "in"
)

// Event is the resolved quick-add result.
//
// Date is never zero: when no date phrase resolved it is the resolution
// moment's local calendar date. Start and End are either both set (timed
// event) or both nil (all-day, spanning Date through the next day).
// DurationMin is meaningful for timed events; when an explicit end existed
// it is recomputed from the wall-clock delta.
type Event struct {
	Title       string
	Date        time.Time
	Start       *time.Time
	End         *time.Time
	DurationMin int
	Location    string
	Note        string

	// Guests holds resolved email addresses, GuestDisplay the human-facing
	// names (alias text when matched, otherwise the literal email), and
	// Unresolved the tokens no alias or email could be found for. All three
	// are de-duplicated case-insensitively in first-seen order; Guests and
	// GuestDisplay are parallel-but-independently deduplicated, so they may
	// differ in length when aliases share an email.
	Guests       []string
	GuestDisplay []string
	Unresolved   []string
}

// AllDay reports whether the event has no time of day.
func (e Event) AllDay() bool {
	return e.Start == nil
}

// --- UseCase Inputs ---

type ParseInput struct {
	Query   string
	Profile Profile
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Event       Event
	Profile     Profile
	URL         string
	Summary     string
	Description string
}

// CreateOutput is returned when the event is actually inserted through the
// Calendar API rather than just linked.
type CreateOutput struct {
	Parsed ParseOutput
	Link   string
}
