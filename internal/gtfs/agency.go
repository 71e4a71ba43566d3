package gtfs

const AgencyFile = "agency.txt"

// Agency is one row of agency.txt. Entities are read-only once built.
type Agency struct {
	AgencyID       string
	AgencyName     string
	AgencyURL      string
	AgencyTimezone string
	AgencyLang     string
	AgencyPhone    string
	AgencyFareURL  string
	AgencyEmail    string
}

// Key is agency_id, which may be empty for single-agency feeds.
func (a *Agency) Key() string {
	return a.AgencyID
}

type AgencyBuilder struct {
	agencyID       *string
	agencyName     *string
	agencyURL      *string
	agencyTimezone *string
	agencyLang     *string
	agencyPhone    *string
	agencyFareURL  *string
	agencyEmail    *string
}

func NewAgencyBuilder() *AgencyBuilder {
	return &AgencyBuilder{}
}

func (b *AgencyBuilder) AgencyID(v *string) *AgencyBuilder { b.agencyID = v; return b }
func (b *AgencyBuilder) AgencyName(v *string) *AgencyBuilder { b.agencyName = v; return b }
func (b *AgencyBuilder) AgencyURL(v *string) *AgencyBuilder { b.agencyURL = v; return b }
func (b *AgencyBuilder) AgencyTimezone(v *string) *AgencyBuilder { b.agencyTimezone = v; return b }
func (b *AgencyBuilder) AgencyLang(v *string) *AgencyBuilder { b.agencyLang = v; return b }
func (b *AgencyBuilder) AgencyPhone(v *string) *AgencyBuilder { b.agencyPhone = v; return b }
func (b *AgencyBuilder) AgencyFareURL(v *string) *AgencyBuilder { b.agencyFareURL = v; return b }
func (b *AgencyBuilder) AgencyEmail(v *string) *AgencyBuilder { b.agencyEmail = v; return b }

// Clear resets every field so the builder can take the next row.
func (b *AgencyBuilder) Clear() *AgencyBuilder {
	*b = AgencyBuilder{}
	return b
}

func (b *AgencyBuilder) Build() BuildResult[Agency] {
	c := newCheck(AgencyFile, b.agencyID)
	a := &Agency{
		AgencyID:       text(b.agencyID),
		AgencyName:     requireText(c, "agency_name", b.agencyName),
		AgencyURL:      requireText(c, "agency_url", b.agencyURL),
		AgencyTimezone: requireText(c, "agency_timezone", b.agencyTimezone),
		AgencyLang:     text(b.agencyLang),
		AgencyPhone:    text(b.agencyPhone),
		AgencyFareURL:  text(b.agencyFareURL),
		AgencyEmail:    text(b.agencyEmail),
	}
	if c.failed() {
		return Failure[Agency](c.notices...)
	}
	return Success(a)
}
