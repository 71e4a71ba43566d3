package gtfs

const (
	FareAttributeFile = "fare_attributes.txt"
	FareRuleFile      = "fare_rules.txt"
)

type FareAttribute struct {
	FareID        string
	Price         float64
	CurrencyType  string
	PaymentMethod PaymentMethod
	Transfers     Transfers
	AgencyID      string
	// TransferDuration is in seconds, nil when transfers never expire.
	TransferDuration *int
}

func (f *FareAttribute) Key() string {
	return f.FareID
}

type FareAttributeBuilder struct {
	fareID           *string
	price            *float64
	currencyType     *string
	paymentMethod    *int
	transfers        *int
	agencyID         *string
	transferDuration *int
}

func NewFareAttributeBuilder() *FareAttributeBuilder {
	return &FareAttributeBuilder{}
}

func (b *FareAttributeBuilder) FareID(v *string) *FareAttributeBuilder { b.fareID = v; return b }
func (b *FareAttributeBuilder) Price(v *float64) *FareAttributeBuilder { b.price = v; return b }
func (b *FareAttributeBuilder) CurrencyType(v *string) *FareAttributeBuilder { b.currencyType = v; return b }
func (b *FareAttributeBuilder) PaymentMethod(v *int) *FareAttributeBuilder { b.paymentMethod = v; return b }
func (b *FareAttributeBuilder) Transfers(v *int) *FareAttributeBuilder { b.transfers = v; return b }
func (b *FareAttributeBuilder) AgencyID(v *string) *FareAttributeBuilder { b.agencyID = v; return b }
func (b *FareAttributeBuilder) TransferDuration(v *int) *FareAttributeBuilder { b.transferDuration = v; return b }

func (b *FareAttributeBuilder) Clear() *FareAttributeBuilder {
	*b = FareAttributeBuilder{}
	return b
}

func (b *FareAttributeBuilder) Build() BuildResult[FareAttribute] {
	c := newCheck(FareAttributeFile, b.fareID)
	f := &FareAttribute{
		FareID:           requireText(c, "fare_id", b.fareID),
		Price:            requireValue(c, "price", b.price),
		CurrencyType:     requireText(c, "currency_type", b.currencyType),
		PaymentMethod:    requiredEnum(c, "payment_method", b.paymentMethod, paymentMethods),
		Transfers:        optionalEnum(c, "transfers", b.transfers, TransfersUnlimited, transferCounts),
		AgencyID:         text(b.agencyID),
		TransferDuration: copyPtr(b.transferDuration),
	}
	if c.failed() {
		return Failure[FareAttribute](c.notices...)
	}
	return Success(f)
}

type FareRuleKey struct {
	FareID        string
	RouteID       string
	OriginID      string
	DestinationID string
	ContainsID    string
}

// FareRule applies a fare to itineraries. Every field but FareID narrows the
// rule and may be empty.
type FareRule struct {
	FareID        string
	RouteID       string
	OriginID      string
	DestinationID string
	ContainsID    string
}

func (r *FareRule) Key() FareRuleKey {
	return FareRuleKey(*r)
}

type FareRuleBuilder struct {
	fareID        *string
	routeID       *string
	originID      *string
	destinationID *string
	containsID    *string
}

func NewFareRuleBuilder() *FareRuleBuilder {
	return &FareRuleBuilder{}
}

func (b *FareRuleBuilder) FareID(v *string) *FareRuleBuilder { b.fareID = v; return b }
func (b *FareRuleBuilder) RouteID(v *string) *FareRuleBuilder { b.routeID = v; return b }
func (b *FareRuleBuilder) OriginID(v *string) *FareRuleBuilder { b.originID = v; return b }
func (b *FareRuleBuilder) DestinationID(v *string) *FareRuleBuilder { b.destinationID = v; return b }
func (b *FareRuleBuilder) ContainsID(v *string) *FareRuleBuilder { b.containsID = v; return b }

func (b *FareRuleBuilder) Clear() *FareRuleBuilder {
	*b = FareRuleBuilder{}
	return b
}

func (b *FareRuleBuilder) Build() BuildResult[FareRule] {
	c := newCheck(FareRuleFile, b.fareID)
	r := &FareRule{
		FareID:        requireText(c, "fare_id", b.fareID),
		RouteID:       text(b.routeID),
		OriginID:      text(b.originID),
		DestinationID: text(b.destinationID),
		ContainsID:    text(b.containsID),
	}
	if c.failed() {
		return Failure[FareRule](c.notices...)
	}
	return Success(r)
}
