package gtfs

const TransferFile = "transfers.txt"

type TransferKey struct {
	FromStopID string
	ToStopID   string
}

type Transfer struct {
	FromStopID   string
	ToStopID     string
	TransferType TransferType
	// MinTransferTime is in seconds; always set for TransferMinimumTime.
	MinTransferTime *int
}

func (t *Transfer) Key() TransferKey {
	return TransferKey{FromStopID: t.FromStopID, ToStopID: t.ToStopID}
}

type TransferBuilder struct {
	fromStopID      *string
	toStopID        *string
	transferType    *int
	minTransferTime *int
}

func NewTransferBuilder() *TransferBuilder {
	return &TransferBuilder{}
}

func (b *TransferBuilder) FromStopID(v *string) *TransferBuilder { b.fromStopID = v; return b }
func (b *TransferBuilder) ToStopID(v *string) *TransferBuilder { b.toStopID = v; return b }
func (b *TransferBuilder) TransferType(v *int) *TransferBuilder { b.transferType = v; return b }
func (b *TransferBuilder) MinTransferTime(v *int) *TransferBuilder { b.minTransferTime = v; return b }

func (b *TransferBuilder) Clear() *TransferBuilder {
	*b = TransferBuilder{}
	return b
}

func (b *TransferBuilder) Build() BuildResult[Transfer] {
	c := newCheck(TransferFile, b.fromStopID)
	t := &Transfer{
		FromStopID:      requireText(c, "from_stop_id", b.fromStopID),
		ToStopID:        requireText(c, "to_stop_id", b.toStopID),
		TransferType:    optionalEnum(c, "transfer_type", b.transferType, TransferRecommended, transferTypes),
		MinTransferTime: copyPtr(b.minTransferTime),
	}
	if t.TransferType == TransferMinimumTime {
		requireValue(c, "min_transfer_time", b.minTransferTime)
	}
	if c.failed() {
		return Failure[Transfer](c.notices...)
	}
	return Success(t)
}
