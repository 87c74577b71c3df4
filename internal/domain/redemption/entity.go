package redemption

import (
	"errors"
	"time"
)

var ErrAlreadyRedeemed = errors.New("order number has already been used")

// OrderRecord is created out-of-band before the campaign runs and transitions
// from unplayed to played exactly once.
type OrderRecord struct {
	orderNumber OrderNumber
	hasPlayed   bool
	drawResult  *DrawResult
}

func NewOrderRecord(orderNumber OrderNumber) *OrderRecord {
	return &OrderRecord{orderNumber: orderNumber}
}

func ReconstructOrderRecord(orderNumber OrderNumber, hasPlayed bool, drawResult *DrawResult) *OrderRecord {
	return &OrderRecord{
		orderNumber: orderNumber,
		hasPlayed:   hasPlayed,
		drawResult:  drawResult,
	}
}

func (o *OrderRecord) OrderNumber() OrderNumber { return o.orderNumber }
func (o *OrderRecord) HasPlayed() bool          { return o.hasPlayed }
func (o *OrderRecord) DrawResult() *DrawResult  { return o.drawResult }

func (o *OrderRecord) CheckEligible() error {
	if o.hasPlayed {
		return ErrAlreadyRedeemed
	}
	return nil
}

// Redeem consumes the single draw attempt and returns the result record to
// persist alongside the updated order. The record timestamp is left zero for
// the store to assign.
func (o *OrderRecord) Redeem(result DrawResult) (*DrawResultRecord, error) {
	if err := o.CheckEligible(); err != nil {
		return nil, err
	}
	o.hasPlayed = true
	o.drawResult = &result
	return &DrawResultRecord{
		orderNumber: o.orderNumber,
		drawResult:  result,
	}, nil
}

type DrawResultRecord struct {
	orderNumber OrderNumber
	drawResult  DrawResult
	timestamp   time.Time
}

func ReconstructDrawResultRecord(orderNumber OrderNumber, drawResult DrawResult, timestamp time.Time) *DrawResultRecord {
	return &DrawResultRecord{
		orderNumber: orderNumber,
		drawResult:  drawResult,
		timestamp:   timestamp,
	}
}

func (d *DrawResultRecord) OrderNumber() OrderNumber { return d.orderNumber }
func (d *DrawResultRecord) DrawResult() DrawResult   { return d.drawResult }
func (d *DrawResultRecord) Timestamp() time.Time     { return d.timestamp }
