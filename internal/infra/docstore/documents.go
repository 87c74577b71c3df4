package docstore

import (
	"time"

	"lucky-draw/internal/domain/redemption"
	"lucky-draw/internal/infra"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const fieldOrderNumber = "orderNumber"

type orderDoc struct {
	OrderNumber string    `firestore:"orderNumber"`
	HasPlayed   bool      `firestore:"hasPlayed"`
	DrawResult  *string   `firestore:"drawResult"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}

type drawResultDoc struct {
	OrderNumber string    `firestore:"orderNumber"`
	DrawResult  string    `firestore:"drawResult"`
	Timestamp   time.Time `firestore:"timestamp,serverTimestamp"`
}

// docGetter and queryRunner let the same lookup run inside a transaction or
// against the client directly.
type (
	docGetter   func(ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error)
	queryRunner func(q firestore.Query) *firestore.DocumentIterator
)

// resolveOrder finds the order document for orderNumber. Documents are keyed
// by the order number; older documents with generated IDs are found through
// their orderNumber field instead.
func resolveOrder(get docGetter, run queryRunner, orders *firestore.CollectionRef, orderNumber string) (*firestore.DocumentSnapshot, error) {
	snap, err := get(orders.Doc(orderNumber))
	if err == nil {
		return snap, nil
	}
	if status.Code(err) != codes.NotFound {
		return nil, infra.WrapRepoErr("failed to get order document", err)
	}

	iter := run(orders.Where(fieldOrderNumber, "==", orderNumber).Limit(1))
	defer iter.Stop()

	snap, err = iter.Next()
	if err == iterator.Done {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query order by field", err)
	}
	return snap, nil
}

func decodeOrderDoc(snap *firestore.DocumentSnapshot) (*orderDoc, error) {
	var doc orderDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode order document", err, infra.KindDBFailure)
	}
	if doc.OrderNumber == "" {
		doc.OrderNumber = snap.Ref.ID
	}
	return &doc, nil
}

func toOrderRecord(doc *orderDoc) (*redemption.OrderRecord, error) {
	orderNumber, err := redemption.NewOrderNumber(doc.OrderNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("stored order number is invalid", err, infra.KindDBFailure)
	}

	var drawResult *redemption.DrawResult
	if doc.DrawResult != nil {
		d, err := redemption.NewDrawResult(*doc.DrawResult)
		if err != nil {
			return nil, infra.WrapRepoErr("stored draw result is invalid", err, infra.KindDBFailure)
		}
		drawResult = &d
	}

	return redemption.ReconstructOrderRecord(orderNumber, doc.HasPlayed, drawResult), nil
}
