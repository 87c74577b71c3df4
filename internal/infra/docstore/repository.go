package docstore

import (
	"context"

	"lucky-draw/internal/domain/redemption"
	"lucky-draw/internal/infra"

	"cloud.google.com/go/firestore"
)

type OrderRepository struct {
	tx     *firestore.Transaction
	orders *firestore.CollectionRef

	// refs remembers where each order was found so the update goes to the
	// same document, including legacy documents with generated IDs.
	refs map[string]*firestore.DocumentRef
}

func NewOrderRepository(tx *firestore.Transaction, orders *firestore.CollectionRef) *OrderRepository {
	return &OrderRepository{
		tx:     tx,
		orders: orders,
		refs:   make(map[string]*firestore.DocumentRef),
	}
}

// FindForUpdate reads inside the transaction, which locks the document until commit.
func (r *OrderRepository) FindForUpdate(ctx context.Context, orderNumber redemption.OrderNumber) (*redemption.OrderRecord, error) {
	snap, err := r.resolve(orderNumber.String())
	if err != nil {
		return nil, err
	}
	doc, err := decodeOrderDoc(snap)
	if err != nil {
		return nil, err
	}
	r.refs[orderNumber.String()] = snap.Ref
	return toOrderRecord(doc)
}

func (r *OrderRepository) SavePlayed(ctx context.Context, order *redemption.OrderRecord) error {
	ref, ok := r.refs[order.OrderNumber().String()]
	if !ok {
		ref = r.orders.Doc(order.OrderNumber().String())
	}

	updates := []firestore.Update{
		{Path: "hasPlayed", Value: order.HasPlayed()},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if result := order.DrawResult(); result != nil {
		updates = append(updates, firestore.Update{Path: "drawResult", Value: result.String()})
	}

	if err := r.tx.Update(ref, updates); err != nil {
		return infra.WrapRepoErr("failed to mark order played", err)
	}
	return nil
}

func (r *OrderRepository) CreateIfAbsent(ctx context.Context, order *redemption.OrderRecord) (bool, error) {
	_, err := r.resolve(order.OrderNumber().String())
	if err == nil {
		return false, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return false, err
	}

	doc := orderDoc{
		OrderNumber: order.OrderNumber().String(),
		HasPlayed:   order.HasPlayed(),
	}
	if err := r.tx.Create(r.orders.Doc(doc.OrderNumber), doc); err != nil {
		return false, infra.WrapRepoErr("failed to create order", err)
	}
	return true, nil
}

func (r *OrderRepository) resolve(orderNumber string) (*firestore.DocumentSnapshot, error) {
	return resolveOrder(r.tx.Get, r.run, r.orders, orderNumber)
}

func (r *OrderRepository) run(q firestore.Query) *firestore.DocumentIterator {
	return r.tx.Documents(q)
}

type DrawResultRepository struct {
	tx          *firestore.Transaction
	drawResults *firestore.CollectionRef
}

func NewDrawResultRepository(tx *firestore.Transaction, drawResults *firestore.CollectionRef) *DrawResultRepository {
	return &DrawResultRepository{
		tx:          tx,
		drawResults: drawResults,
	}
}

// Create keys the result by order number. A second result for the same order
// fails at commit with AlreadyExists.
func (r *DrawResultRepository) Create(ctx context.Context, record *redemption.DrawResultRecord) error {
	doc := drawResultDoc{
		OrderNumber: record.OrderNumber().String(),
		DrawResult:  record.DrawResult().String(),
	}
	if err := r.tx.Create(r.drawResults.Doc(doc.OrderNumber), doc); err != nil {
		return infra.WrapRepoErr("failed to create draw result", err)
	}
	return nil
}
