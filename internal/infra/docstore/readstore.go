package docstore

import (
	"context"

	"lucky-draw/internal/infra"
	"lucky-draw/internal/pkg/config"
	"lucky-draw/internal/usecase/queries"

	"cloud.google.com/go/firestore"
	"github.com/jinzhu/copier"
)

type OrderReadStore struct {
	orders *firestore.CollectionRef
}

func NewOrderReadStore(client *firestore.Client, cfg config.FirestoreConfig) *OrderReadStore {
	return &OrderReadStore{orders: client.Collection(cfg.OrdersCollection)}
}

func (s *OrderReadStore) FindByOrderNumber(ctx context.Context, orderNumber string) (*queries.OrderView, error) {
	get := func(ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
		return ref.Get(ctx)
	}
	run := func(q firestore.Query) *firestore.DocumentIterator {
		return q.Documents(ctx)
	}

	snap, err := resolveOrder(get, run, s.orders, orderNumber)
	if err != nil {
		return nil, err
	}
	doc, err := decodeOrderDoc(snap)
	if err != nil {
		return nil, err
	}

	var view queries.OrderView
	if err := copier.Copy(&view, doc); err != nil {
		return nil, infra.WrapRepoErr("failed to map order document", err, infra.KindDBFailure)
	}
	return &view, nil
}
