//go:build integration

package docstore_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"lucky-draw/internal/infra/docstore"
	"lucky-draw/internal/pkg/config"
	"lucky-draw/internal/pkg/errs"
	"lucky-draw/internal/usecase/commands"
	"lucky-draw/internal/usecase/queries"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EmulatorTestSuite struct {
	suite.Suite
	ctx      context.Context
	client   *firestore.Client
	cleanup  func()
	cfg      config.FirestoreConfig
	commands commands.RedemptionCommands
	imports  commands.OrderImportCommands
	queries  queries.OrderQueries
}

func TestEmulatorSuite(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST is not set")
	}
	suite.Run(t, new(EmulatorTestSuite))
}

func (s *EmulatorTestSuite) SetupSuite() {
	s.ctx = context.Background()
	suffix := time.Now().UnixNano()
	s.cfg = config.FirestoreConfig{
		EmulatorHost:          os.Getenv("FIRESTORE_EMULATOR_HOST"),
		OrdersCollection:      fmt.Sprintf("orders_%d", suffix),
		DrawResultsCollection: fmt.Sprintf("drawResults_%d", suffix),
	}

	client, cleanup, err := docstore.NewClient(s.ctx, s.cfg)
	s.Require().NoError(err)
	s.client = client
	s.cleanup = cleanup

	uow := docstore.NewFirestoreUoW(client, s.cfg)
	s.commands = commands.NewRedemptionCommands(uow)
	s.imports = commands.NewOrderImportCommands(uow)
	s.queries = queries.NewOrderQueries(docstore.NewOrderReadStore(client, s.cfg))
}

func (s *EmulatorTestSuite) TearDownSuite() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *EmulatorTestSuite) TestValidateThenRecord() {
	_, err := s.imports.ImportOrders(s.ctx, []string{"ABC123"})
	s.Require().NoError(err)

	view, err := s.queries.CheckOrderNumber(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(view.HasPlayed)

	_, err = s.commands.RecordDrawResult(s.ctx, commands.RecordDrawResultRequest{OrderNumber: "ABC123", DrawResult: "PRIZE_A"})
	s.Require().NoError(err)

	_, err = s.queries.CheckOrderNumber(s.ctx, "ABC123")
	s.True(errs.Is(err, errs.ErrOrderAlreadyUsed))

	_, err = s.commands.RecordDrawResult(s.ctx, commands.RecordDrawResultRequest{OrderNumber: "ABC123", DrawResult: "PRIZE_B"})
	s.True(errs.Is(err, errs.ErrOrderAlreadyUsed))

	snap, err := s.client.Collection(s.cfg.DrawResultsCollection).Doc("ABC123").Get(s.ctx)
	s.Require().NoError(err)
	s.Equal("PRIZE_A", snap.Data()["drawResult"])
	s.NotNil(snap.Data()["timestamp"])
}

func (s *EmulatorTestSuite) TestUnknownOrder() {
	_, err := s.queries.CheckOrderNumber(s.ctx, "XYZ999")
	s.True(errs.Is(err, errs.ErrOrderNotFound))

	_, err = s.commands.RecordDrawResult(s.ctx, commands.RecordDrawResultRequest{OrderNumber: "XYZ999", DrawResult: "PRIZE_A"})
	s.True(errs.Is(err, errs.ErrOrderNotFound))
}

func (s *EmulatorTestSuite) TestLegacyDocumentFoundByField() {
	_, _, err := s.client.Collection(s.cfg.OrdersCollection).Add(s.ctx, map[string]any{
		"orderNumber": "LEGACY-1",
		"hasPlayed":   false,
	})
	s.Require().NoError(err)

	_, err = s.queries.CheckOrderNumber(s.ctx, "LEGACY-1")
	s.Require().NoError(err)

	_, err = s.commands.RecordDrawResult(s.ctx, commands.RecordDrawResultRequest{OrderNumber: "LEGACY-1", DrawResult: "PRIZE_C"})
	s.Require().NoError(err)

	_, err = s.queries.CheckOrderNumber(s.ctx, "LEGACY-1")
	s.True(errs.Is(err, errs.ErrOrderAlreadyUsed))
}

func (s *EmulatorTestSuite) TestConcurrentRecordSucceedsOnce() {
	_, err := s.imports.ImportOrders(s.ctx, []string{"RACE-1"})
	s.Require().NoError(err)

	const callers = 4
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.commands.RecordDrawResult(s.ctx, commands.RecordDrawResultRequest{
				OrderNumber: "RACE-1",
				DrawResult:  fmt.Sprintf("PRIZE_%d", i),
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(s.T(), 1, successes)

	docs, err := s.client.Collection(s.cfg.DrawResultsCollection).Where("orderNumber", "==", "RACE-1").Documents(s.ctx).GetAll()
	require.NoError(s.T(), err)
	assert.Len(s.T(), docs, 1)
}
