package journal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"trade-journal-go/internal/models"
)

// memStore is an in-memory Store for behavior tests.
type memStore struct {
	trades []models.Trade
}

func (m *memStore) Load() ([]models.Trade, error) {
	return append([]models.Trade(nil), m.trades...), nil
}

func (m *memStore) Replace(trades []models.Trade) error {
	m.trades = append([]models.Trade(nil), trades...)
	return nil
}

// MockStore is a mock implementation of the Store interface for
// failure-path tests.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load() ([]models.Trade, error) {
	args := m.Called()
	return args.Get(0).([]models.Trade), args.Error(1)
}

func (m *MockStore) Replace(trades []models.Trade) error {
	return m.Called(trades).Error(0)
}

func newTestService() (*Service, *memStore) {
	store := &memStore{}
	return NewService(zap.NewNop(), store), store
}

func TestServiceAdd(t *testing.T) {
	svc, store := newTestService()

	added, err := svc.Add(models.Trade{
		Date:       "2023/01/05",
		Symbol:     "  aapl ",
		Strategy:   models.LongStock,
		EntryPrice: dec("150.00"),
		ExitPrice:  dec("160.00"),
		Quantity:   10,
	})
	assert.NoError(t, err)
	assert.Equal(t, "AAPL", added.Symbol)
	assert.Equal(t, "2023-01-05", added.Date)
	assert.Equal(t, models.StatusClosed, added.Status)
	assert.True(t, added.PnL.Equal(dec("100")))

	assert.Len(t, store.trades, 1)
	assert.Equal(t, "AAPL", store.trades[0].Symbol)
}

func TestServiceAdd_ValidationFailureIsNotPersisted(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Add(models.Trade{
		Date:       "2023-01-05",
		Symbol:     "AAPL",
		Strategy:   models.ShortStock,
		EntryPrice: dec("100"),
		Quantity:   10, // direction mismatch
	})
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, CodeDirectionMismatch, verr.Code)
	assert.Empty(t, store.trades)
}

func TestServiceAdd_StorageErrorSurfacesUnchanged(t *testing.T) {
	store := new(MockStore)
	store.On("Load").Return([]models.Trade(nil), &StorageError{Op: "load", Err: errors.New("disk gone")})

	svc := NewService(zap.NewNop(), store)
	_, err := svc.Add(models.Trade{
		Date:       "2023-01-05",
		Symbol:     "AAPL",
		Strategy:   models.LongStock,
		EntryPrice: dec("150"),
		Quantity:   10,
	})

	var serr *StorageError
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, "load", serr.Op)
	store.AssertNotCalled(t, "Replace", mock.Anything)
}

func TestServiceUpdateClosesTrade(t *testing.T) {
	svc, _ := newTestService()

	added, err := svc.Add(models.Trade{
		Date:       "2023-01-05",
		Symbol:     "ETHA",
		Strategy:   models.CashSecuredPut,
		EntryPrice: dec("1.06"),
		Quantity:   -2,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusOpen, added.Status)
	assert.True(t, added.PnL.IsZero())

	edited := added
	edited.ExitPrice = dec("0.15")
	updated, err := svc.Update(added.DedupKey(), edited)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusClosed, updated.Status)
	assert.True(t, updated.PnL.Equal(dec("182")), updated.PnL.String())

	trades, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, trades, 1)
	assert.Equal(t, models.StatusClosed, trades[0].Status)
}

func TestServiceUpdate_UnknownKey(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Update("2023-01-05|AAPL|1", models.Trade{
		Date:       "2023-01-05",
		Symbol:     "AAPL",
		Strategy:   models.LongStock,
		EntryPrice: dec("1"),
		Quantity:   1,
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestServiceClose(t *testing.T) {
	svc, _ := newTestService()

	added, err := svc.Add(models.Trade{
		Date:       "2023-01-05",
		Symbol:     "AAPL",
		Strategy:   models.LongStock,
		EntryPrice: dec("150.00"),
		Quantity:   10,
	})
	assert.NoError(t, err)

	closed, err := svc.Close(added.DedupKey(), dec("160.00"))
	assert.NoError(t, err)
	assert.Equal(t, models.StatusClosed, closed.Status)
	assert.True(t, closed.PnL.Equal(dec("100")))

	_, err = svc.Close("2099-01-01|NOPE|1", dec("1"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestServiceRemoveDuplicates(t *testing.T) {
	svc, store := newTestService()

	base := models.Trade{
		Date:       "2023-01-01",
		Symbol:     "AAPL",
		Strategy:   models.LongStock,
		EntryPrice: dec("150.0"),
		Quantity:   10,
	}
	dupe := base
	dupe.Notes = "same identity, different notes"
	other := base
	other.Symbol = "MSFT"
	store.trades = []models.Trade{base, dupe, other}

	removed, err := svc.RemoveDuplicates()
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Len(t, store.trades, 2)
	assert.Equal(t, "AAPL", store.trades[0].Symbol)
	assert.Equal(t, "MSFT", store.trades[1].Symbol)

	// Second pass is a no-op.
	removed, err = svc.RemoveDuplicates()
	assert.NoError(t, err)
	assert.Equal(t, 0, removed)
}
