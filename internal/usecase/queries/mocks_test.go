//go:build unit

package queries_test

import (
	"context"
	"time"

	"mask-ledger/internal/domain/ledger"
	"mask-ledger/internal/domain/pharmacy"
	"mask-ledger/internal/usecase/queries"

	"github.com/stretchr/testify/mock"
)

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*queries.UserView), args.Error(1)
}

func (m *MockUserReadStore) TopByTransactionAmount(ctx context.Context, start, end time.Time, limit int32) ([]*queries.TopUserView, error) {
	args := m.Called(ctx, start, end, limit)
	return args.Get(0).([]*queries.TopUserView), args.Error(1)
}

type MockPharmacyReadStore struct {
	mock.Mock
}

func (m *MockPharmacyReadStore) List(ctx context.Context) ([]*queries.PharmacyView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*queries.PharmacyView), args.Error(1)
}

func (m *MockPharmacyReadStore) FindByID(ctx context.Context, id int64) (*queries.PharmacyView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.PharmacyView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPharmacyReadStore) ListOpenAt(ctx context.Context, day pharmacy.Day, at pharmacy.ClockTime) ([]*queries.PharmacyView, error) {
	args := m.Called(ctx, day, at)
	return args.Get(0).([]*queries.PharmacyView), args.Error(1)
}

func (m *MockPharmacyReadStore) CountMasksInPriceRange(ctx context.Context, minPrice ledger.Money, maxPrice *ledger.Money) ([]*queries.PharmacyMaskCountView, error) {
	args := m.Called(ctx, minPrice, maxPrice)
	return args.Get(0).([]*queries.PharmacyMaskCountView), args.Error(1)
}

func (m *MockPharmacyReadStore) SearchByName(ctx context.Context, pattern string) ([]*queries.PharmacyView, error) {
	args := m.Called(ctx, pattern)
	return args.Get(0).([]*queries.PharmacyView), args.Error(1)
}

type MockMaskReadStore struct {
	mock.Mock
}

func (m *MockMaskReadStore) List(ctx context.Context) ([]*queries.MaskView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*queries.MaskView), args.Error(1)
}

func (m *MockMaskReadStore) ListByPharmacy(ctx context.Context, pharmacyID int64) ([]*queries.MaskView, error) {
	args := m.Called(ctx, pharmacyID)
	return args.Get(0).([]*queries.MaskView), args.Error(1)
}

func (m *MockMaskReadStore) SearchByName(ctx context.Context, pattern string) ([]*queries.MaskView, error) {
	args := m.Called(ctx, pattern)
	return args.Get(0).([]*queries.MaskView), args.Error(1)
}

type MockTransactionReadStore struct {
	mock.Mock
}

func (m *MockTransactionReadStore) List(ctx context.Context) ([]*queries.TransactionView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*queries.TransactionView), args.Error(1)
}

func (m *MockTransactionReadStore) Summarize(ctx context.Context, start, end time.Time) (*queries.TransactionSummary, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(*queries.TransactionSummary), args.Error(1)
}
