package mocks

import (
	"context"

	"github.com/IfedayoAwe/webhook-callback-service/models"
	"github.com/stretchr/testify/mock"
)

type MockNotifierService struct {
	mock.Mock
}

func (m *MockNotifierService) Notify(ctx context.Context, outcome models.CallbackOutcome, id models.TransactionID) bool {
	args := m.Called(ctx, outcome, id)
	return args.Bool(0)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Contains(id models.TransactionID) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockLedgerService) Record(id models.TransactionID) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockLedgerService) Size() int {
	args := m.Called()
	return args.Int(0)
}
