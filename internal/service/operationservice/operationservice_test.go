package operationservice

import (
	"context"
	"errors"
	"testing"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/OleksaDid/simple-debts/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type serviceMocks struct {
	debtRepo      *MockDebtRepo
	operationRepo *MockOperationRepo
	txManager     *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		debtRepo:      NewMockDebtRepo(ctrl),
		operationRepo: NewMockOperationRepo(ctrl),
		txManager:     pg.NewMockTXManager(ctrl),
	}
	return New(m.debtRepo, m.operationRepo, m.txManager), m
}

func (m *serviceMocks) inTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func sharedDebt(status domain.DebtStatus, acceptor string) *domain.Debt {
	return &domain.Debt{
		ID:             "d-1",
		Users:          [2]string{"alice", "bob"},
		Type:           domain.MultipleUsersDebt,
		Currency:       "USD",
		Status:         status,
		StatusAcceptor: acceptor,
	}
}

func virtualDebt(status domain.DebtStatus, acceptor string) *domain.Debt {
	return &domain.Debt{
		ID:             "d-1",
		Users:          [2]string{"alice", "virtual"},
		Type:           domain.SingleUserDebt,
		Currency:       "USD",
		Status:         status,
		StatusAcceptor: acceptor,
	}
}

func TestCreateOperation_Shared(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	settled := domain.Operation{ID: "op-0", MoneyAmount: 10, MoneyReceiver: "bob", Status: domain.OperationUnchanged}

	var created *domain.Operation
	m.inTx()
	gomock.InOrder(
		m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtUnchanged, ""), nil),
		m.operationRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, op *domain.Operation) error {
			created = op
			return nil
		}),
		m.operationRepo.EXPECT().FindByDebtID(ctx, "d-1").DoAndReturn(func(context.Context, string) ([]domain.Operation, error) {
			return []domain.Operation{settled, *created}, nil
		}),
		m.debtRepo.EXPECT().Update(ctx, gomock.Any(), domain.DebtUnchanged).Return(nil),
	)

	debt, err := service.CreateOperation(ctx, "alice", "d-1", 100, "alice", " dinner ")
	require.NoError(t, err)

	assert.Equal(t, domain.OperationCreationAwaiting, created.Status)
	assert.Equal(t, "bob", created.StatusAcceptor)
	assert.Equal(t, "dinner", created.Description)
	assert.Equal(t, domain.DebtChangeAwaiting, debt.Status)
	assert.Equal(t, "bob", debt.StatusAcceptor)
	// The awaiting operation does not count yet.
	assert.Equal(t, 10.0, debt.Summary)
	assert.Equal(t, "bob", debt.MoneyReceiver)
	assert.Len(t, debt.MoneyOperations, 2)
}

func TestCreateOperation_Single(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	var created *domain.Operation
	m.inTx()
	m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(virtualDebt(domain.DebtUnchanged, ""), nil)
	m.operationRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, op *domain.Operation) error {
		created = op
		return nil
	})
	m.operationRepo.EXPECT().FindByDebtID(ctx, "d-1").DoAndReturn(func(context.Context, string) ([]domain.Operation, error) {
		return []domain.Operation{*created}, nil
	})
	m.debtRepo.EXPECT().Update(ctx, gomock.Any(), domain.DebtUnchanged).Return(nil)

	debt, err := service.CreateOperation(ctx, "alice", "d-1", 42.5, "virtual", "")
	require.NoError(t, err)

	assert.Equal(t, domain.OperationUnchanged, created.Status)
	assert.Empty(t, created.StatusAcceptor)
	assert.Equal(t, domain.DebtUnchanged, debt.Status)
	assert.Equal(t, 42.5, debt.Summary)
	assert.Equal(t, "virtual", debt.MoneyReceiver)
}

func TestCreateOperation_Rejected(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		actorID       string
		amount        float64
		receiverID    string
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Zero amount",
			actorID:       "alice",
			amount:        0,
			receiverID:    "alice",
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount",
			actorID:       "alice",
			amount:        -5,
			receiverID:    "alice",
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Sub-cent amount",
			actorID:       "alice",
			amount:        0.004,
			receiverID:    "alice",
			prepareMock:   func() {},
			expectedError: ErrAmountPrecision,
		},
		{
			name:          "Fraction of a cent on a whole amount",
			actorID:       "alice",
			amount:        10.005,
			receiverID:    "alice",
			prepareMock:   func() {},
			expectedError: ErrAmountPrecision,
		},
		{
			name:          "Amount out of range",
			actorID:       "alice",
			amount:        1e13,
			receiverID:    "alice",
			prepareMock:   func() {},
			expectedError: ErrAmountTooLarge,
		},
		{
			name:          "Missing receiver",
			actorID:       "alice",
			amount:        5,
			prepareMock:   func() {},
			expectedError: ErrReceiverRequired,
		},
		{
			name:       "Debt does not exist",
			actorID:    "alice",
			amount:     5,
			receiverID: "alice",
			prepareMock: func() {
				m.inTx()
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(nil, nil)
			},
			expectedError: ErrDebtNotFound,
		},
		{
			name:       "Actor is not a member",
			actorID:    "carol",
			amount:     5,
			receiverID: "alice",
			prepareMock: func() {
				m.inTx()
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtUnchanged, ""), nil)
			},
			expectedError: ErrDebtNotFound,
		},
		{
			name:       "Receiver is not a member",
			actorID:    "alice",
			amount:     5,
			receiverID: "carol",
			prepareMock: func() {
				m.inTx()
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtUnchanged, ""), nil)
			},
			expectedError: ErrDebtNotFound,
		},
		{
			name:       "Debt waits for a user connection",
			actorID:    "alice",
			amount:     5,
			receiverID: "alice",
			prepareMock: func() {
				m.inTx()
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(virtualDebt(domain.DebtConnectUser, "carol"), nil)
			},
			expectedError: ErrDebtLocked,
		},
		{
			name:       "Debt not accepted yet",
			actorID:    "alice",
			amount:     5,
			receiverID: "alice",
			prepareMock: func() {
				m.inTx()
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtCreationAwaiting, "bob"), nil)
			},
			expectedError: ErrDebtLocked,
		},
		{
			name:       "Actor has changes to accept first",
			actorID:    "bob",
			amount:     5,
			receiverID: "alice",
			prepareMock: func() {
				m.inTx()
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtChangeAwaiting, "bob"), nil)
			},
			expectedError: ErrAcceptanceRequired,
		},
		{
			name:       "Actor has to accept a user deletion first",
			actorID:    "alice",
			amount:     5,
			receiverID: "alice",
			prepareMock: func() {
				m.inTx()
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(virtualDebt(domain.DebtUserDeleted, "alice"), nil)
			},
			expectedError: ErrAcceptanceRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			debt, err := service.CreateOperation(ctx, tt.actorID, "d-1", tt.amount, tt.receiverID, "")
			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, debt)
		})
	}
}

func TestCreateOperation_PendingChangeByOtherMember(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	pending := domain.Operation{ID: "op-1", MoneyAmount: 20, MoneyReceiver: "alice", Status: domain.OperationCreationAwaiting, StatusAcceptor: "bob"}

	m.inTx()
	m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtChangeAwaiting, "bob"), nil)
	m.operationRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	m.operationRepo.EXPECT().FindByDebtID(ctx, "d-1").Return([]domain.Operation{pending, pending}, nil)
	m.debtRepo.EXPECT().Update(ctx, gomock.Any(), domain.DebtChangeAwaiting).Return(nil)

	debt, err := service.CreateOperation(ctx, "alice", "d-1", 5, "bob", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DebtChangeAwaiting, debt.Status)
	assert.Equal(t, "bob", debt.StatusAcceptor)
}

func TestAcceptOperation(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	awaiting := func() *domain.Operation {
		return &domain.Operation{
			ID:             "op-1",
			DebtID:         "d-1",
			MoneyAmount:    30,
			MoneyReceiver:  "alice",
			Status:         domain.OperationCreationAwaiting,
			StatusAcceptor: "bob",
		}
	}

	tests := []struct {
		name             string
		actorID          string
		prepareMock      func()
		expectedStatus   domain.DebtStatus
		expectedSummary  float64
		expectedReceiver string
		expectedError    error
	}{
		{
			name:    "Last awaiting operation accepted",
			actorID: "bob",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(awaiting(), nil)
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtChangeAwaiting, "bob"), nil)
				m.operationRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.OperationCreationAwaiting).
					DoAndReturn(func(_ context.Context, op *domain.Operation, _ domain.OperationStatus) error {
						assert.Equal(t, domain.OperationUnchanged, op.Status)
						assert.Empty(t, op.StatusAcceptor)
						return nil
					})
				m.operationRepo.EXPECT().FindByDebtID(ctx, "d-1").Return([]domain.Operation{
					{ID: "op-1", MoneyAmount: 30, MoneyReceiver: "alice", Status: domain.OperationUnchanged},
				}, nil)
				m.debtRepo.EXPECT().Update(ctx, gomock.Any(), domain.DebtChangeAwaiting).Return(nil)
			},
			expectedStatus:   domain.DebtUnchanged,
			expectedSummary:  30,
			expectedReceiver: "alice",
		},
		{
			name:    "Other operations still awaiting",
			actorID: "bob",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(awaiting(), nil)
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtChangeAwaiting, "bob"), nil)
				m.operationRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.OperationCreationAwaiting).Return(nil)
				m.operationRepo.EXPECT().FindByDebtID(ctx, "d-1").Return([]domain.Operation{
					{ID: "op-1", MoneyAmount: 30, MoneyReceiver: "alice", Status: domain.OperationUnchanged},
					{ID: "op-2", MoneyAmount: 50, MoneyReceiver: "bob", Status: domain.OperationCreationAwaiting, StatusAcceptor: "bob"},
				}, nil)
				m.debtRepo.EXPECT().Update(ctx, gomock.Any(), domain.DebtChangeAwaiting).Return(nil)
			},
			expectedStatus:   domain.DebtChangeAwaiting,
			expectedSummary:  30,
			expectedReceiver: "alice",
		},
		{
			name:    "Creator cannot accept",
			actorID: "alice",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(awaiting(), nil)
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtChangeAwaiting, "bob"), nil)
			},
			expectedError: ErrOperationNotFound,
		},
		{
			name:    "Stranger",
			actorID: "carol",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(awaiting(), nil)
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtChangeAwaiting, "bob"), nil)
			},
			expectedError: ErrOperationNotFound,
		},
		{
			name:    "Operation does not exist",
			actorID: "bob",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(nil, nil)
			},
			expectedError: ErrOperationNotFound,
		},
		{
			name:    "Already cancelled",
			actorID: "bob",
			prepareMock: func() {
				op := awaiting()
				op.Status = domain.OperationCancelled
				op.StatusAcceptor = ""
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(op, nil)
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtUnchanged, ""), nil)
			},
			expectedError: ErrOperationNotPending,
		},
		{
			name:    "Declined concurrently",
			actorID: "bob",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(awaiting(), nil)
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtChangeAwaiting, "bob"), nil)
				m.operationRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.OperationCreationAwaiting).Return(domain.ErrNotFound)
			},
			expectedError: ErrOperationNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			debt, err := service.AcceptOperation(ctx, tt.actorID, "op-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, debt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, debt.Status)
			assert.Equal(t, tt.expectedSummary, debt.Summary)
			assert.Equal(t, tt.expectedReceiver, debt.MoneyReceiver)
		})
	}
}

// A user deletion still has to be acknowledged after the last pending
// operation is settled.
func TestAcceptOperation_UserDeletedDebtKeepsStatus(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	op := &domain.Operation{
		ID:             "op-1",
		DebtID:         "d-1",
		MoneyAmount:    15,
		MoneyReceiver:  "virtual",
		Status:         domain.OperationCreationAwaiting,
		StatusAcceptor: "alice",
	}

	m.inTx()
	m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(op, nil)
	m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(virtualDebt(domain.DebtUserDeleted, "alice"), nil)
	m.operationRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.OperationCreationAwaiting).Return(nil)
	m.operationRepo.EXPECT().FindByDebtID(ctx, "d-1").Return([]domain.Operation{
		{ID: "op-1", MoneyAmount: 15, MoneyReceiver: "virtual", Status: domain.OperationUnchanged},
	}, nil)
	m.debtRepo.EXPECT().Update(ctx, gomock.Any(), domain.DebtUserDeleted).Return(nil)

	debt, err := service.AcceptOperation(ctx, "alice", "op-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DebtUserDeleted, debt.Status)
	assert.Equal(t, "alice", debt.StatusAcceptor)
	assert.Equal(t, 15.0, debt.Summary)
	assert.Equal(t, "virtual", debt.MoneyReceiver)
}

func TestDeclineOperation(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	awaiting := func() *domain.Operation {
		return &domain.Operation{
			ID:             "op-1",
			DebtID:         "d-1",
			MoneyAmount:    30,
			MoneyReceiver:  "alice",
			Status:         domain.OperationCreationAwaiting,
			StatusAcceptor: "bob",
		}
	}

	for _, actor := range []string{"bob", "alice"} {
		t.Run("Declined by "+actor, func(t *testing.T) {
			m.inTx()
			m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(awaiting(), nil)
			m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtChangeAwaiting, "bob"), nil)
			m.operationRepo.EXPECT().UpdateStatus(ctx, gomock.Any(), domain.OperationCreationAwaiting).
				DoAndReturn(func(_ context.Context, op *domain.Operation, _ domain.OperationStatus) error {
					assert.Equal(t, domain.OperationCancelled, op.Status)
					assert.Equal(t, actor, op.CancelledBy)
					assert.Empty(t, op.StatusAcceptor)
					return nil
				})
			m.operationRepo.EXPECT().FindByDebtID(ctx, "d-1").Return([]domain.Operation{
				{ID: "op-1", MoneyAmount: 30, MoneyReceiver: "alice", Status: domain.OperationCancelled, CancelledBy: actor},
			}, nil)
			m.debtRepo.EXPECT().Update(ctx, gomock.Any(), domain.DebtChangeAwaiting).Return(nil)

			debt, err := service.DeclineOperation(ctx, actor, "op-1")
			require.NoError(t, err)
			assert.Equal(t, domain.DebtUnchanged, debt.Status)
			assert.Zero(t, debt.Summary)
			assert.Empty(t, debt.MoneyReceiver)
		})
	}

	t.Run("Stranger", func(t *testing.T) {
		m.inTx()
		m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(awaiting(), nil)
		m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtChangeAwaiting, "bob"), nil)

		_, err := service.DeclineOperation(ctx, "carol", "op-1")
		assert.ErrorIs(t, err, ErrOperationNotFound)
	})
}

func TestDeleteOperation(t *testing.T) {
	service, m := NewMock(t)
	ctx := context.Background()
	op := &domain.Operation{ID: "op-1", DebtID: "d-1", MoneyAmount: 30, MoneyReceiver: "alice", Status: domain.OperationUnchanged}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Deleted from single user debt",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(op, nil)
				d := virtualDebt(domain.DebtUnchanged, "")
				d.Summary = 30
				d.MoneyReceiver = "alice"
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(d, nil)
				m.operationRepo.EXPECT().Delete(ctx, "op-1").Return(nil)
				m.operationRepo.EXPECT().FindByDebtID(ctx, "d-1").Return(nil, nil)
				m.debtRepo.EXPECT().Update(ctx, gomock.Any(), domain.DebtUnchanged).
					DoAndReturn(func(_ context.Context, d *domain.Debt, _ domain.DebtStatus) error {
						assert.Zero(t, d.Summary)
						assert.Empty(t, d.MoneyReceiver)
						return nil
					})
			},
		},
		{
			name: "Shared debts keep their history",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(op, nil)
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(sharedDebt(domain.DebtUnchanged, ""), nil)
			},
			expectedError: ErrDeleteNotAllowed,
		},
		{
			name: "Deleted concurrently",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(op, nil)
				m.debtRepo.EXPECT().GetByIDForUpdate(ctx, "d-1").Return(virtualDebt(domain.DebtUnchanged, ""), nil)
				m.operationRepo.EXPECT().Delete(ctx, "op-1").Return(domain.ErrNotFound)
			},
			expectedError: ErrOperationNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				m.inTx()
				m.operationRepo.EXPECT().GetByID(ctx, "op-1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			debt, err := service.DeleteOperation(ctx, "alice", "op-1")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, debt)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, debt)
		})
	}
}
