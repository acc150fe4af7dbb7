package operationservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/OleksaDid/simple-debts/internal/pg"
	"github.com/OleksaDid/simple-debts/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxAmount is the first value money_amount NUMERIC(14,2) cannot hold.
var maxAmount = decimal.New(1, 12)

//go:generate mockgen -source=operationservice.go -destination=mock_operationservice.go -package=operationservice

type DebtRepo interface {
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Debt, error)
	Update(ctx context.Context, debt *domain.Debt, expected domain.DebtStatus) error
}

type OperationRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Operation, error)
	FindByDebtID(ctx context.Context, debtID string) ([]domain.Operation, error)
	Create(ctx context.Context, op *domain.Operation) error
	UpdateStatus(ctx context.Context, op *domain.Operation, expected domain.OperationStatus) error
	Delete(ctx context.Context, id string) error
}

var (
	ErrOperationNotFound   = fmt.Errorf("operation %w", domain.ErrNotFound)
	ErrDebtNotFound        = fmt.Errorf("debt %w", domain.ErrNotFound)
	ErrInvalidAmount       = fmt.Errorf("%w: money amount must be a positive number", domain.ErrValidation)
	ErrAmountPrecision     = fmt.Errorf("%w: money amount must have at most two decimal places", domain.ErrValidation)
	ErrAmountTooLarge      = fmt.Errorf("%w: money amount is too large", domain.ErrValidation)
	ErrReceiverRequired    = fmt.Errorf("%w: money receiver is required", domain.ErrValidation)
	ErrDebtLocked          = fmt.Errorf("%w: debt does not accept operations in its current status", domain.ErrInvalidState)
	ErrAcceptanceRequired  = fmt.Errorf("%w: cannot modify debts that need acceptance", domain.ErrInvalidState)
	ErrOperationNotPending = fmt.Errorf("%w: operation is not waiting for acceptance", domain.ErrInvalidState)
	ErrDeleteNotAllowed    = fmt.Errorf("%w: only operations of single user debts can be deleted", domain.ErrInvalidState)
)

type Service struct {
	debtRepo      DebtRepo
	operationRepo OperationRepo
	txManager     pg.TXManager
}

func New(debtRepo DebtRepo, operationRepo OperationRepo, txManager pg.TXManager) *Service {
	return &Service{
		debtRepo:      debtRepo,
		operationRepo: operationRepo,
		txManager:     txManager,
	}
}

// CreateOperation records a money transfer. On shared debts the other member
// has to accept it before it counts.
func (s *Service) CreateOperation(ctx context.Context, actorID, debtID string, amount float64, receiverID, description string) (*domain.Debt, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	if receiverID == "" {
		return nil, ErrReceiverRequired
	}

	var debt *domain.Debt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lockDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if !d.HasMember(actorID) || !d.HasMember(receiverID) {
			return ErrDebtNotFound
		}
		switch {
		case d.Status == domain.DebtConnectUser, d.Status == domain.DebtCreationAwaiting:
			return ErrDebtLocked
		case d.StatusAcceptor == actorID:
			return ErrAcceptanceRequired
		}

		expected := d.Status
		op := &domain.Operation{
			ID:            uuid.NewString(),
			DebtID:        d.ID,
			Date:          time.Now().UTC(),
			MoneyAmount:   amount,
			MoneyReceiver: receiverID,
			Description:   strings.TrimSpace(description),
			Status:        domain.OperationUnchanged,
		}
		if d.Type == domain.MultipleUsersDebt {
			other := d.OtherMember(actorID)
			op.Status = domain.OperationCreationAwaiting
			op.StatusAcceptor = other
			d.SetStatus(domain.DebtChangeAwaiting, other)
		}
		if err := s.operationRepo.Create(ctx, op); err != nil {
			return err
		}

		if err := s.recalculateAndSave(ctx, d, expected); err != nil {
			return err
		}
		debt = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordOperationTransition("create")
	zap.L().Info("operation created", zap.String("debt", debtID), zap.String("actor", actorID))
	return debt, nil
}

// AcceptOperation settles an operation the actor was asked to confirm.
func (s *Service) AcceptOperation(ctx context.Context, actorID, operationID string) (*domain.Debt, error) {
	debt, err := s.resolve(ctx, actorID, operationID, func(op *domain.Operation) error {
		if op.StatusAcceptor != actorID {
			return ErrOperationNotFound
		}
		op.Status = domain.OperationUnchanged
		op.StatusAcceptor = ""
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordOperationTransition("accept")
	return debt, nil
}

// DeclineOperation cancels a pending operation. The acceptor rejects it, the
// creator withdraws it.
func (s *Service) DeclineOperation(ctx context.Context, actorID, operationID string) (*domain.Debt, error) {
	debt, err := s.resolve(ctx, actorID, operationID, func(op *domain.Operation) error {
		op.Status = domain.OperationCancelled
		op.StatusAcceptor = ""
		op.CancelledBy = actorID
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordOperationTransition("decline")
	return debt, nil
}

func (s *Service) resolve(ctx context.Context, actorID, operationID string, apply func(op *domain.Operation) error) (*domain.Debt, error) {
	var debt *domain.Debt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		op, d, err := s.lockOperation(ctx, actorID, operationID)
		if err != nil {
			return err
		}
		if op.Status != domain.OperationCreationAwaiting {
			return ErrOperationNotPending
		}
		if err := apply(op); err != nil {
			return err
		}
		if err := s.operationRepo.UpdateStatus(ctx, op, domain.OperationCreationAwaiting); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrOperationNotPending
			}
			return err
		}

		if err := s.recalculateAndSave(ctx, d, d.Status); err != nil {
			return err
		}
		debt = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return debt, nil
}

// DeleteOperation removes an operation from a single user debt. Shared debts
// keep their history and use DeclineOperation instead.
func (s *Service) DeleteOperation(ctx context.Context, actorID, operationID string) (*domain.Debt, error) {
	var debt *domain.Debt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		op, d, err := s.lockOperation(ctx, actorID, operationID)
		if err != nil {
			return err
		}
		if d.Type != domain.SingleUserDebt {
			return ErrDeleteNotAllowed
		}
		if err := s.operationRepo.Delete(ctx, op.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return ErrOperationNotFound
			}
			return err
		}

		if err := s.recalculateAndSave(ctx, d, d.Status); err != nil {
			return err
		}
		debt = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordOperationTransition("delete")
	return debt, nil
}

// lockOperation loads the operation and locks its debt. Operations of debts
// the actor is not a member of are reported as missing.
func (s *Service) lockOperation(ctx context.Context, actorID, operationID string) (*domain.Operation, *domain.Debt, error) {
	op, err := s.operationRepo.GetByID(ctx, operationID)
	if err != nil {
		return nil, nil, err
	}
	if op == nil {
		return nil, nil, ErrOperationNotFound
	}
	d, err := s.lockDebt(ctx, op.DebtID)
	if err != nil {
		return nil, nil, err
	}
	if !d.HasMember(actorID) {
		return nil, nil, ErrOperationNotFound
	}
	return op, d, nil
}

// checkAmount accepts positive amounts in whole cents that fit the money column.
func checkAmount(amount float64) error {
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return ErrInvalidAmount
	}
	value := decimal.NewFromFloat(amount)
	if !value.Equal(value.Round(2)) {
		return ErrAmountPrecision
	}
	if value.GreaterThanOrEqual(maxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}

func (s *Service) lockDebt(ctx context.Context, id string) (*domain.Debt, error) {
	debt, err := s.debtRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, ErrDebtNotFound
	}
	return debt, nil
}

// recalculateAndSave recomputes the balance from the stored operations and
// clears a pending change once nothing awaits acceptance.
func (s *Service) recalculateAndSave(ctx context.Context, d *domain.Debt, expected domain.DebtStatus) error {
	ops, err := s.operationRepo.FindByDebtID(ctx, d.ID)
	if err != nil {
		return err
	}
	d.Recalculate(ops)
	if d.Status == domain.DebtChangeAwaiting && expected == domain.DebtChangeAwaiting && !d.HasAwaitingOperations() {
		d.SetStatus(domain.DebtUnchanged, "")
	}

	if err := s.debtRepo.Update(ctx, d, expected); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrDebtNotFound
		}
		return err
	}
	return nil
}
