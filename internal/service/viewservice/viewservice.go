package viewservice

import (
	"context"
	"fmt"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=viewservice.go -destination=mock_viewservice.go -package=viewservice

type DebtRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Debt, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Debt, error)
}

type OperationRepo interface {
	FindByDebtID(ctx context.Context, debtID string) ([]domain.Operation, error)
}

type Users interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.User, error)
}

var ErrDebtNotFound = fmt.Errorf("debt %w", domain.ErrNotFound)

type Service struct {
	debtRepo      DebtRepo
	operationRepo OperationRepo
	users         Users
}

func New(debtRepo DebtRepo, operationRepo OperationRepo, users Users) *Service {
	return &Service{
		debtRepo:      debtRepo,
		operationRepo: operationRepo,
		users:         users,
	}
}

// GetDebt returns the debt with its operations as seen by viewerID.
func (s *Service) GetDebt(ctx context.Context, viewerID, debtID string) (*domain.DebtView, error) {
	debt, err := s.debtRepo.GetByID(ctx, debtID)
	if err != nil {
		zap.L().Error("can't get debt", zap.String("debt", debtID), zap.Error(err))
		return nil, err
	}
	if debt == nil || !visibleTo(debt, viewerID) {
		return nil, ErrDebtNotFound
	}

	ops, err := s.operationRepo.FindByDebtID(ctx, debt.ID)
	if err != nil {
		zap.L().Error("can't get debt operations", zap.String("debt", debtID), zap.Error(err))
		return nil, err
	}
	debt.MoneyOperations = ops

	users, err := s.users.GetByIDs(ctx, debt.Users[:])
	if err != nil {
		return nil, err
	}

	view := present(*debt, viewerID, users)
	return &view, nil
}

// GetAllUserDebts lists the viewer's debts without operations, with the totals
// the viewer has to give and to take.
func (s *Service) GetAllUserDebts(ctx context.Context, viewerID string) (*domain.DebtsList, error) {
	debts, err := s.debtRepo.FindByUserID(ctx, viewerID)
	if err != nil {
		zap.L().Error("can't get user debts", zap.String("user", viewerID), zap.Error(err))
		return nil, err
	}

	list := &domain.DebtsList{Debts: make([]domain.DebtView, 0, len(debts))}
	if len(debts) == 0 {
		return list, nil
	}

	ids := make([]string, 0, len(debts)*2)
	seen := make(map[string]struct{}, len(debts)*2)
	for _, debt := range debts {
		for _, id := range debt.Users {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, debt := range debts {
		list.Debts = append(list.Debts, present(debt, viewerID, users))
	}
	list.Summary = domain.SummarizeDebts(viewerID, list.Debts)
	return list, nil
}

func visibleTo(debt *domain.Debt, viewerID string) bool {
	return debt.HasMember(viewerID) || (debt.Status == domain.DebtConnectUser && debt.StatusAcceptor == viewerID)
}

func present(debt domain.Debt, viewerID string, users map[string]domain.User) domain.DebtView {
	var virtualID string
	for _, id := range debt.Users {
		if users[id].IsVirtual {
			virtualID = id
		}
	}

	shown := domain.PresentDebt(debt, viewerID, virtualID)
	return domain.DebtView{
		Debt:      shown,
		Viewer:    viewerID,
		OtherUser: users[shown.OtherMember(viewerID)],
	}
}
