package debtservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/OleksaDid/simple-debts/internal/pg"
	"github.com/OleksaDid/simple-debts/pkg/metrics"
	"github.com/OleksaDid/simple-debts/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=debtservice.go -destination=mock_debtservice.go -package=debtservice

type DebtRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Debt, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Debt, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Debt, error)
	ExistsBetween(ctx context.Context, firstUserID, secondUserID string) (bool, error)
	ExistsSingleWithVirtualName(ctx context.Context, ownerID, name string) (bool, error)
	Create(ctx context.Context, debt *domain.Debt) error
	Update(ctx context.Context, debt *domain.Debt, expected domain.DebtStatus) error
	Delete(ctx context.Context, id string, expected domain.DebtStatus) error
}

type OperationRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Operation, error)
	FindByDebtID(ctx context.Context, debtID string) ([]domain.Operation, error)
	Create(ctx context.Context, op *domain.Operation) error
	UpdateStatus(ctx context.Context, op *domain.Operation, expected domain.OperationStatus) error
	Delete(ctx context.Context, id string) error
	SettleAwaitingFor(ctx context.Context, debtID, acceptorID string) (int64, error)
	ReplaceReceiver(ctx context.Context, debtID, oldUserID, newUserID string) (int64, error)
}

type Users interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.User, error)
	Lock(ctx context.Context, id string) error
	CreateVirtual(ctx context.Context, name, pictureURL string) (*domain.User, error)
	DeleteVirtual(ctx context.Context, user *domain.User) error
	ReleasePicture(ctx context.Context, pictureURL string)
}

// botSuffix marks the virtual copy of a user who left a shared debt.
const botSuffix = " BOT"

var (
	ErrDebtNotFound         = fmt.Errorf("debt %w", domain.ErrNotFound)
	ErrCounterpartNotFound  = fmt.Errorf("user %w", domain.ErrNotFound)
	ErrDebtAlreadyExists    = fmt.Errorf("%w: debt with this user already exists", domain.ErrConflict)
	ErrVirtualUserNameTaken = fmt.Errorf("%w: you already have a virtual user with this name", domain.ErrConflict)
	ErrConnectionPending    = fmt.Errorf("%w: debt is waiting for a user connection", domain.ErrInvalidState)
	ErrUserDeletedPending   = fmt.Errorf("%w: user deletion must be accepted first", domain.ErrInvalidState)
	ErrChangesPending       = fmt.Errorf("%w: debt has changes waiting for acceptance", domain.ErrInvalidState)
	ErrNotSingleDebt        = fmt.Errorf("%w: only single user debts can be connected", domain.ErrInvalidState)
	ErrInvalidCurrency      = fmt.Errorf("%w: currency must be an ISO 4217 code", domain.ErrValidation)
	ErrSelfDebt             = fmt.Errorf("%w: debt with yourself is not allowed", domain.ErrValidation)
	ErrEmptyName            = fmt.Errorf("%w: virtual user name is required", domain.ErrValidation)
)

type Service struct {
	debtRepo      DebtRepo
	operationRepo OperationRepo
	users         Users
	txManager     pg.TXManager
}

func New(debtRepo DebtRepo, operationRepo OperationRepo, users Users, txManager pg.TXManager) *Service {
	return &Service{
		debtRepo:      debtRepo,
		operationRepo: operationRepo,
		users:         users,
		txManager:     txManager,
	}
}

// CreateMultipleDebt proposes a shared debt to a real user, who has to accept it.
func (s *Service) CreateMultipleDebt(ctx context.Context, creatorID, counterpartID, currency string) (*domain.Debt, error) {
	currency = strings.ToUpper(currency)
	if !validate.IsCurrency(currency) {
		return nil, ErrInvalidCurrency
	}
	if creatorID == counterpartID {
		return nil, ErrSelfDebt
	}

	counterpart, err := s.users.GetByID(ctx, counterpartID)
	if err != nil {
		return nil, err
	}
	if counterpart.IsVirtual {
		return nil, ErrCounterpartNotFound
	}

	exists, err := s.debtRepo.ExistsBetween(ctx, creatorID, counterpartID)
	if err != nil {
		zap.L().Error("can't check existing debt", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrDebtAlreadyExists
	}

	debt := &domain.Debt{
		ID:             uuid.NewString(),
		Users:          [2]string{creatorID, counterpartID},
		Type:           domain.MultipleUsersDebt,
		Currency:       currency,
		Status:         domain.DebtCreationAwaiting,
		StatusAcceptor: counterpartID,
		CreatedAt:      time.Now(),
	}
	if err := s.debtRepo.Create(ctx, debt); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, ErrDebtAlreadyExists
		}
		zap.L().Error("can't create debt", zap.Error(err))
		return nil, err
	}

	metrics.RecordDebtTransition("create_multiple")
	zap.L().Info("multiple users debt created", zap.String("debt", debt.ID), zap.String("creator", creatorID))
	return debt, nil
}

// CreateSingleDebt creates a virtual counterpart and the debt with it in one transaction.
func (s *Service) CreateSingleDebt(ctx context.Context, creatorID, virtualName, currency string) (*domain.Debt, error) {
	name := strings.TrimSpace(virtualName)
	if name == "" {
		return nil, ErrEmptyName
	}
	currency = strings.ToUpper(currency)
	if !validate.IsCurrency(currency) {
		return nil, ErrInvalidCurrency
	}

	var debt *domain.Debt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		// Concurrent creations for the same owner queue here, so the name
		// check below sees the ones committed before it.
		if err := s.users.Lock(ctx, creatorID); err != nil {
			return err
		}
		taken, err := s.debtRepo.ExistsSingleWithVirtualName(ctx, creatorID, name)
		if err != nil {
			return err
		}
		if taken {
			return ErrVirtualUserNameTaken
		}

		virtual, err := s.users.CreateVirtual(ctx, name, "")
		if err != nil {
			return err
		}

		debt = &domain.Debt{
			ID:        uuid.NewString(),
			Users:     [2]string{creatorID, virtual.ID},
			Type:      domain.SingleUserDebt,
			Currency:  currency,
			Status:    domain.DebtUnchanged,
			CreatedAt: time.Now(),
		}
		return s.debtRepo.Create(ctx, debt)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordDebtTransition("create_single")
	zap.L().Info("single user debt created", zap.String("debt", debt.ID), zap.String("creator", creatorID))
	return debt, nil
}

func (s *Service) AcceptDebtsCreation(ctx context.Context, actorID, debtID string) (*domain.Debt, error) {
	var debt *domain.Debt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lockDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if d.Status != domain.DebtCreationAwaiting || d.StatusAcceptor != actorID {
			return ErrDebtNotFound
		}

		d.SetStatus(domain.DebtUnchanged, "")
		if err := s.save(ctx, d, domain.DebtCreationAwaiting); err != nil {
			return err
		}
		debt = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordDebtTransition("accept_creation")
	return debt, nil
}

// DeclineDebtsCreation lets either member drop a debt that was never accepted.
func (s *Service) DeclineDebtsCreation(ctx context.Context, actorID, debtID string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lockDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if d.Status != domain.DebtCreationAwaiting || !d.HasMember(actorID) {
			return ErrDebtNotFound
		}
		return s.deleteDebt(ctx, d)
	})
	if err != nil {
		return err
	}

	metrics.RecordDebtTransition("decline_creation")
	return nil
}

// DeleteDebt removes a single user debt together with its virtual member.
// Leaving a shared debt keeps it for the other member: the actor is replaced
// by a virtual copy and the debt becomes a single user one.
func (s *Service) DeleteDebt(ctx context.Context, actorID, debtID string) error {
	var (
		releasedPicture string
		transition      string
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		releasedPicture = ""

		d, err := s.lockDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if !d.HasMember(actorID) {
			return ErrDebtNotFound
		}

		switch {
		case d.Status == domain.DebtCreationAwaiting:
			transition = "decline_creation"
			return s.deleteDebt(ctx, d)
		case d.Type == domain.SingleUserDebt:
			transition = "delete_single"
			releasedPicture, err = s.deleteSingleDebt(ctx, d)
			return err
		default:
			transition = "leave_multiple"
			return s.leaveMultipleDebt(ctx, d, actorID)
		}
	})
	if err != nil {
		return err
	}

	s.users.ReleasePicture(ctx, releasedPicture)
	metrics.RecordDebtTransition(transition)
	zap.L().Info("debt deleted", zap.String("debt", debtID), zap.String("actor", actorID), zap.String("mode", transition))
	return nil
}

func (s *Service) deleteSingleDebt(ctx context.Context, d *domain.Debt) (string, error) {
	members, err := s.users.GetByIDs(ctx, d.Users[:])
	if err != nil {
		return "", err
	}
	if err := s.deleteDebt(ctx, d); err != nil {
		return "", err
	}

	virtual := virtualMember(d, members)
	if virtual == nil {
		zap.L().Warn("single user debt without virtual member", zap.String("debt", d.ID))
		return "", nil
	}
	if err := s.users.DeleteVirtual(ctx, virtual); err != nil {
		return "", err
	}
	return virtual.PictureURL, nil
}

func (s *Service) leaveMultipleDebt(ctx context.Context, d *domain.Debt, actorID string) error {
	departing, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	bot, err := s.users.CreateVirtual(ctx, departing.Name+botSuffix, departing.PictureURL)
	if err != nil {
		return err
	}

	// Operations the departing user still had to accept would wait forever.
	if _, err := s.operationRepo.SettleAwaitingFor(ctx, d.ID, actorID); err != nil {
		return err
	}
	if _, err := s.operationRepo.ReplaceReceiver(ctx, d.ID, actorID, bot.ID); err != nil {
		return err
	}

	expected := d.Status
	remaining := d.OtherMember(actorID)
	d.ReplaceMember(actorID, bot.ID)
	d.Type = domain.SingleUserDebt
	d.SetStatus(domain.DebtUserDeleted, remaining)

	return s.recalculateAndSave(ctx, d, expected)
}

// AcceptUserDeletedStatus acknowledges that the other member left the debt.
func (s *Service) AcceptUserDeletedStatus(ctx context.Context, actorID, debtID string) (*domain.Debt, error) {
	var debt *domain.Debt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lockDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if d.Status != domain.DebtUserDeleted || d.StatusAcceptor != actorID {
			return ErrDebtNotFound
		}

		ops, err := s.operationRepo.FindByDebtID(ctx, d.ID)
		if err != nil {
			return err
		}
		d.Recalculate(ops)
		if d.HasAwaitingOperations() {
			d.SetStatus(domain.DebtChangeAwaiting, actorID)
		} else {
			d.SetStatus(domain.DebtUnchanged, "")
		}

		if err := s.save(ctx, d, domain.DebtUserDeleted); err != nil {
			return err
		}
		debt = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordDebtTransition("accept_user_deleted")
	return debt, nil
}

// ConnectUserToSingleDebt invites a real user to take the place of the virtual member.
func (s *Service) ConnectUserToSingleDebt(ctx context.Context, actorID, newUserID, debtID string) (*domain.Debt, error) {
	if actorID == newUserID {
		return nil, ErrSelfDebt
	}
	newUser, err := s.users.GetByID(ctx, newUserID)
	if err != nil {
		return nil, err
	}
	if newUser.IsVirtual {
		return nil, ErrCounterpartNotFound
	}

	var debt *domain.Debt
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lockDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if !d.HasMember(actorID) {
			return ErrDebtNotFound
		}
		if d.Type != domain.SingleUserDebt {
			return ErrNotSingleDebt
		}
		switch d.Status {
		case domain.DebtConnectUser:
			return ErrConnectionPending
		case domain.DebtUserDeleted:
			return ErrUserDeletedPending
		case domain.DebtChangeAwaiting:
			return ErrChangesPending
		}

		exists, err := s.debtRepo.ExistsBetween(ctx, actorID, newUserID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDebtAlreadyExists
		}

		expected := d.Status
		d.SetStatus(domain.DebtConnectUser, newUserID)
		if err := s.save(ctx, d, expected); err != nil {
			return err
		}
		debt = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordDebtTransition("connect_user")
	return debt, nil
}

// AcceptUserConnectionToSingleDebt puts the invited user in place of the
// virtual member and turns the debt into a shared one.
func (s *Service) AcceptUserConnectionToSingleDebt(ctx context.Context, actorID, debtID string) (*domain.Debt, error) {
	var (
		debt            *domain.Debt
		releasedPicture string
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lockDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if d.Status != domain.DebtConnectUser || d.StatusAcceptor != actorID {
			return ErrDebtNotFound
		}

		members, err := s.users.GetByIDs(ctx, d.Users[:])
		if err != nil {
			return err
		}
		virtual := virtualMember(d, members)
		if virtual == nil {
			zap.L().Error("connect request on debt without virtual member", zap.String("debt", d.ID))
			return ErrDebtNotFound
		}

		exists, err := s.debtRepo.ExistsBetween(ctx, d.OtherMember(virtual.ID), actorID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDebtAlreadyExists
		}

		if _, err := s.operationRepo.ReplaceReceiver(ctx, d.ID, virtual.ID, actorID); err != nil {
			return err
		}
		d.ReplaceMember(virtual.ID, actorID)
		d.Type = domain.MultipleUsersDebt
		d.SetStatus(domain.DebtUnchanged, "")
		if err := s.recalculateAndSave(ctx, d, domain.DebtConnectUser); err != nil {
			return err
		}

		if err := s.users.DeleteVirtual(ctx, virtual); err != nil {
			return err
		}
		releasedPicture = virtual.PictureURL
		debt = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.users.ReleasePicture(ctx, releasedPicture)
	metrics.RecordDebtTransition("accept_connection")
	zap.L().Info("user connected to debt", zap.String("debt", debtID), zap.String("user", actorID))
	return debt, nil
}

// DeclineUserConnectionToSingleDebt can be called by the owner withdrawing
// the invitation or by the invited user.
func (s *Service) DeclineUserConnectionToSingleDebt(ctx context.Context, actorID, debtID string) (*domain.Debt, error) {
	var debt *domain.Debt
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lockDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if d.Status != domain.DebtConnectUser || (!d.HasMember(actorID) && d.StatusAcceptor != actorID) {
			return ErrDebtNotFound
		}

		d.SetStatus(domain.DebtUnchanged, "")
		if err := s.save(ctx, d, domain.DebtConnectUser); err != nil {
			return err
		}
		debt = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordDebtTransition("decline_connection")
	return debt, nil
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

func (s *Service) recalculateAndSave(ctx context.Context, d *domain.Debt, expected domain.DebtStatus) error {
	ops, err := s.operationRepo.FindByDebtID(ctx, d.ID)
	if err != nil {
		return err
	}
	d.Recalculate(ops)
	return s.save(ctx, d, expected)
}

func (s *Service) save(ctx context.Context, d *domain.Debt, expected domain.DebtStatus) error {
	err := s.debtRepo.Update(ctx, d, expected)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrDebtNotFound
	case errors.Is(err, domain.ErrConflict):
		return ErrDebtAlreadyExists
	}
	return err
}

func (s *Service) deleteDebt(ctx context.Context, d *domain.Debt) error {
	if err := s.debtRepo.Delete(ctx, d.ID, d.Status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrDebtNotFound
		}
		return err
	}
	return nil
}

func virtualMember(d *domain.Debt, members map[string]domain.User) *domain.User {
	for _, id := range d.Users {
		if user, ok := members[id]; ok && user.IsVirtual {
			return &user
		}
	}
	return nil
}
