package dto

import (
	"time"

	"github.com/OleksaDid/simple-debts/internal/domain"
)

type CreateMultipleDebtRequestDTO struct {
	UserID   string `json:"userId" validate:"required,uuid" example:"5f2b6a5e-8a2f-4b53-9f0e-0d3c3f1f7c11"`
	Currency string `json:"currency" validate:"required,iso4217" example:"USD"`
}

type CreateSingleDebtRequestDTO struct {
	UserName string `json:"userName" validate:"required,max=60" example:"Bob"`
	Currency string `json:"currency" validate:"required,iso4217" example:"EUR"`
}

type ConnectUserRequestDTO struct {
	UserID string `json:"userId" validate:"required,uuid" example:"5f2b6a5e-8a2f-4b53-9f0e-0d3c3f1f7c11"`
}

type UserDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name" example:"Bob"`
	Picture string `json:"picture,omitempty"`
	Virtual bool   `json:"virtual"`
}

type OperationDTO struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date" example:"2024-03-01T10:00:00Z"`
	MoneyAmount    float64   `json:"moneyAmount" example:"300"`
	MoneyReceiver  string    `json:"moneyReceiver"`
	Description    string    `json:"description" example:"dinner"`
	Status         string    `json:"status" example:"UNCHANGED"`
	StatusAcceptor string    `json:"statusAcceptor,omitempty"`
	CancelledBy    string    `json:"cancelledBy,omitempty"`
}

// DebtResponseDTO is a debt from the requesting user's side: User is the other party.
type DebtResponseDTO struct {
	ID              string         `json:"id"`
	User            UserDTO        `json:"user"`
	Type            string         `json:"type" example:"MULTIPLE_USERS"`
	Currency        string         `json:"currency" example:"USD"`
	Status          string         `json:"status" example:"UNCHANGED"`
	StatusAcceptor  string         `json:"statusAcceptor,omitempty"`
	Summary         float64        `json:"summary" example:"300"`
	MoneyReceiver   string         `json:"moneyReceiver,omitempty"`
	MoneyOperations []OperationDTO `json:"moneyOperations"`
}

type DebtsSummaryDTO struct {
	ToGive float64 `json:"toGive" example:"40.5"`
	ToTake float64 `json:"toTake" example:"100"`
}

type DebtsListResponseDTO struct {
	Debts   []DebtResponseDTO `json:"debts"`
	Summary DebtsSummaryDTO   `json:"summary"`
}

func NewDebtResponse(view domain.DebtView) DebtResponseDTO {
	ops := make([]OperationDTO, 0, len(view.MoneyOperations))
	for _, op := range view.MoneyOperations {
		ops = append(ops, OperationDTO{
			ID:             op.ID,
			Date:           op.Date,
			MoneyAmount:    op.MoneyAmount,
			MoneyReceiver:  op.MoneyReceiver,
			Description:    op.Description,
			Status:         string(op.Status),
			StatusAcceptor: op.StatusAcceptor,
			CancelledBy:    op.CancelledBy,
		})
	}

	return DebtResponseDTO{
		ID: view.ID,
		User: UserDTO{
			ID:      view.OtherUser.ID,
			Name:    view.OtherUser.Name,
			Picture: view.OtherUser.PictureURL,
			Virtual: view.OtherUser.IsVirtual,
		},
		Type:            string(view.Type),
		Currency:        view.Currency,
		Status:          string(view.Status),
		StatusAcceptor:  view.StatusAcceptor,
		Summary:         view.Summary,
		MoneyReceiver:   view.MoneyReceiver,
		MoneyOperations: ops,
	}
}

func NewDebtsListResponse(list domain.DebtsList) DebtsListResponseDTO {
	debts := make([]DebtResponseDTO, 0, len(list.Debts))
	for _, view := range list.Debts {
		debts = append(debts, NewDebtResponse(view))
	}
	return DebtsListResponseDTO{
		Debts: debts,
		Summary: DebtsSummaryDTO{
			ToGive: list.Summary.ToGive,
			ToTake: list.Summary.ToTake,
		},
	}
}
