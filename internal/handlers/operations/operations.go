package operations

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/OleksaDid/simple-debts/internal/domain"
	"github.com/OleksaDid/simple-debts/internal/dto"
	"github.com/OleksaDid/simple-debts/pkg/auth"
	"github.com/OleksaDid/simple-debts/pkg/utils"
	"github.com/OleksaDid/simple-debts/pkg/validate"
)

//go:generate mockgen -source=operations.go -destination=mock_operations.go -package=operations

type Service interface {
	CreateOperation(ctx context.Context, actorID, debtID string, amount float64, receiverID, description string) (*domain.Debt, error)
	AcceptOperation(ctx context.Context, actorID, operationID string) (*domain.Debt, error)
	DeclineOperation(ctx context.Context, actorID, operationID string) (*domain.Debt, error)
	DeleteOperation(ctx context.Context, actorID, operationID string) (*domain.Debt, error)
}

type ViewService interface {
	GetDebt(ctx context.Context, viewerID, debtID string) (*domain.DebtView, error)
}

type OperationHandler struct {
	operationService Service
	viewService      ViewService
}

func New(operationService Service, viewService ViewService) *OperationHandler {
	return &OperationHandler{
		operationService: operationService,
		viewService:      viewService,
	}
}

// CreateOperation godoc
//
//	@Summary		Add money operation
//	@Description	Records money passed between the debt members. Shared debts wait for the other member to accept it.
//	@Tags			Operations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOperationRequestDTO	true	"Operation payload"
//	@Success		201		{object}	dto.DebtResponseDTO
//	@Failure		400		{object}	utils.Response	"Debt does not accept operations"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Debt not found"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/operations [post]
func (h *OperationHandler) CreateOperation(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req dto.CreateOperationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	debt, err := h.operationService.CreateOperation(r.Context(), userID, req.DebtsID, req.MoneyAmount, req.MoneyReceiver, req.Description)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithDebt(w, r, userID, debt.ID, http.StatusCreated)
}

// AcceptOperation godoc
//
//	@Summary		Accept money operation
//	@Tags			Operations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Operation id"
//	@Success		200	{object}	dto.DebtResponseDTO
//	@Failure		400	{object}	utils.Response	"Operation is not waiting for acceptance"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Operation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/operations/{id}/accept [post]
func (h *OperationHandler) AcceptOperation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.operationService.AcceptOperation)
}

// DeclineOperation godoc
//
//	@Summary		Decline money operation
//	@Description	Either member may cancel an operation waiting for acceptance.
//	@Tags			Operations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Operation id"
//	@Success		200	{object}	dto.DebtResponseDTO
//	@Failure		400	{object}	utils.Response	"Operation is not waiting for acceptance"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Operation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/operations/{id}/decline [post]
func (h *OperationHandler) DeclineOperation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.operationService.DeclineOperation)
}

// DeleteOperation godoc
//
//	@Summary		Delete money operation
//	@Description	Only operations of single user debts can be deleted.
//	@Tags			Operations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Operation id"
//	@Success		200	{object}	dto.DebtResponseDTO
//	@Failure		400	{object}	utils.Response	"Operation can't be deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Operation not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/operations/{id} [delete]
func (h *OperationHandler) DeleteOperation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.operationService.DeleteOperation)
}

func (h *OperationHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actorID, operationID string) (*domain.Debt, error)) {
	userID := auth.UserIDFromContext(r.Context())
	operationID := chi.URLParam(r, "id")
	if !validate.IsUUID(operationID) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid operation id")
		return
	}

	debt, err := fn(r.Context(), userID, operationID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithDebt(w, r, userID, debt.ID, http.StatusOK)
}

func (h *OperationHandler) respondWithDebt(w http.ResponseWriter, r *http.Request, userID, debtID string, code int) {
	view, err := h.viewService.GetDebt(r.Context(), userID, debtID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, code, dto.NewDebtResponse(*view))
}
