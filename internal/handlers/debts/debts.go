package debts

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

//go:generate mockgen -source=debts.go -destination=mock_debts.go -package=debts

type Service interface {
	CreateMultipleDebt(ctx context.Context, creatorID, counterpartID, currency string) (*domain.Debt, error)
	CreateSingleDebt(ctx context.Context, creatorID, virtualName, currency string) (*domain.Debt, error)
	AcceptDebtsCreation(ctx context.Context, actorID, debtID string) (*domain.Debt, error)
	DeclineDebtsCreation(ctx context.Context, actorID, debtID string) error
	DeleteDebt(ctx context.Context, actorID, debtID string) error
	AcceptUserDeletedStatus(ctx context.Context, actorID, debtID string) (*domain.Debt, error)
	ConnectUserToSingleDebt(ctx context.Context, actorID, newUserID, debtID string) (*domain.Debt, error)
	AcceptUserConnectionToSingleDebt(ctx context.Context, actorID, debtID string) (*domain.Debt, error)
	DeclineUserConnectionToSingleDebt(ctx context.Context, actorID, debtID string) (*domain.Debt, error)
}

type ViewService interface {
	GetDebt(ctx context.Context, viewerID, debtID string) (*domain.DebtView, error)
	GetAllUserDebts(ctx context.Context, viewerID string) (*domain.DebtsList, error)
}

type DebtHandler struct {
	debtService Service
	viewService ViewService
}

func New(debtService Service, viewService ViewService) *DebtHandler {
	return &DebtHandler{
		debtService: debtService,
		viewService: viewService,
	}
}

// GetAllDebts godoc
//
//	@Summary		List user debts
//	@Description	All debts of the authenticated user with the total amounts to give and to take.
//	@Tags			Debts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DebtsListResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/debts [get]
func (h *DebtHandler) GetAllDebts(w http.ResponseWriter, r *http.Request) {
	h.respondWithList(w, r, auth.UserIDFromContext(r.Context()), http.StatusOK)
}

// GetDebt godoc
//
//	@Summary		Get debt
//	@Description	A debt with its operations as seen by the authenticated user.
//	@Tags			Debts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Debt id"
//	@Success		200	{object}	dto.DebtResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid debt id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Debt not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/{id} [get]
func (h *DebtHandler) GetDebt(w http.ResponseWriter, r *http.Request) {
	debtID, ok := debtIDParam(w, r)
	if !ok {
		return
	}
	h.respondWithDebt(w, r, auth.UserIDFromContext(r.Context()), debtID, http.StatusOK)
}

// CreateMultipleDebt godoc
//
//	@Summary		Create debt with a user
//	@Description	Creates a shared debt the other user has to accept.
//	@Tags			Debts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateMultipleDebtRequestDTO	true	"Counterpart and currency"
//	@Success		201		{object}	dto.DebtResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Debt already exists"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/multiple [post]
func (h *DebtHandler) CreateMultipleDebt(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req dto.CreateMultipleDebtRequestDTO
	if !decode(w, r, &req) {
		return
	}

	debt, err := h.debtService.CreateMultipleDebt(r.Context(), userID, req.UserID, req.Currency)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithDebt(w, r, userID, debt.ID, http.StatusCreated)
}

// CreateSingleDebt godoc
//
//	@Summary		Create debt with a virtual user
//	@Description	Creates a debt tracked only by the authenticated user against a named virtual user.
//	@Tags			Debts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSingleDebtRequestDTO	true	"Virtual user name and currency"
//	@Success		201		{object}	dto.DebtResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Virtual user name taken"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/single [post]
func (h *DebtHandler) CreateSingleDebt(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req dto.CreateSingleDebtRequestDTO
	if !decode(w, r, &req) {
		return
	}

	debt, err := h.debtService.CreateSingleDebt(r.Context(), userID, req.UserName, req.Currency)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithDebt(w, r, userID, debt.ID, http.StatusCreated)
}

// AcceptCreation godoc
//
//	@Summary		Accept debt creation
//	@Tags			Debts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Debt id"
//	@Success		200	{object}	dto.DebtResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid debt id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Debt not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/{id}/creation [post]
func (h *DebtHandler) AcceptCreation(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.debtService.AcceptDebtsCreation)
}

// DeclineCreation godoc
//
//	@Summary		Decline debt creation
//	@Description	Either member may decline. Responds with the remaining debts.
//	@Tags			Debts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Debt id"
//	@Success		200	{object}	dto.DebtsListResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid debt id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Debt not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/{id}/creation [delete]
func (h *DebtHandler) DeclineCreation(w http.ResponseWriter, r *http.Request) {
	h.removal(w, r, h.debtService.DeclineDebtsCreation)
}

// DeleteDebt godoc
//
//	@Summary		Delete debt
//	@Description	Deletes a single user debt or leaves a shared one. Responds with the remaining debts.
//	@Tags			Debts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Debt id"
//	@Success		200	{object}	dto.DebtsListResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid debt id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Debt not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	h.removal(w, r, h.debtService.DeleteDebt)
}

// AcceptUserDeleted godoc
//
//	@Summary		Accept that the other user left the debt
//	@Tags			Debts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Debt id"
//	@Success		200	{object}	dto.DebtResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid debt id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Debt not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/{id}/user-deleted [post]
func (h *DebtHandler) AcceptUserDeleted(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.debtService.AcceptUserDeletedStatus)
}

// ConnectUser godoc
//
//	@Summary		Invite a user to a single user debt
//	@Description	The invited user takes the place of the virtual member once they accept.
//	@Tags			Debts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Debt id"
//	@Param			request	body		dto.ConnectUserRequestDTO	true	"Invited user"
//	@Success		200		{object}	dto.DebtResponseDTO
//	@Failure		400		{object}	utils.Response	"Debt can't be connected in its current status"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Debt or user not found"
//	@Failure		409		{object}	utils.Response	"Debt already exists"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/{id}/connect [post]
func (h *DebtHandler) ConnectUser(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	debtID, ok := debtIDParam(w, r)
	if !ok {
		return
	}

	var req dto.ConnectUserRequestDTO
	if !decode(w, r, &req) {
		return
	}

	debt, err := h.debtService.ConnectUserToSingleDebt(r.Context(), userID, req.UserID, debtID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithDebt(w, r, userID, debt.ID, http.StatusOK)
}

// AcceptConnection godoc
//
//	@Summary		Accept an invitation to a debt
//	@Tags			Debts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Debt id"
//	@Success		200	{object}	dto.DebtResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid debt id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Debt not found"
//	@Failure		409	{object}	utils.Response	"Debt already exists"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/{id}/connect/accept [post]
func (h *DebtHandler) AcceptConnection(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.debtService.AcceptUserConnectionToSingleDebt)
}

// DeclineConnection godoc
//
//	@Summary		Decline or withdraw an invitation to a debt
//	@Description	Responds with the debts of the authenticated user.
//	@Tags			Debts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Debt id"
//	@Success		200	{object}	dto.DebtsListResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid debt id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Debt not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/debts/{id}/connect [delete]
func (h *DebtHandler) DeclineConnection(w http.ResponseWriter, r *http.Request) {
	h.removal(w, r, func(ctx context.Context, actorID, debtID string) error {
		_, err := h.debtService.DeclineUserConnectionToSingleDebt(ctx, actorID, debtID)
		return err
	})
}

func (h *DebtHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actorID, debtID string) (*domain.Debt, error)) {
	userID := auth.UserIDFromContext(r.Context())
	debtID, ok := debtIDParam(w, r)
	if !ok {
		return
	}

	debt, err := fn(r.Context(), userID, debtID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithDebt(w, r, userID, debt.ID, http.StatusOK)
}

// removal is used where the actor may no longer see the debt afterwards.
func (h *DebtHandler) removal(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actorID, debtID string) error) {
	userID := auth.UserIDFromContext(r.Context())
	debtID, ok := debtIDParam(w, r)
	if !ok {
		return
	}

	if err := fn(r.Context(), userID, debtID); err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	h.respondWithList(w, r, userID, http.StatusOK)
}

func (h *DebtHandler) respondWithDebt(w http.ResponseWriter, r *http.Request, userID, debtID string, code int) {
	view, err := h.viewService.GetDebt(r.Context(), userID, debtID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, code, dto.NewDebtResponse(*view))
}

func (h *DebtHandler) respondWithList(w http.ResponseWriter, r *http.Request, userID string, code int) {
	list, err := h.viewService.GetAllUserDebts(r.Context(), userID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, code, dto.NewDebtsListResponse(*list))
}

func debtIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	debtID := chi.URLParam(r, "id")
	if !validate.IsUUID(debtID) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid debt id")
		return "", false
	}
	return debtID, true
}

func decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}
