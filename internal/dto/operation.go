package dto

type CreateOperationRequestDTO struct {
	DebtsID       string  `json:"debtsId" validate:"required,uuid" example:"0c6f4f1e-1d4c-4a8a-9a55-0b0f6a7f2c3d"`
	MoneyAmount   float64 `json:"moneyAmount" validate:"gt=0" example:"300"`
	MoneyReceiver string  `json:"moneyReceiver" validate:"required,uuid" example:"5f2b6a5e-8a2f-4b53-9f0e-0d3c3f1f7c11"`
	Description   string  `json:"description" validate:"max=255" example:"dinner"`
}
