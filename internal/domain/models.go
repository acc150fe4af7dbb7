package domain

import "time"

type DebtType string

const (
	// SingleUserDebt is a debt with a virtual counterpart controlled by its creator.
	SingleUserDebt DebtType = "SINGLE_USER"
	// MultipleUsersDebt is a debt between two real users.
	MultipleUsersDebt DebtType = "MULTIPLE_USERS"
)

type DebtStatus string

const (
	DebtCreationAwaiting DebtStatus = "CREATION_AWAITING"
	DebtUnchanged        DebtStatus = "UNCHANGED"
	DebtChangeAwaiting   DebtStatus = "CHANGE_AWAITING"
	DebtUserDeleted      DebtStatus = "USER_DELETED"
	DebtConnectUser      DebtStatus = "CONNECT_USER"
)

type OperationStatus string

const (
	OperationCreationAwaiting OperationStatus = "CREATION_AWAITING"
	OperationUnchanged        OperationStatus = "UNCHANGED"
	OperationCancelled        OperationStatus = "CANCELLED"
)

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	PictureURL   string    `db:"picture_url"`
	IsVirtual    bool      `db:"is_virtual"`
	CreatedAt    time.Time `db:"created_at"`
}

// Debt references nullable users with empty strings.
type Debt struct {
	ID             string     `db:"id"`
	Users          [2]string  `db:"-"`
	Type           DebtType   `db:"type"`
	Currency       string     `db:"currency"`
	Status         DebtStatus `db:"status"`
	StatusAcceptor string     `db:"status_acceptor"`
	Summary        float64    `db:"summary"`
	MoneyReceiver  string     `db:"money_receiver"`
	CreatedAt      time.Time  `db:"created_at"`

	MoneyOperations []Operation `db:"-"`
}

type Operation struct {
	ID             string          `db:"id"`
	DebtID         string          `db:"debt_id"`
	Date           time.Time       `db:"date"`
	MoneyAmount    float64         `db:"money_amount"`
	MoneyReceiver  string          `db:"money_receiver"`
	Description    string          `db:"description"`
	Status         OperationStatus `db:"status"`
	StatusAcceptor string          `db:"status_acceptor"`
	CancelledBy    string          `db:"cancelled_by"`
}
