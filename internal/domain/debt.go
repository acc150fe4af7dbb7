package domain

import "github.com/shopspring/decimal"

func (d *Debt) HasMember(userID string) bool {
	return userID != "" && (d.Users[0] == userID || d.Users[1] == userID)
}

// OtherMember returns the member that is not userID, or "" when userID is not a member.
func (d *Debt) OtherMember(userID string) string {
	switch userID {
	case d.Users[0]:
		return d.Users[1]
	case d.Users[1]:
		return d.Users[0]
	}
	return ""
}

// ReplaceMember swaps oldID for newID in the member list and the debt level references.
func (d *Debt) ReplaceMember(oldID, newID string) {
	for i := range d.Users {
		if d.Users[i] == oldID {
			d.Users[i] = newID
		}
	}
	if d.MoneyReceiver == oldID {
		d.MoneyReceiver = newID
	}
	if d.StatusAcceptor == oldID {
		d.StatusAcceptor = newID
	}
}

func (d *Debt) SetStatus(status DebtStatus, acceptor string) {
	d.Status = status
	d.StatusAcceptor = acceptor
}

// Recalculate replaces the operation list and derives summary and money receiver from it.
func (d *Debt) Recalculate(ops []Operation) {
	d.MoneyOperations = ops
	d.Summary, d.MoneyReceiver = CalculateBalance(d.Users, ops)
}

func (d *Debt) HasAwaitingOperations() bool {
	return HasAwaitingOperations(d.MoneyOperations)
}

func HasAwaitingOperations(ops []Operation) bool {
	for _, op := range ops {
		if op.Status == OperationCreationAwaiting {
			return true
		}
	}
	return false
}

// CalculateBalance nets settled operations between the two members.
// Awaiting and cancelled operations never count.
func CalculateBalance(users [2]string, ops []Operation) (float64, string) {
	var sums [2]decimal.Decimal
	for _, op := range ops {
		if op.Status != OperationUnchanged {
			continue
		}
		for i, u := range users {
			if op.MoneyReceiver == u {
				sums[i] = sums[i].Add(decimal.NewFromFloat(op.MoneyAmount))
			}
		}
	}

	diff := sums[0].Sub(sums[1])
	switch diff.Sign() {
	case 1:
		return diff.InexactFloat64(), users[0]
	case -1:
		return diff.Abs().InexactFloat64(), users[1]
	default:
		return 0, ""
	}
}
