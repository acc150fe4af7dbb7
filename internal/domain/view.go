package domain

import "github.com/shopspring/decimal"

// DebtView is a debt as seen by one of its users.
type DebtView struct {
	Debt
	Viewer    string
	OtherUser User
}

type DebtsSummary struct {
	ToGive float64
	ToTake float64
}

type DebtsList struct {
	Debts   []DebtView
	Summary DebtsSummary
}

// PresentDebt builds the viewer relative copy of a debt. A pending CONNECT_USER
// acceptor sees the debt as if they had already replaced virtualID.
// The input debt is not modified.
func PresentDebt(debt Debt, viewerID, virtualID string) Debt {
	view := debt
	view.MoneyOperations = append([]Operation(nil), debt.MoneyOperations...)

	if debt.Status != DebtConnectUser || debt.StatusAcceptor != viewerID || debt.HasMember(viewerID) || virtualID == "" {
		return view
	}

	view.ReplaceMember(virtualID, viewerID)
	for i := range view.MoneyOperations {
		if view.MoneyOperations[i].MoneyReceiver == virtualID {
			view.MoneyOperations[i].MoneyReceiver = viewerID
		}
	}
	return view
}

// SummarizeDebts totals what the viewer has to give and to take across views.
func SummarizeDebts(viewerID string, debts []DebtView) DebtsSummary {
	var toGive, toTake decimal.Decimal
	for _, d := range debts {
		if d.MoneyReceiver == "" {
			continue
		}
		amount := decimal.NewFromFloat(d.Summary)
		if d.MoneyReceiver == viewerID {
			toTake = toTake.Add(amount)
		} else {
			toGive = toGive.Add(amount)
		}
	}
	return DebtsSummary{
		ToGive: toGive.InexactFloat64(),
		ToTake: toTake.InexactFloat64(),
	}
}
