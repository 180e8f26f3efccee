package capgains

import (
	"time"

	"github.com/etnz/capgains/date"
)

// day returns noon UTC of the n-th day of April 2024, the first day of the
// default financial year.
func day(n int) time.Time { return time.Date(2024, time.April, n, 12, 0, 0, 0, time.UTC) }

// INR is a helper for test to create rupees from const
func INR(v float64) Money { return M(v, "INR") }

// fy2024 is the financial year 2024-04-01..2025-03-31.
var fy2024 = date.FinancialYear(2024, time.April)

func buy(on time.Time, asset string, quantity, price float64) Trade {
	return NewBuy(on, asset, Q(quantity), INR(price))
}

func sell(on time.Time, asset string, quantity, price float64) Trade {
	return NewSell(on, asset, Q(quantity), INR(price))
}

// mustLedger builds a ledger, panicking on invalid trades.
func mustLedger(trades ...Trade) *Ledger {
	l, err := NewLedger(trades...)
	if err != nil {
		panic(err)
	}
	return l
}
