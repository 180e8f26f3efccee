package capgains

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestLedger_Append(t *testing.T) {
	l := mustLedger(
		sell(day(3), "ETH", 1, 10),
		buy(day(1), "BTC", 1, 10),
	)
	// same time as the sell: appended after it.
	if err := l.Append(buy(day(3), "BTC", 2, 10), buy(day(2), "ETH", 1, 10)); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	var got []string
	for _, tr := range l.Trades() {
		got = append(got, tr.String())
	}
	want := []string{
		buy(day(1), "BTC", 1, 10).String(),
		buy(day(2), "ETH", 1, 10).String(),
		sell(day(3), "ETH", 1, 10).String(),
		buy(day(3), "BTC", 2, 10).String(),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Trades() = %q, want %q", got, want)
	}

	if got := l.Assets(); !slices.Equal(got, []string{"BTC", "ETH"}) {
		t.Errorf("Assets() = %q", got)
	}
	if !l.Oldest().Equal(day(1)) || !l.Newest().Equal(day(3)) {
		t.Errorf("Oldest(), Newest() = %v, %v", l.Oldest(), l.Newest())
	}
	if l.Len() != 4 {
		t.Errorf("Len() = %d, want 4", l.Len())
	}
}

func TestLedger_AppendInvalid(t *testing.T) {
	l := mustLedger(buy(day(1), "BTC", 1, 10))
	err := l.Append(buy(day(2), "BTC", 1, 10), buy(day(3), "BTC", 0, 10))

	var malformed *MalformedTradeError
	if !errors.As(err, &malformed) {
		t.Fatalf("Append() error = %v, want a *MalformedTradeError", err)
	}
	if malformed.Field != "Volume" {
		t.Errorf("malformed field = %q, want %q", malformed.Field, "Volume")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d after a failed Append, want 1", l.Len())
	}
}

func TestLedger_Empty(t *testing.T) {
	l := mustLedger()
	if !l.Oldest().IsZero() || !l.Newest().IsZero() {
		t.Error("empty ledger should have zero Oldest() and Newest()")
	}
	if len(l.Assets()) != 0 {
		t.Errorf("empty ledger Assets() = %q", l.Assets())
	}
}

func TestErrors_Message(t *testing.T) {
	oversell := &InsufficientLotsError{Asset: "BTC", Shortfall: Q(2), Time: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	if got, want := oversell.Error(), `2024-05-01 10:00:00: insufficient lots for "BTC": sell exceeds open quantity by 2`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("boom")
	malformed := &MalformedTradeError{Source: "trades.csv", Row: 4, Field: "Price", Value: "x", Reason: "not a number", Err: cause}
	if got := malformed.Error(); !strings.HasPrefix(got, `trades.csv:4: malformed trade: Price "x": not a number`) {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(malformed, cause) {
		t.Error("MalformedTradeError should unwrap to its cause")
	}
}
