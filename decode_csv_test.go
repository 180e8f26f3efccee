package capgains

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const exchangeTrades = `Date,Market,Price,Volume,Total,Trade Type,Fee Currency,Fee
2024-04-02 10:15:00,BTCINR,100,10,1000,Buy,INR,2
2024-04-03 11:00:00,BTCINR,120,5,600,Buy,INR,1.2
,,,,,,,
2024-04-04 09:30:00,BTCINR,150,12,1800,Sell,INR,3.6
`

func TestDecodeTrades(t *testing.T) {
	trades, err := DecodeTrades(strings.NewReader(exchangeTrades), "Exchange_Trades_2024_2025.csv", "INR")
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if len(trades) != 3 {
		t.Fatalf("DecodeTrades() got %d trades, want 3", len(trades))
	}
	got := trades[2]
	if got.Asset != "BTCINR" || got.Side != Sell || !got.Quantity.Equal(Q(12)) || !got.Price.Equal(INR(150)) {
		t.Errorf("trade = %v, want a sell of 12 BTCINR @ 150", got)
	}
	if want := time.Date(2024, time.April, 4, 9, 30, 0, 0, time.UTC); !got.Time.Equal(want) {
		t.Errorf("trade time = %v, want %v", got.Time, want)
	}
	if got.Row != 5 || got.Source != "Exchange_Trades_2024_2025.csv" {
		t.Errorf("trade location = %s:%d, want line 5", got.Source, got.Row)
	}
}

func TestDecodeTrades_Empty(t *testing.T) {
	for name, in := range map[string]string{"no header": "", "header only": "Date,Market,Trade Type,Price,Volume\n"} {
		trades, err := DecodeTrades(strings.NewReader(in), "empty.csv", "INR")
		if err != nil || len(trades) != 0 {
			t.Errorf("%s: DecodeTrades() = %v, %v, want no trade and no error", name, trades, err)
		}
	}
}

func TestDecodeTrades_Malformed(t *testing.T) {
	header := "Date,Market,Trade Type,Price,Volume\n"
	testCases := []struct {
		name  string
		input string
		field string
		row   int
	}{
		{"missing column", "Date,Market,Price,Volume\n2024-04-02,BTCINR,1,1\n", colSide, 1},
		{"lowercase side", header + "2024-04-02,BTCINR,buy,100,1\n", colSide, 2},
		{"unknown side", header + "2024-04-02,BTCINR,Buy,100,1\n2024-04-03,BTCINR,Deposit,100,1\n", colSide, 3},
		{"bad timestamp", header + "02/04/2024,BTCINR,Buy,100,1\n", colDate, 2},
		{"bad price", header + "2024-04-02,BTCINR,Buy,abc,1\n", colPrice, 2},
		{"negative price", header + "2024-04-02,BTCINR,Buy,-1,1\n", colPrice, 2},
		{"zero volume", header + "2024-04-02,BTCINR,Sell,100,0\n", colVolume, 2},
		{"negative volume", header + "2024-04-02,BTCINR,Sell,100,-3\n", colVolume, 2},
		{"empty market", header + "2024-04-02,,Sell,100,3\n", colMarket, 2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTrades(strings.NewReader(tc.input), "trades.csv", "INR")
			var mte *MalformedTradeError
			if !errors.As(err, &mte) {
				t.Fatalf("DecodeTrades() error = %v, want *MalformedTradeError", err)
			}
			if mte.Field != tc.field || mte.Row != tc.row || mte.Source != "trades.csv" {
				t.Errorf("error = %q, want field %q on row %d", mte, tc.field, tc.row)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, time.April, 2, 10, 15, 0, 0, time.UTC)
	for _, in := range []string{"2024-04-02 10:15:00", "2024-04-02T10:15:00Z", "2024-04-02T10:15:00", "2024-04-02 10:15"} {
		got, err := ParseTimestamp(in)
		if err != nil || !got.Equal(want) {
			t.Errorf("ParseTimestamp(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if got, err := ParseTimestamp("2024-04-02"); err != nil || !got.Equal(time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseTimestamp(date only) = %v, %v", got, err)
	}
	if _, err := ParseTimestamp("April 2nd"); err == nil {
		t.Errorf("ParseTimestamp(%q) expected an error", "April 2nd")
	}
}

func TestParseSide(t *testing.T) {
	if s, err := ParseSide("Buy"); err != nil || s != Buy {
		t.Errorf("ParseSide(Buy) = %v, %v", s, err)
	}
	if s, err := ParseSide("Sell"); err != nil || s != Sell {
		t.Errorf("ParseSide(Sell) = %v, %v", s, err)
	}
	for _, in := range []string{"BUY", "sell", "", "Transfer"} {
		if _, err := ParseSide(in); err == nil {
			t.Errorf("ParseSide(%q) expected an error", in)
		}
	}
}
