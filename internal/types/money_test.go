package types

import (
	"encoding/json"
	"testing"
)

func TestMoneyMarshalsAsBareNumber(t *testing.T) {
	m, err := MoneyFromString("12.50")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := json.Marshal(ShareInput{UserID: 1, ShareAmount: m})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"userId":1,"shareAmount":12.5}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}

func TestMoneyUnmarshalAcceptsBothForms(t *testing.T) {
	for _, in := range []string{`12.5`, `"12.5"`} {
		var m Money
		if err := json.Unmarshal([]byte(in), &m); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if m.String() != "12.5" {
			t.Fatalf("unmarshal %s = %s", in, m)
		}
	}
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	a := MoneyFromFloat(0.1)
	b := MoneyFromFloat(0.2)
	if sum := a.Add(b.Decimal); sum.String() != "0.3" {
		t.Fatalf("0.1 + 0.2 = %s, want 0.3", sum)
	}
}
