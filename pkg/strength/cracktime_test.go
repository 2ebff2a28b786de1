package strength

import "testing"

func TestCrackTime(t *testing.T) {
	cases := []struct {
		bits float64
		want string
	}{
		{0, "instantly"},
		{10, "0.0 seconds"},
		{40, "9.2 minutes"},
		{50, "6.5 days"},
		{128, "more than 1000 years"},
	}

	for _, c := range cases {
		if got := crackTime(c.bits); got != c.want {
			t.Errorf("crackTime(%f): expected %q, got %q", c.bits, c.want, got)
		}
	}
}

func TestCrackTimeInReport(t *testing.T) {
	if Evaluate("").CrackTime != "instantly" {
		t.Error("empty password should crack instantly")
	}
	if Evaluate("vK9#mR2$wLs7&qPzvK9#").CrackTime != "more than 1000 years" {
		t.Error("expected a very long crack time for a 20-char 4-class password")
	}
}
