package logspace

import (
	"math"
	"testing"
)

func TestLog1pExp_MatchesNaiveInMidRange(t *testing.T) {
	for x := -30.0; x <= 30.0; x += 0.37 {
		want := math.Log1p(math.Exp(x))
		got := Log1pExp(x)
		if math.Abs(got-want) > 1e-12*math.Max(1, math.Abs(want)) {
			t.Fatalf("Log1pExp(%g) = %g, want %g", x, got, want)
		}
	}
}

func TestLog1pExp_Extremes(t *testing.T) {
	if got := Log1pExp(800); got != 800 {
		t.Fatalf("Log1pExp(800) = %g, want 800 (naive form overflows here)", got)
	}
	// For very negative x, log1p(exp(x)) ~ exp(x).
	if got, want := Log1pExp(-50), math.Exp(-50); math.Abs(got-want) > 1e-30 {
		t.Fatalf("Log1pExp(-50) = %g, want %g", got, want)
	}
	if got := Log1pExp(-800); got != 0 {
		t.Fatalf("Log1pExp(-800) = %g, want exact underflow to 0", got)
	}
}

func TestLogitInvLogit_RoundTrip(t *testing.T) {
	// Past |y| ~ 15, InvLogit saturates to within one ulp of 0 or 1 and the
	// round trip through 1-p loses digits to cancellation, so cap the sweep
	// before that.
	for y := -12.0; y <= 12.0; y += 0.71 {
		p := InvLogit(y)
		if p <= 0 || p >= 1 {
			t.Fatalf("InvLogit(%g) = %g outside (0,1)", y, p)
		}
		back := Logit(p)
		if math.Abs(back-y) > 1e-9*math.Max(1, math.Abs(y)) {
			t.Fatalf("Logit(InvLogit(%g)) = %g", y, back)
		}
	}
	// In the saturated tail a half ulp of p is amplified by exp(|y|) through
	// 1-p, reaching ~6e-4 at y=30; the recovered value is still close.
	for y := 13.0; y <= 30.0; y += 3.7 {
		for _, s := range []float64{y, -y} {
			p := InvLogit(s)
			if p <= 0 || p >= 1 {
				t.Fatalf("InvLogit(%g) = %g outside (0,1)", s, p)
			}
			if back := Logit(p); math.Abs(back-s) > 1e-2 {
				t.Fatalf("Logit(InvLogit(%g)) = %g", s, back)
			}
		}
	}
}

func TestLogInvLogit_AgreesWithDirectForm(t *testing.T) {
	// Beyond |y| ~ 10 the direct 1-InvLogit(y) form loses digits to
	// cancellation, which is the reason these helpers exist.
	for y := -10.0; y <= 10.0; y += 0.53 {
		if got, want := LogInvLogit(y), math.Log(InvLogit(y)); math.Abs(got-want) > 1e-12 {
			t.Fatalf("LogInvLogit(%g) = %g, want %g", y, got, want)
		}
		if got, want := LogOneMinusInvLogit(y), math.Log(1-InvLogit(y)); math.Abs(got-want) > 1e-9 {
			t.Fatalf("LogOneMinusInvLogit(%g) = %g, want %g", y, got, want)
		}
	}
	// Large |y| must stay finite and linear in y instead of overflowing.
	if got := LogInvLogit(-750); got != -750 {
		t.Fatalf("LogInvLogit(-750) = %g, want -750", got)
	}
	if got := LogOneMinusInvLogit(750); got != -750 {
		t.Fatalf("LogOneMinusInvLogit(750) = %g, want -750", got)
	}
}
