package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	w, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != (Window{Years: 1}) {
		t.Fatalf("expected one year, got %+v", w)
	}
	if label != "1y" {
		t.Fatalf("expected label 1y, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	w, label, err := ParseWindow("1y 14months 10d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Window{Years: 2, Months: 2, Days: 10}
	if w != want {
		t.Fatalf("expected %+v, got %+v", want, w)
	}
	if label != "2y2m1w3d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowErrors(t *testing.T) {
	for _, in := range []string{"abc", "3h", "0d", "1y?"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestWindowBefore(t *testing.T) {
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	got := Window{Months: 1}.Before(end)
	want := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got = Window{Days: 7}.Before(end)
	if !got.Equal(end.AddDate(0, 0, -7)) {
		t.Fatalf("unexpected %v", got)
	}
}
