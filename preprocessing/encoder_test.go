package preprocessing

import (
	"reflect"
	"testing"
)

func TestLabelEncoderBijection(t *testing.T) {
	labels := []string{"C", "A", "B", "A", "C", "C"}

	enc := NewLabelEncoder()
	codes, err := enc.FitTransform(labels)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	// Codes are contiguous 0..C-1 in sorted label order.
	want := []int{2, 0, 1, 0, 2, 2}
	if !reflect.DeepEqual(codes, want) {
		t.Errorf("codes = %v, want %v", codes, want)
	}
	if !reflect.DeepEqual(enc.Classes(), []string{"A", "B", "C"}) {
		t.Errorf("Classes() = %v, want [A B C]", enc.Classes())
	}

	restored, err := enc.InverseTransform(codes)
	if err != nil {
		t.Fatalf("InverseTransform failed: %v", err)
	}
	if !reflect.DeepEqual(restored, labels) {
		t.Errorf("round trip = %v, want %v", restored, labels)
	}
}

func TestLabelEncoderUnseenLabel(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit([]string{"A", "B"}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if _, err := enc.Transform([]string{"Z"}); err == nil {
		t.Error("Transform of an unseen label should fail")
	}
}

func TestLabelEncoderEmptyInput(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit(nil); err == nil {
		t.Error("Fit with no labels should fail")
	}
}

func TestLabelEncoderCodeOutOfRange(t *testing.T) {
	enc := NewLabelEncoder()
	if err := enc.Fit([]string{"A", "B"}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if _, err := enc.InverseTransform([]int{5}); err == nil {
		t.Error("InverseTransform with an out-of-range code should fail")
	}
}
