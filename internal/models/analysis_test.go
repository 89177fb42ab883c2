package models

import (
	"reflect"
	"testing"
)

func TestStringList_ValueAndScan(t *testing.T) {
	original := StringList{"HTML", "CSS", "REST APIs"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}

	var scanned StringList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}

	if !reflect.DeepEqual(scanned, original) {
		t.Errorf("round trip = %v, want %v", scanned, original)
	}
}

func TestStringList_NilValue(t *testing.T) {
	var list StringList

	value, err := list.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if value != "[]" {
		t.Errorf("nil list Value() = %v, want empty JSON array", value)
	}
}

func TestStringList_ScanNil(t *testing.T) {
	list := StringList{"stale"}
	if err := list.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if list != nil {
		t.Errorf("Scan(nil) left %v, want nil", list)
	}
}

func TestStringList_ScanUnsupportedType(t *testing.T) {
	var list StringList
	if err := list.Scan(42); err == nil {
		t.Error("Scan(int) expected error but got none")
	}
}
