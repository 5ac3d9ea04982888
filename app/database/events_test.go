package database

import (
	"reflect"
	"testing"
	"time"

	"campus-connect/app/models"
)

func strptr(s string) *string { return &s }

func TestPatchColumnsEmpty(t *testing.T) {
	cols, args := patchColumns(&models.EventPatch{})
	if len(cols) != 0 || len(args) != 0 {
		t.Fatalf("empty patch produced cols=%v args=%v", cols, args)
	}
}

func TestPatchColumnsSelectsOnlySuppliedFields(t *testing.T) {
	d := time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)
	patch := &models.EventPatch{
		Title: strptr("Updated Title"),
		Date:  &d,
		Type:  strptr("cultural"),
	}

	cols, args := patchColumns(patch)
	wantCols := []string{"title", "date", "type"}
	if !reflect.DeepEqual(cols, wantCols) {
		t.Errorf("cols = %v, want %v", cols, wantCols)
	}
	if len(args) != 3 {
		t.Fatalf("got %d args, want 3", len(args))
	}
	if args[0] != "Updated Title" || args[2] != "cultural" {
		t.Errorf("args = %v", args)
	}
	if got, ok := args[1].(time.Time); !ok || !got.Equal(d) {
		t.Errorf("date arg = %v, want %v", args[1], d)
	}
}

func TestPatchColumnsAllFields(t *testing.T) {
	d := time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)
	patch := &models.EventPatch{
		Title:            strptr("t"),
		Date:             &d,
		StartTime:        strptr("10:00"),
		EndTime:          strptr("11:00"),
		Type:             strptr("sports"),
		Description:      strptr("desc"),
		Classroom:        strptr("LH-101"),
		BackgroundColor:  strptr("#ef5350"),
		RegistrationLink: strptr("https://example.com"),
	}

	cols, args := patchColumns(patch)
	wantCols := []string{
		"title", "date", "start_time", "end_time", "type",
		"description", "classroom", "background_color", "registration_link",
	}
	if !reflect.DeepEqual(cols, wantCols) {
		t.Errorf("cols = %v, want %v", cols, wantCols)
	}
	if len(args) != len(wantCols) {
		t.Errorf("got %d args, want %d", len(args), len(wantCols))
	}
}

func TestPatchColumnsKeepsEmptyStrings(t *testing.T) {
	// Clearing a field is a real update: an explicit empty string must
	// make it into the SET clause.
	patch := &models.EventPatch{Classroom: strptr("")}
	cols, args := patchColumns(patch)
	if !reflect.DeepEqual(cols, []string{"classroom"}) || args[0] != "" {
		t.Errorf("cols=%v args=%v, want classroom cleared", cols, args)
	}
}
