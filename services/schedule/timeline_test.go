package schedule

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"slotgrid/models"
)

func mondayAt(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestResolveTimeline_PlainAvailability(t *testing.T) {
	slots := []models.AvailabilitySlot{recurringSlot("mon", 1, 540, 1020, createdLongAgo)}
	blocks, err := ResolveTimeline(monday, slots, nil, nil, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %v", blocks)
	}
	b := blocks[0]
	if b.Kind != models.BlockAvailability || b.Start != 540 || b.End != 1020 {
		t.Fatalf("expected availability 09:00-17:00, got %+v", b)
	}
}

func TestResolveTimeline_RecurringExceptionSplitsAvailability(t *testing.T) {
	slots := []models.AvailabilitySlot{recurringSlot("mon", 1, 540, 1020, createdLongAgo)}
	excs := []models.Exception{recurringExc("lunch", 1, 720, 780)}

	blocks, err := ResolveTimeline(monday, slots, excs, nil, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		kind       string
		start, end int
	}{
		{models.BlockAvailability, 540, 720},
		{models.BlockTimeOff, 720, 780},
		{models.BlockAvailability, 780, 1020},
	}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %v", len(want), blocks)
	}
	for i, w := range want {
		b := blocks[i]
		if b.Kind != w.kind || b.Start != w.start || b.End != w.end {
			t.Fatalf("block %d: expected %v, got %+v", i, w, b)
		}
	}
	// Split fragments keep the original slot interval.
	if blocks[0].OriginalStart == nil || *blocks[0].OriginalStart != 540 || *blocks[0].OriginalEnd != 1020 {
		t.Fatalf("availability fragment must carry the original range, got %+v", blocks[0])
	}
}

func TestResolveTimeline_OneTimeAndRecurringExceptions(t *testing.T) {
	// Recurring Monday 09:00-17:00, recurring lunch 12:00-13:00, one-time
	// 11:30-12:30 on that Monday. Lunch keeps only 12:30-13:00 and
	// availability splits at 11:30 and 13:00.
	slots := []models.AvailabilitySlot{recurringSlot("mon", 1, 540, 1020, createdLongAgo)}
	excs := []models.Exception{
		recurringExc("lunch", 1, 720, 780),
		oneTimeExc("errand", monday, monday, 690, 750),
	}

	blocks, err := ResolveTimeline(monday, slots, excs, nil, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		kind       string
		start, end int
		source     string
	}{
		{models.BlockAvailability, 540, 690, "mon"},
		{models.BlockTimeOff, 690, 750, "errand"},
		{models.BlockTimeOff, 750, 780, "lunch"},
		{models.BlockAvailability, 780, 1020, "mon"},
	}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %v", len(want), blocks)
	}
	for i, w := range want {
		b := blocks[i]
		if b.Kind != w.kind || b.Start != w.start || b.End != w.end || b.SourceID != w.source {
			t.Fatalf("block %d: expected %+v, got %+v", i, w, b)
		}
	}
}

func TestResolveTimeline_SpecificDateSuppressesRecurringSource(t *testing.T) {
	slots := []models.AvailabilitySlot{
		recurringSlot("mon", 1, 540, 1020, createdLongAgo),
		dateSlot("special", monday, 600, 720, createdLongAgo),
	}
	blocks, err := ResolveTimeline(monday, slots, nil, nil, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, b := range blocks {
		if b.SourceID == "mon" {
			t.Fatalf("recurring slot must be suppressed by the specific-date slot, got %+v", b)
		}
	}
}

func TestResolveTimeline_AppointmentsConvertedAndFiltered(t *testing.T) {
	slots := []models.AvailabilitySlot{recurringSlot("mon", 1, 540, 1020, createdLongAgo)}
	appointments := []models.Appointment{
		{ID: "a1", StartTime: mondayAt(10, 0), EndTime: mondayAt(10, 30), Status: models.AppointmentConfirmed, ClientName: "Ana"},
		{ID: "a2", StartTime: mondayAt(11, 0), EndTime: mondayAt(11, 30), Status: models.AppointmentCancelled, ClientName: "Ben"},
		{ID: "a3", StartTime: mondayAt(12, 0).AddDate(0, 0, 1), EndTime: mondayAt(12, 30).AddDate(0, 0, 1), Status: models.AppointmentConfirmed},
	}

	blocks, err := ResolveTimeline(monday, slots, nil, appointments, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var appts []models.TimeBlock
	for _, b := range blocks {
		if b.Kind == models.BlockAppointment {
			appts = append(appts, b)
		}
	}
	if len(appts) != 1 {
		t.Fatalf("expected 1 appointment block, got %v", appts)
	}
	if appts[0].Start != 600 || appts[0].End != 630 || appts[0].ClientName != "Ana" || appts[0].SourceID != "a1" {
		t.Fatalf("unexpected appointment block %+v", appts[0])
	}
}

func TestResolveTimeline_TieBreakByKind(t *testing.T) {
	// A time off, an availability slot and an appointment all starting at
	// 09:00 sort time off < availability < appointment.
	slots := []models.AvailabilitySlot{dateSlot("avail", monday, 540, 600, createdLongAgo)}
	excs := []models.Exception{recurringExc("off", 1, 540, 570)}
	appointments := []models.Appointment{
		{ID: "appt", StartTime: mondayAt(9, 0), EndTime: mondayAt(9, 15), Status: models.AppointmentPending},
	}

	blocks, err := ResolveTimeline(monday, slots, excs, appointments, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var at540 []string
	for _, b := range blocks {
		if b.Start == 540 {
			at540 = append(at540, b.Kind)
		}
	}
	want := []string{models.BlockTimeOff, models.BlockAppointment}
	// The availability slot is cut by the exception, so its fragment starts
	// at 570 and only time off and the appointment share minute 540.
	if !reflect.DeepEqual(at540, want) {
		t.Fatalf("expected tie order %v, got %v", want, at540)
	}
}

func TestResolveTimeline_NoSameKindOverlap(t *testing.T) {
	slots := []models.AvailabilitySlot{
		recurringSlot("m1", 1, 540, 720, createdLongAgo),
		recurringSlot("m2", 1, 780, 1020, createdLongAgo),
	}
	excs := []models.Exception{
		recurringExc("lunch", 1, 700, 800),
		oneTimeExc("errand", monday, monday, 750, 820),
	}
	blocks, err := ResolveTimeline(monday, slots, excs, nil, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, a := range blocks {
		for _, b := range blocks[i+1:] {
			if a.Kind == b.Kind && Overlaps(a.Start, a.End, b.Start, b.End) {
				t.Fatalf("same-kind blocks overlap: %+v and %+v", a, b)
			}
		}
	}
	// And the whole sequence is sorted ascending by start.
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Start < blocks[i-1].Start {
			t.Fatalf("blocks out of order at %d: %v", i, blocks)
		}
	}
}

func TestResolveTimeline_Idempotent(t *testing.T) {
	slots := []models.AvailabilitySlot{recurringSlot("mon", 1, 540, 1020, createdLongAgo)}
	excs := []models.Exception{
		recurringExc("lunch", 1, 720, 780),
		oneTimeExc("errand", monday, monday, 690, 750),
	}
	appointments := []models.Appointment{
		{ID: "a1", StartTime: mondayAt(15, 0), EndTime: mondayAt(15, 30), Status: models.AppointmentConfirmed},
	}

	first, err := ResolveTimeline(monday, slots, excs, appointments, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ResolveTimeline(monday, slots, excs, appointments, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("identical inputs produced different output:\n%s\n%s", a, b)
	}
}

func TestResolveTimeline_InvalidDate(t *testing.T) {
	_, err := ResolveTimeline("03/02/2026", nil, nil, nil, monday)
	if err == nil || ErrorCode(err) != CodeInvalidDate {
		t.Fatalf("expected invalidDate error, got %v", err)
	}
}
