package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"medicore/models"
)

type memStore struct {
	inserted []*models.Notification
	fail     bool
}

func (s *memStore) Insert(_ context.Context, n *models.Notification) error {
	if s.fail {
		return errors.New("insert failed")
	}
	s.inserted = append(s.inserted, n)
	return nil
}

type memPublisher struct {
	rooms  []string // "<role>:<entityID>"
	events []models.RealtimeEvent
	fail   bool
}

func (p *memPublisher) Publish(_ context.Context, role, entityID string, event models.RealtimeEvent) error {
	p.rooms = append(p.rooms, role+":"+entityID)
	p.events = append(p.events, event)
	if p.fail {
		return errors.New("publish failed")
	}
	return nil
}

func testAppt(status string) *models.Appointment {
	return &models.Appointment{
		ID:        "appt-1",
		PatientID: "pat-1",
		DoctorID:  "doc-1",
		Date:      "2025-01-01",
		StartTime: "9:00 AM",
		Status:    status,
	}
}

func TestNotifyAppointmentRequestFanOut(t *testing.T) {
	store := &memStore{}
	pub := &memPublisher{}
	svc := NewDefaultNotificationService(store, pub)

	doctor := &models.DoctorProfile{ID: "doc-1", UserID: "user-doc-1"}
	hospital := &models.Hospital{ID: "hosp-1", HelpdeskIDs: []string{"help-1", "help-2"}}

	if err := svc.NotifyAppointmentRequest(context.Background(), testAppt(models.AppointmentPending), doctor, hospital); err != nil {
		t.Fatalf("NotifyAppointmentRequest: %v", err)
	}

	want := []string{"doctor:user-doc-1", "helpdesk:help-1", "helpdesk:help-2"}
	if len(pub.rooms) != len(want) {
		t.Fatalf("expected rooms %v, got %v", want, pub.rooms)
	}
	for i, room := range want {
		if pub.rooms[i] != room {
			t.Fatalf("expected rooms %v, got %v", want, pub.rooms)
		}
	}
	if len(store.inserted) != 3 {
		t.Fatalf("expected 3 inbox rows, got %d", len(store.inserted))
	}
	for _, ev := range pub.events {
		if ev.Type != models.EventAppointmentRequest || ev.AppointmentID != "appt-1" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	}
}

func TestNotifyStatusChangeDoctorSkippedForPatientActor(t *testing.T) {
	pub := &memPublisher{}
	svc := NewDefaultNotificationService(&memStore{}, pub)

	appt := testAppt(models.AppointmentCancelled)
	doctor := &models.DoctorProfile{ID: "doc-1", UserID: "user-doc-1"}
	if err := svc.NotifyStatusChange(context.Background(), appt, doctor, "cannot attend", RolePatient); err != nil {
		t.Fatalf("NotifyStatusChange: %v", err)
	}

	for _, room := range pub.rooms {
		if strings.HasPrefix(room, "doctor:") {
			t.Fatalf("patient-initiated cancellation must not notify the doctor, got room %q", room)
		}
	}
	if pub.rooms[0] != "patient:pat-1" {
		t.Fatalf("patient room must be addressed first, got %v", pub.rooms)
	}
	if last := pub.rooms[len(pub.rooms)-1]; last != "appointment:appt-1" {
		t.Fatalf("expected the generic appointment broadcast, got %q", last)
	}
}

func TestNotifyStatusChangeDoctorIncludedForStaffActor(t *testing.T) {
	pub := &memPublisher{}
	svc := NewDefaultNotificationService(&memStore{}, pub)

	doctor := &models.DoctorProfile{ID: "doc-1", UserID: "user-doc-1"}
	if err := svc.NotifyStatusChange(context.Background(), testAppt(models.AppointmentConfirmed), doctor, "", RoleHelpdesk); err != nil {
		t.Fatalf("NotifyStatusChange: %v", err)
	}

	found := false
	for _, room := range pub.rooms {
		if room == "doctor:user-doc-1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("staff-initiated transitions must notify the doctor's account, rooms: %v", pub.rooms)
	}
}

func TestNotifyStatusChangeNilDoctorSkipsEmission(t *testing.T) {
	pub := &memPublisher{}
	svc := NewDefaultNotificationService(&memStore{}, pub)

	if err := svc.NotifyStatusChange(context.Background(), testAppt(models.AppointmentConfirmed), nil, "", RoleHelpdesk); err != nil {
		t.Fatalf("NotifyStatusChange: %v", err)
	}
	for _, room := range pub.rooms {
		if strings.HasPrefix(room, "doctor:") {
			t.Fatalf("nil doctor must skip the doctor emission, got room %q", room)
		}
	}
}

func TestDoctorRoomConsistentAcrossEvents(t *testing.T) {
	pub := &memPublisher{}
	svc := NewDefaultNotificationService(&memStore{}, pub)

	appt := testAppt(models.AppointmentPending)
	doctor := &models.DoctorProfile{ID: "doc-1", UserID: "user-doc-1"}
	hospital := &models.Hospital{ID: "hosp-1"}

	if err := svc.NotifyAppointmentRequest(context.Background(), appt, doctor, hospital); err != nil {
		t.Fatalf("NotifyAppointmentRequest: %v", err)
	}
	appt.Status = models.AppointmentConfirmed
	if err := svc.NotifyStatusChange(context.Background(), appt, doctor, "", RoleHelpdesk); err != nil {
		t.Fatalf("NotifyStatusChange: %v", err)
	}

	// A gateway subscribes the doctor under one identifier; every event for
	// the same doctor must land in the same room.
	doctorRooms := make(map[string]bool)
	for _, room := range pub.rooms {
		if strings.HasPrefix(room, "doctor:") {
			doctorRooms[room] = true
		}
	}
	if len(doctorRooms) != 1 || !doctorRooms["doctor:user-doc-1"] {
		t.Fatalf("doctor addressed via inconsistent rooms: %v", pub.rooms)
	}
}

func TestStatusMessageCarriesCancelReason(t *testing.T) {
	_, _, body := statusMessage(testAppt(models.AppointmentCancelled), "doctor unavailable")
	if !strings.Contains(body, "doctor unavailable") {
		t.Fatalf("expected the reason in the message, got %q", body)
	}

	eventType, _, _ := statusMessage(testAppt(models.AppointmentConfirmed), "")
	if eventType != models.EventAppointmentConfirmed {
		t.Fatalf("unexpected event type %q", eventType)
	}
}

func TestNotifyExpiredTargetsPatient(t *testing.T) {
	pub := &memPublisher{}
	store := &memStore{}
	svc := NewDefaultNotificationService(store, pub)

	if err := svc.NotifyExpired(context.Background(), testAppt(models.AppointmentPending)); err != nil {
		t.Fatalf("NotifyExpired: %v", err)
	}
	if len(pub.rooms) != 1 || pub.rooms[0] != "patient:pat-1" {
		t.Fatalf("expected a single patient emission, got %v", pub.rooms)
	}
	if pub.events[0].Type != models.EventAppointmentCancelled {
		t.Fatalf("unexpected event type %q", pub.events[0].Type)
	}
	if !strings.Contains(store.inserted[0].Body, "not available") {
		t.Fatalf("unexpected body %q", store.inserted[0].Body)
	}
}

func TestEmitReturnsFirstErrorButKeepsGoing(t *testing.T) {
	store := &memStore{fail: true}
	pub := &memPublisher{}
	svc := NewDefaultNotificationService(store, pub)

	err := svc.NotifyExpired(context.Background(), testAppt(models.AppointmentPending))
	if err == nil {
		t.Fatal("expected the store error to surface")
	}
	if len(pub.rooms) != 1 {
		t.Fatalf("store failure must not suppress the publish, rooms: %v", pub.rooms)
	}
}
