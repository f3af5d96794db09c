package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "medicore/database/repository/notification"
	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation: it persists
// an inbox notification and publishes the realtime event for every emission.
// A store failure does not stop the publish (and vice versa); the first
// error is returned for the caller to log.
type DefaultNotificationService struct {
	Store  notificationRepo.NotificationStore
	Events EventPublisher
}

func NewDefaultNotificationService(store notificationRepo.NotificationStore, events EventPublisher) *DefaultNotificationService {
	return &DefaultNotificationService{Store: store, Events: events}
}

func (s *DefaultNotificationService) NotifyAppointmentRequest(ctx context.Context, appt *models.Appointment, doctor *models.DoctorProfile, hospital *models.Hospital) error {
	title := "New appointment request"
	body := fmt.Sprintf("Appointment requested for %s at %s.", appt.Date, appt.StartTime)
	event := models.RealtimeEvent{
		Type:          models.EventAppointmentRequest,
		AppointmentID: appt.ID,
		Status:        appt.Status,
		Message:       body,
	}

	var firstErr error
	if err := s.emit(ctx, RoleDoctor, doctor.UserID, models.EventAppointmentRequest, title, body, appt, event); err != nil {
		firstErr = err
	}
	for _, helpdeskID := range hospital.HelpdeskIDs {
		if err := s.emit(ctx, RoleHelpdesk, helpdeskID, models.EventAppointmentRequest, title, body, appt, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *DefaultNotificationService) NotifyStatusChange(ctx context.Context, appt *models.Appointment, doctor *models.DoctorProfile, reason, actorRole string) error {
	eventType, title, body := statusMessage(appt, reason)
	event := models.RealtimeEvent{
		Type:          eventType,
		AppointmentID: appt.ID,
		Status:        appt.Status,
		Message:       body,
	}

	var firstErr error
	if err := s.emit(ctx, RolePatient, appt.PatientID, eventType, title, body, appt, event); err != nil {
		firstErr = err
	}
	// The doctor room is keyed by the account id, same as the request
	// fan-out; addressing the profile id would land in a room no gateway
	// subscribes.
	if actorRole != RolePatient && doctor != nil {
		if err := s.emit(ctx, RoleDoctor, doctor.UserID, eventType, title, body, appt, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	// Generic broadcast for any listener tracking this appointment.
	broadcast := models.RealtimeEvent{
		Type:          models.EventAppointmentStatus,
		AppointmentID: appt.ID,
		Status:        appt.Status,
	}
	if err := s.Events.Publish(ctx, "appointment", appt.ID, broadcast); err != nil {
		utils.GetLogger().Warn("status broadcast failed",
			zap.String("appointmentId", appt.ID), zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *DefaultNotificationService) NotifyExpired(ctx context.Context, appt *models.Appointment) error {
	body := "Your appointment request expired because the doctor is not available."
	event := models.RealtimeEvent{
		Type:          models.EventAppointmentCancelled,
		AppointmentID: appt.ID,
		Status:        models.AppointmentCancelled,
		Message:       body,
	}
	return s.emit(ctx, RolePatient, appt.PatientID, models.EventAppointmentCancelled, "Appointment cancelled", body, appt, event)
}

func (s *DefaultNotificationService) SendReminder(ctx context.Context, payload models.ReminderPayload) error {
	event := models.RealtimeEvent{
		Type:          models.EventAppointmentStatus,
		AppointmentID: payload.AppointmentID,
		Message:       payload.Body,
	}
	appt := &models.Appointment{ID: payload.AppointmentID, PatientID: payload.PatientID}
	return s.emit(ctx, RolePatient, payload.PatientID, models.EventAppointmentStatus, payload.Title, payload.Body, appt, event)
}

// emit persists the inbox row and publishes the realtime event.
func (s *DefaultNotificationService) emit(ctx context.Context, role, userID, eventType, title, body string, appt *models.Appointment, event models.RealtimeEvent) error {
	logger := utils.GetLogger()

	n := &models.Notification{
		ID:     uuid.New().String(),
		UserID: userID,
		Role:   role,
		Type:   eventType,
		Title:  title,
		Body:   body,
		Data: map[string]any{
			"appointmentId": appt.ID,
			"status":        appt.Status,
		},
		CreatedAt: time.Now(),
	}

	var firstErr error
	if err := s.Store.Insert(ctx, n); err != nil {
		logger.Warn("notification store insert failed",
			zap.String("userId", userID), zap.String("type", eventType), zap.Error(err))
		firstErr = err
	}
	if err := s.Events.Publish(ctx, role, userID, event); err != nil {
		logger.Warn("realtime publish failed",
			zap.String("userId", userID), zap.String("type", eventType), zap.Error(err))
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func statusMessage(appt *models.Appointment, reason string) (eventType, title, body string) {
	switch appt.Status {
	case models.AppointmentConfirmed:
		return models.EventAppointmentConfirmed, "Appointment confirmed",
			fmt.Sprintf("Your appointment on %s at %s is confirmed.", appt.Date, appt.StartTime)
	case models.AppointmentCompleted:
		return models.EventAppointmentCompleted, "Appointment completed",
			fmt.Sprintf("Your appointment on %s has been completed.", appt.Date)
	case models.AppointmentCancelled:
		body := fmt.Sprintf("Your appointment on %s at %s was cancelled.", appt.Date, appt.StartTime)
		if reason != "" {
			body = fmt.Sprintf("%s Reason: %s", body, reason)
		}
		return models.EventAppointmentCancelled, "Appointment cancelled", body
	default:
		return models.EventAppointmentStatus, "Appointment update",
			fmt.Sprintf("Your appointment on %s is now %s.", appt.Date, appt.Status)
	}
}
