package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	patientRepo "medicore/database/repository/patient"

	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	hospitalRepo "medicore/database/repository/hospital"
	"medicore/models"
	"medicore/services/scheduling"
	"medicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HourlyAvailability resolves the doctor's working window for the date and
// returns the hour-bucket capacity view overlaid with current reservations.
func (s *DefaultBookingService) HourlyAvailability(ctx context.Context, doctorID, hospitalID, date string) ([]models.HourBlock, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	hospitalID, err = s.resolveHospitalID(doctor, hospitalID)
	if err != nil {
		return nil, err
	}

	window, err := s.resolveWindow(doctor, hospitalID, date)
	if err != nil {
		return nil, err
	}

	existing, err := s.Appointments.ListForSlotGrid(ctx, doctorID, hospitalID, date)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	return scheduling.BuildHourlyView(window, existing, s.SlotMinutes, s.HourlyLimit), nil
}

// Book runs a booking attempt end-to-end. Steps run strictly in order and
// each failure is a hard stop; the storage-level unique index behind
// Appointments.Create is the only correctness boundary under concurrency.
func (s *DefaultBookingService) Book(ctx context.Context, patientID string, input models.BookingInput) (*models.Appointment, error) {
	logger := utils.GetLogger()

	doctor, err := s.Doctors.GetByID(ctx, input.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}

	if doctor.UserID == patientID {
		return nil, ErrSelfBooking
	}

	hospitalID, err := s.resolveHospitalID(doctor, input.HospitalID)
	if err != nil {
		return nil, err
	}
	hospital, err := s.Hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		if errors.Is(err, hospitalRepo.ErrNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}

	window, err := s.resolveWindow(doctor, hospitalID, input.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.Appointments.ListForSlotGrid(ctx, doctor.ID, hospitalID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	slot, err := scheduling.ResolveBookingRequest(window, existing, input.TimeSlot, s.SlotMinutes)
	if err != nil {
		return nil, err
	}

	// Authoritative double-booking re-check. The allocator's view can be
	// stale under concurrent requests; the unique index on the insert below
	// is what actually decides ties.
	if _, err := s.Appointments.FindActiveBySlot(ctx, doctor.ID, hospitalID, input.Date, slot.StartLabel()); err == nil {
		return nil, ErrSlotTaken
	} else if !errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, err
	}

	mrn, err := s.resolveMRN(ctx, patientID, hospital)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:             uuid.New().String(),
		PatientID:      patientID,
		DoctorID:       doctor.ID,
		HospitalID:     hospitalID,
		Date:           input.Date,
		StartTime:      slot.StartLabel(),
		EndTime:        slot.EndLabel(),
		Status:         models.AppointmentPending,
		Type:           input.Type,
		Urgency:        input.Urgency,
		Symptoms:       input.Symptoms,
		Reason:         input.Reason,
		MRN:            mrn,
		PatientDetails: input.Patient,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotConflict) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	// The reservation is committed; notification failures are logged and
	// swallowed, never surfaced as a booking failure.
	if err := s.Notifier.NotifyAppointmentRequest(ctx, appt, doctor, hospital); err != nil {
		logger.Warn("appointment request notification failed",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}

	return appt, nil
}

func (s *DefaultBookingService) resolveHospitalID(doctor *models.DoctorProfile, hospitalID string) (string, error) {
	if hospitalID != "" {
		return hospitalID, nil
	}
	if len(doctor.Hospitals) == 0 {
		return "", ErrHospitalRequired
	}
	return doctor.Hospitals[0].HospitalID, nil
}

func (s *DefaultBookingService) resolveWindow(doctor *models.DoctorProfile, hospitalID, date string) (scheduling.Window, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return scheduling.Window{}, ErrInvalidDate
	}

	var entries []models.ScheduleEntry
	if aff := doctor.AffiliationFor(hospitalID); aff != nil {
		entries = aff.Schedule
	}
	return scheduling.ResolveWindow(entries, doctor.Leaves, day)
}

// resolveMRN reuses the patient's record at this hospital, stamping the
// visit time, or mints and persists a fresh MRN on first contact.
func (s *DefaultBookingService) resolveMRN(ctx context.Context, patientID string, hospital *models.Hospital) (string, error) {
	patient, err := s.Patients.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, patientRepo.ErrNotFound) {
			// Staff-entered walk-in without a profile: mint an MRN for the
			// appointment record only.
			return MintMRN(hospital.Name), nil
		}
		return "", err
	}

	now := time.Now()
	if rec := patient.RecordFor(hospital.ID); rec != nil {
		if err := s.Patients.TouchLastVisit(ctx, patientID, hospital.ID, now); err != nil {
			utils.GetLogger().Warn("failed to stamp last visit",
				zap.String("patientId", patientID), zap.Error(err))
		}
		return rec.MRN, nil
	}

	mrn := MintMRN(hospital.Name)
	added, err := s.Patients.AddHospitalRecord(ctx, patientID, models.HospitalRecord{
		HospitalID: hospital.ID,
		MRN:        mrn,
		LastVisit:  now,
	})
	if err != nil {
		return "", err
	}
	if !added {
		// Lost a race with a concurrent booking that registered the record
		// first; reuse whatever it minted.
		fresh, err := s.Patients.GetByID(ctx, patientID)
		if err != nil {
			return "", err
		}
		if rec := fresh.RecordFor(hospital.ID); rec != nil {
			return rec.MRN, nil
		}
	}
	return mrn, nil
}
