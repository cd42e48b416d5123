package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wellkart/internal/delivery/http/response"
	"wellkart/internal/domain/entity"
	"wellkart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClinicHandler holds dependencies for the doctor-portal handlers.
// Every route resolves the acting doctor from the authenticated user.
type ClinicHandler struct {
	uc     usecase.ClinicUsecase
	logger *slog.Logger
}

// NewClinicHandler is the constructor for ClinicHandler, injected by Fx.
func NewClinicHandler(uc usecase.ClinicUsecase, logger *slog.Logger) *ClinicHandler {
	return &ClinicHandler{uc: uc, logger: logger}
}

// ListPatients returns the doctor's patient roster.
func (h *ClinicHandler) ListPatients(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	patients, err := h.uc.ListPatients(c.Request().Context(), doctorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patients, "Patients retrieved successfully")
}

// GetPatient returns one of the doctor's patients.
func (h *ClinicHandler) GetPatient(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	patientID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.GetPatient(c.Request().Context(), doctorID, patientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patient, "Patient retrieved successfully")
}

// CreatePatient adds a patient to the doctor's roster.
func (h *ClinicHandler) CreatePatient(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.PatientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.CreatePatient(c.Request().Context(), doctorID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, patient, "Patient created successfully")
}

// UpdatePatient replaces a patient record's fields.
func (h *ClinicHandler) UpdatePatient(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	patientID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.PatientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.UpdatePatient(c.Request().Context(), doctorID, patientID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patient, "Patient updated successfully")
}

// DeletePatient removes a patient from the doctor's roster.
func (h *ClinicHandler) DeletePatient(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	patientID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeletePatient(c.Request().Context(), doctorID, patientID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Patient deleted"}, "Patient deleted successfully")
}

// ListAppointments returns the doctor's appointments in an optional time window.
func (h *ClinicHandler) ListAppointments(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var from, to time.Time
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid from timestamp")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid to timestamp")
		}
	}

	appointments, err := h.uc.ListAppointments(c.Request().Context(), doctorID, from, to)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "Appointments retrieved successfully")
}

// GetAppointment returns one of the doctor's appointments.
func (h *ClinicHandler) GetAppointment(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	appointmentID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.GetAppointment(c.Request().Context(), doctorID, appointmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment retrieved successfully")
}

// BookAppointment books a slot for one of the doctor's patients.
func (h *ClinicHandler) BookAppointment(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.AppointmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.BookAppointment(c.Request().Context(), doctorID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, appointment, "Appointment booked successfully")
}

// RescheduleAppointment moves an appointment to a new slot.
func (h *ClinicHandler) RescheduleAppointment(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	appointmentID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.AppointmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.RescheduleAppointment(c.Request().Context(), doctorID, appointmentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment rescheduled successfully")
}

// SetAppointmentStatus moves an appointment along its status machine.
func (h *ClinicHandler) SetAppointmentStatus(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	appointmentID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input struct {
		Status entity.AppointmentStatus `json:"status" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.SetAppointmentStatus(c.Request().Context(), doctorID, appointmentID, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment status updated successfully")
}

// DeleteAppointment removes an appointment.
func (h *ClinicHandler) DeleteAppointment(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	appointmentID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteAppointment(c.Request().Context(), doctorID, appointmentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Appointment deleted"}, "Appointment deleted successfully")
}

// GetPrescription returns one of the doctor's prescriptions.
func (h *ClinicHandler) GetPrescription(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	prescriptionID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	prescription, err := h.uc.GetPrescription(c.Request().Context(), doctorID, prescriptionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescription, "Prescription retrieved successfully")
}

// ListPrescriptionsByPatient returns a patient's prescription history.
func (h *ClinicHandler) ListPrescriptionsByPatient(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	patientID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	prescriptions, err := h.uc.ListPrescriptionsByPatient(c.Request().Context(), doctorID, patientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescriptions, "Prescriptions retrieved successfully")
}

// IssuePrescription issues a prescription for one of the doctor's patients.
func (h *ClinicHandler) IssuePrescription(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.PrescriptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prescription input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	prescription, err := h.uc.IssuePrescription(c.Request().Context(), doctorID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, prescription, "Prescription issued successfully")
}

// UpdatePrescription revises a prescription.
func (h *ClinicHandler) UpdatePrescription(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	prescriptionID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.PrescriptionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prescription input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	prescription, err := h.uc.UpdatePrescription(c.Request().Context(), doctorID, prescriptionID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescription, "Prescription updated successfully")
}

// DeletePrescription removes a prescription.
func (h *ClinicHandler) DeletePrescription(c echo.Context) error {
	doctorID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	prescriptionID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeletePrescription(c.Request().Context(), doctorID, prescriptionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Prescription deleted"}, "Prescription deleted successfully")
}
