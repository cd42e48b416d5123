package impl

import (
	"context"
	"testing"
	"time"

	"wellkart/internal/domain/entity"
	domainerrors "wellkart/internal/domain/errors"
	"wellkart/internal/domain/repository"
	mockRepo "wellkart/internal/mocks/repository"
	"wellkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// clinicServiceFixtures holds all test dependencies for clinic service tests.
type clinicServiceFixtures struct {
	service          usecase.ClinicUsecase
	txManager        *mockRepo.MockTransactionManager
	patientRepo      *mockRepo.MockPatientRepository
	appointmentRepo  *mockRepo.MockAppointmentRepository
	prescriptionRepo *mockRepo.MockPrescriptionRepository
}

func createTestClinicService(t *testing.T) clinicServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	patientRepo := mockRepo.NewMockPatientRepository(t)
	appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	prescriptionRepo := mockRepo.NewMockPrescriptionRepository(t)

	service := NewClinicService(ClinicServiceParams{
		TxManager:        txManager,
		PatientRepo:      patientRepo,
		AppointmentRepo:  appointmentRepo,
		PrescriptionRepo: prescriptionRepo,
		Logger:           newDiscardLogger(),
	})

	return clinicServiceFixtures{
		service:          service,
		txManager:        txManager,
		patientRepo:      patientRepo,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

func TestClinicService_GetPatient_ForeignDoctorHidden(t *testing.T) {
	fx := createTestClinicService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	patientID := uuid.New()
	patient := &entity.Patient{ID: patientID, DoctorID: uuid.New(), Name: "Ravi Kumar"}

	fx.patientRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)

	got, err := fx.service.GetPatient(ctx, doctorID, patientID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
}

func TestClinicService_CreatePatient_Success(t *testing.T) {
	fx := createTestClinicService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	input := &usecase.PatientInput{Name: "Ravi Kumar", Phone: "+919876543210", Gender: "male"}

	fx.patientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Patient")).
		RunAndReturn(func(ctx context.Context, patient *entity.Patient) error {
			assert.Equal(t, doctorID, patient.DoctorID)
			assert.Equal(t, "Ravi Kumar", patient.Name)
			patient.ID = uuid.New()

			return nil
		})

	patient, err := fx.service.CreatePatient(ctx, doctorID, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, patient.ID)
}

func TestClinicService_BookAppointment_Success(t *testing.T) {
	fx := createTestClinicService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	patientID := uuid.New()
	patient := &entity.Patient{ID: patientID, DoctorID: doctorID}
	startsAt := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	input := &usecase.AppointmentInput{
		PatientID: patientID,
		StartsAt:  startsAt,
		Duration:  30 * time.Minute,
		Reason:    "follow-up",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPatientRepo := mockRepo.NewMockPatientRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().PatientRepo().Return(mockPatientRepo)
			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)

			mockPatientRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)
			mockAppointmentRepo.EXPECT().
				FindOverlapping(ctx, doctorID, startsAt, startsAt.Add(30*time.Minute), uuid.Nil).
				Return(nil, nil)
			mockAppointmentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Appointment")).
				RunAndReturn(func(ctx context.Context, appointment *entity.Appointment) error {
					appointment.ID = uuid.New()

					return nil
				})

			return fn(mockFactory)
		})

	booked, err := fx.service.BookAppointment(ctx, doctorID, input)

	require.NoError(t, err)
	require.NotNil(t, booked)
	assert.Equal(t, entity.AppointmentStatusScheduled, booked.Status)
	assert.Equal(t, doctorID, booked.DoctorID)
	assert.Equal(t, startsAt, booked.StartsAt)
}

func TestClinicService_BookAppointment_SlotConflict(t *testing.T) {
	fx := createTestClinicService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	patientID := uuid.New()
	patient := &entity.Patient{ID: patientID, DoctorID: doctorID}
	startsAt := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	input := &usecase.AppointmentInput{
		PatientID: patientID,
		StartsAt:  startsAt,
		Duration:  30 * time.Minute,
	}
	existing := []*entity.Appointment{{ID: uuid.New(), DoctorID: doctorID}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPatientRepo := mockRepo.NewMockPatientRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().PatientRepo().Return(mockPatientRepo)
			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)

			mockPatientRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)
			mockAppointmentRepo.EXPECT().
				FindOverlapping(ctx, doctorID, startsAt, startsAt.Add(30*time.Minute), uuid.Nil).
				Return(existing, nil)

			return fn(mockFactory)
		})

	booked, err := fx.service.BookAppointment(ctx, doctorID, input)

	require.Error(t, err)
	assert.Nil(t, booked)
	assert.True(t, errors.Is(err, domainerrors.ErrAppointmentConflict))
}

func TestClinicService_BookAppointment_NonPositiveDuration(t *testing.T) {
	fx := createTestClinicService(t)

	booked, err := fx.service.BookAppointment(context.Background(), uuid.New(), &usecase.AppointmentInput{
		PatientID: uuid.New(),
		StartsAt:  time.Now(),
	})

	require.Error(t, err)
	assert.Nil(t, booked)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestClinicService_SetAppointmentStatus_ReactivationChecksOverlap(t *testing.T) {
	fx := createTestClinicService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	appointmentID := uuid.New()
	startsAt := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	appointment := &entity.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		StartsAt: startsAt,
		Duration: 30 * time.Minute,
		Status:   entity.AppointmentStatusCancelled,
	}
	blocking := []*entity.Appointment{{ID: uuid.New(), DoctorID: doctorID}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
			mockAppointmentRepo.EXPECT().FindByID(ctx, appointmentID).Return(appointment, nil)
			mockAppointmentRepo.EXPECT().
				FindOverlapping(ctx, doctorID, startsAt, startsAt.Add(30*time.Minute), appointmentID).
				Return(blocking, nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.SetAppointmentStatus(ctx, doctorID, appointmentID, entity.AppointmentStatusScheduled)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAppointmentConflict))
}

func TestClinicService_SetAppointmentStatus_Completed(t *testing.T) {
	fx := createTestClinicService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	appointmentID := uuid.New()
	appointment := &entity.Appointment{
		ID:       appointmentID,
		DoctorID: doctorID,
		Status:   entity.AppointmentStatusScheduled,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().AppointmentRepo().Return(mockAppointmentRepo)
			mockAppointmentRepo.EXPECT().FindByID(ctx, appointmentID).Return(appointment, nil)
			mockAppointmentRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Appointment")).
				RunAndReturn(func(ctx context.Context, updated *entity.Appointment) error {
					assert.Equal(t, entity.AppointmentStatusCompleted, updated.Status)

					return nil
				})

			return fn(mockFactory)
		})

	updated, err := fx.service.SetAppointmentStatus(ctx, doctorID, appointmentID, entity.AppointmentStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, updated.Status)
}

func TestClinicService_IssuePrescription_Success(t *testing.T) {
	fx := createTestClinicService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	patientID := uuid.New()
	patient := &entity.Patient{ID: patientID, DoctorID: doctorID}

	input := &usecase.PrescriptionInput{
		PatientID: patientID,
		Medications: []*usecase.MedicationInput{
			{Name: "Amoxicillin", Dosage: "500mg", Frequency: "twice daily", Duration: "5 days"},
		},
		Notes: "Take after meals.",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPatientRepo := mockRepo.NewMockPatientRepository(t)
			mockPrescriptionRepo := mockRepo.NewMockPrescriptionRepository(t)

			mockFactory.EXPECT().PatientRepo().Return(mockPatientRepo)
			mockFactory.EXPECT().PrescriptionRepo().Return(mockPrescriptionRepo)

			mockPatientRepo.EXPECT().FindByID(ctx, patientID).Return(patient, nil)
			mockPrescriptionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Prescription")).
				RunAndReturn(func(ctx context.Context, prescription *entity.Prescription) error {
					assert.Equal(t, doctorID, prescription.DoctorID)
					assert.Len(t, prescription.Medications, 1)
					assert.False(t, prescription.IssuedAt.IsZero())
					prescription.ID = uuid.New()

					return nil
				})

			return fn(mockFactory)
		})

	issued, err := fx.service.IssuePrescription(ctx, doctorID, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, issued.ID)
}

func TestClinicService_IssuePrescription_NoMedications(t *testing.T) {
	fx := createTestClinicService(t)

	issued, err := fx.service.IssuePrescription(context.Background(), uuid.New(), &usecase.PrescriptionInput{
		PatientID: uuid.New(),
	})

	require.Error(t, err)
	assert.Nil(t, issued)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestClinicService_ListPrescriptionsByPatient_ForeignPatientHidden(t *testing.T) {
	fx := createTestClinicService(t)

	ctx := context.Background()
	doctorID := uuid.New()
	patientID := uuid.New()

	fx.patientRepo.EXPECT().
		FindByID(ctx, patientID).
		Return(nil, repository.ErrPatientNotFound)

	prescriptions, err := fx.service.ListPrescriptionsByPatient(ctx, doctorID, patientID)

	require.Error(t, err)
	assert.Nil(t, prescriptions)
	assert.True(t, errors.Is(err, domainerrors.ErrPatientNotFound))
}
