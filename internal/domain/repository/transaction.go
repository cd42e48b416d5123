package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a single transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// AuthRepo returns an AuthRepository bound to the current transaction.
	AuthRepo() AuthRepository

	// SessionRepo returns a SessionRepository bound to the current transaction.
	SessionRepo() SessionRepository

	// AddressRepo returns an AddressRepository bound to the current transaction.
	AddressRepo() AddressRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository

	// CouponRepo returns a CouponRepository bound to the current transaction.
	CouponRepo() CouponRepository

	// PatientRepo returns a PatientRepository bound to the current transaction.
	PatientRepo() PatientRepository

	// AppointmentRepo returns an AppointmentRepository bound to the current transaction.
	AppointmentRepo() AppointmentRepository

	// PrescriptionRepo returns a PrescriptionRepository bound to the current transaction.
	PrescriptionRepo() PrescriptionRepository

	// LeadRepo returns a LeadRepository bound to the current transaction.
	LeadRepo() LeadRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository

	// SettingRepo returns a SettingRepository bound to the current transaction.
	SettingRepo() SettingRepository
}
