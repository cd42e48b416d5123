package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(20)"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	CustomerProfile   *CustomerProfileModel   `gorm:"foreignKey:UserID"`
	DoctorProfile     *DoctorProfileModel     `gorm:"foreignKey:UserID"`
	InfluencerProfile *InfluencerProfileModel `gorm:"foreignKey:UserID"`
	AdminProfile      *AdminProfileModel      `gorm:"foreignKey:UserID"`
	Addresses         []*AddressModel         `gorm:"foreignKey:UserID"`
	Authentications   []AuthenticationModel   `gorm:"foreignKey:UserID"`
	Sessions          []SessionModel          `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CustomerProfileModel mirrors the 'customer_profiles' table. UserID references users.id (UUID).
type CustomerProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// DoctorProfileModel mirrors the 'doctor_profiles' table. UserID references users.id (UUID).
type DoctorProfileModel struct {
	UserID         uuid.UUID `gorm:"primaryKey"`
	Specialization string    `gorm:"type:varchar(100)"`
	LicenseNumber  string    `gorm:"type:varchar(100);not null;unique"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoctorProfileModel) TableName() string {
	return "doctor_profiles"
}

// InfluencerProfileModel mirrors the 'influencer_profiles' table. UserID references users.id (UUID).
type InfluencerProfileModel struct {
	UserID         uuid.UUID `gorm:"primaryKey"`
	ReferralCode   string    `gorm:"type:varchar(50);not null;unique"`
	CommissionRate float64   `gorm:"type:decimal(5,4);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (InfluencerProfileModel) TableName() string {
	return "influencer_profiles"
}

// AdminProfileModel mirrors the 'admin_profiles' table. UserID references users.id (UUID).
type AdminProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	Super     bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminProfileModel) TableName() string {
	return "admin_profiles"
}
