// Package models holds the domain types of the marketplace: accounts, bookings,
// sessions, verification tokens and the teacher search filter.
package models

import "time"

// Role is the kind of account.
type Role string

// Account roles.
const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

// IsLearner reports whether the role belongs to the users collection.
func (r Role) IsLearner() bool {
	return r == RoleStudent || r == RoleParent
}

// Kind names the table an account with this role lives in.
func (r Role) Kind() AccountKind {
	if r == RoleTeacher {
		return KindTeacher
	}
	return KindUser
}

// Curricula a teacher can follow.
const (
	CurriculumGES     = "GES Curriculum"
	CurriculumBritish = "British Curriculum"
)

// Teaching modes.
const (
	TeachingModeOnline   = "Online"
	TeachingModeInPerson = "In-person"
	TeachingModeBoth     = "Both"
)

// Credentials is the part of an account the login flow works on.
type Credentials struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	Role         Role
	FirstName    string
	LastName     string
}

// Summary is the safe projection returned by login.
type Summary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
}

// Summary projects the credentials without anything secret.
func (c Credentials) Summary() Summary {
	return Summary{FirstName: c.FirstName, LastName: c.LastName, UserName: c.UserName}
}

// Slot is a weekly time window.
type Slot struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// Teacher is a tutor profile. PasswordHash is never serialized.
type Teacher struct {
	ID                     string    `json:"id"`
	FirstName              string    `json:"firstName"`
	LastName               string    `json:"lastName"`
	UserName               string    `json:"userName"`
	Email                  string    `json:"email"`
	PasswordHash           string    `json:"-"`
	PhoneNumber            string    `json:"phoneNumber"`
	Subjects               []string  `json:"subjects"`
	Area                   []string  `json:"area"`
	Curriculum             string    `json:"curriculum"`
	Grade                  []string  `json:"grade"`
	Experience             string    `json:"experience"`
	Availability           []Slot    `json:"availability"`
	TeachingMode           string    `json:"teachingMode"`
	CostPerHour            float64   `json:"costPerHour"`
	Qualifications         []string  `json:"qualifications"`
	SpecialNeedsExperience bool      `json:"specialNeedsExperience"`
	Verified               bool      `json:"verified"`
	Role                   Role      `json:"role"`
	Bookings               []Booking `json:"bookings,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// TeacherRegistration is the payload of POST /register.
type TeacherRegistration struct {
	FirstName              string   `json:"firstName" validate:"required,max=100"`
	LastName               string   `json:"lastName" validate:"required,max=100"`
	UserName               string   `json:"userName" validate:"required,min=3,max=50"`
	Email                  string   `json:"email" validate:"required,email"`
	Password               string   `json:"password" validate:"required,min=6,maxbytes=72"`
	PhoneNumber            string   `json:"phoneNumber" validate:"required"`
	Subjects               []string `json:"subjects" validate:"required,min=1,dive,required"`
	Area                   []string `json:"area" validate:"required,min=1,dive,required"`
	Curriculum             string   `json:"curriculum" validate:"omitempty,curriculum"`
	Grade                  []string `json:"grade" validate:"required,min=1,dive,required"`
	Experience             string   `json:"experience" validate:"required"`
	Availability           []Slot   `json:"availability" validate:"omitempty,dive"`
	TeachingMode           string   `json:"teachingMode" validate:"required,oneof=Online In-person Both"`
	CostPerHour            float64  `json:"costPerHour" validate:"gte=0"`
	Qualifications         []string `json:"qualifications" validate:"required,min=1,dive,required"`
	SpecialNeedsExperience bool     `json:"specialNeedsExperience"`
}

// Teacher builds the record to persist; the caller supplies the password digest.
func (r TeacherRegistration) Teacher(passwordHash string) Teacher {
	curriculum := r.Curriculum
	if curriculum == "" {
		curriculum = CurriculumGES
	}
	return Teacher{
		FirstName:              r.FirstName,
		LastName:               r.LastName,
		UserName:               r.UserName,
		Email:                  r.Email,
		PasswordHash:           passwordHash,
		PhoneNumber:            r.PhoneNumber,
		Subjects:               r.Subjects,
		Area:                   r.Area,
		Curriculum:             curriculum,
		Grade:                  r.Grade,
		Experience:             r.Experience,
		Availability:           r.Availability,
		TeachingMode:           r.TeachingMode,
		CostPerHour:            r.CostPerHour,
		Qualifications:         r.Qualifications,
		SpecialNeedsExperience: r.SpecialNeedsExperience,
		Role:                   RoleTeacher,
	}
}

// TeacherUpdate is the payload of PUT /teachers/{id}. Absent fields stay untouched.
type TeacherUpdate struct {
	FirstName              *string   `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName               *string   `json:"lastName" validate:"omitempty,min=1,max=100"`
	PhoneNumber            *string   `json:"phoneNumber" validate:"omitempty,min=1"`
	Subjects               *[]string `json:"subjects" validate:"omitempty,min=1,dive,required"`
	Area                   *[]string `json:"area" validate:"omitempty,min=1,dive,required"`
	Curriculum             *string   `json:"curriculum" validate:"omitempty,curriculum"`
	Grade                  *[]string `json:"grade" validate:"omitempty,min=1,dive,required"`
	Experience             *string   `json:"experience" validate:"omitempty,min=1"`
	Availability           *[]Slot   `json:"availability" validate:"omitempty,dive"`
	TeachingMode           *string   `json:"teachingMode" validate:"omitempty,oneof=Online In-person Both"`
	CostPerHour            *float64  `json:"costPerHour" validate:"omitempty,gte=0"`
	Qualifications         *[]string `json:"qualifications" validate:"omitempty,min=1,dive,required"`
	SpecialNeedsExperience *bool     `json:"specialNeedsExperience"`
}

// IsEmpty reports whether the update carries no field at all.
func (u TeacherUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.PhoneNumber == nil &&
		u.Subjects == nil && u.Area == nil && u.Curriculum == nil && u.Grade == nil &&
		u.Experience == nil && u.Availability == nil && u.TeachingMode == nil &&
		u.CostPerHour == nil && u.Qualifications == nil && u.SpecialNeedsExperience == nil
}

// User is a student or parent account. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PhoneNumber  string    `json:"phoneNumber"`
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Verified     bool      `json:"verified"`
	Bookings     []Booking `json:"bookings,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserRegistration is the payload of POST /users/register.
type UserRegistration struct {
	FirstName   string `json:"firstName" validate:"required,max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	UserName    string `json:"userName" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,maxbytes=72"`
	Role        Role   `json:"role" validate:"omitempty,oneof=student parent"`
}

// User builds the record to persist; the caller supplies the password digest.
func (r UserRegistration) User(passwordHash string) User {
	role := r.Role
	if role == "" {
		role = RoleStudent
	}
	return User{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PhoneNumber:  r.PhoneNumber,
		UserName:     r.UserName,
		Email:        r.Email,
		PasswordHash: passwordHash,
		Role:         role,
	}
}

// Login is the payload of the login and token endpoints. Either identifier may be used.
type Login struct {
	UserName string `json:"userName" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// RegistrationResult is returned by both registration endpoints. A failed
// verification mail does not undo the registration.
type RegistrationResult struct {
	AccountID             string `json:"id"`
	VerificationEmailSent bool   `json:"verificationEmailSent"`
}
