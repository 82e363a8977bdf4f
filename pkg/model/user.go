package model

import "time"

type UserRole string

const (
	UserRoleSeeker   UserRole = "seeker"
	UserRoleEmployer UserRole = "employer"
)

type UserStatus string

const (
	UserStatusActive     UserStatus = "active"
	UserStatusIncomplete UserStatus = "incomplete"
	UserStatusBlocked    UserStatus = "blocked"
)

// UserDetails is the single session record the platform returns after OTP
// verification or registration. It is persisted wholesale on the device and
// replaced wholesale on every login or profile update.
type UserDetails struct {
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone"`
	Email       *string    `json:"email"`
	Role        UserRole   `json:"role"`
	Status      UserStatus `json:"status"`
	CompanyName *string    `json:"company_name"`
	CreatedAt   time.Time  `json:"created_at"`
}

type RequestOTPReq struct {
	Phone string `json:"phone" validate:"required,e164"`
}

type VerifyOTPReq struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type RegisterReq struct {
	Name        string   `json:"name" validate:"required"`
	Phone       string   `json:"phone" validate:"required,e164"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Role        UserRole `json:"role" validate:"required,oneof=seeker employer"`
	CompanyName *string  `json:"company_name" validate:"required_if=Role employer"`
}

type UpdateProfileReq struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	CompanyName *string `json:"company_name,omitempty"`
}

// AuthRes pairs the session record with the server-issued access token.
type AuthRes struct {
	User        UserDetails `json:"user"`
	AccessToken string      `json:"access_token"`
}
