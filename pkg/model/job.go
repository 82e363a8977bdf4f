package model

import "time"

type JobStatus string

const (
	JobStatusPending  JobStatus = "pending"
	JobStatusActive   JobStatus = "active"
	JobStatusRejected JobStatus = "rejected"
	JobStatusExpired  JobStatus = "expired"
)

type Job struct {
	JobID      string                 `json:"job_id"`
	EmployerID string                 `json:"employer_id"`
	Title      string                 `json:"title"`
	Status     JobStatus              `json:"status"`
	SalaryMin  *int                   `json:"salary_min"`
	SalaryMax  *int                   `json:"salary_max"`
	Location   *string                `json:"location"`
	Metadata   map[string]interface{} `json:"metadata"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

type PostJobReq struct {
	Title     string  `json:"title" validate:"required"`
	SalaryMin *int    `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax *int    `json:"salary_max" validate:"omitempty,gtefield=SalaryMin"`
	Location  *string `json:"location"`
}

type UpdateJobReq struct {
	Title     *string `json:"title,omitempty"`
	SalaryMin *int    `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax *int    `json:"salary_max,omitempty"`
	Location  *string `json:"location,omitempty"`
}

type ListJobsQuery struct {
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Search   *string    `json:"search,omitempty"`
	Status   *JobStatus `json:"status,omitempty"`
}
