package models

// Assessment is one completed, persisted questionnaire record.
// It is created once on submit and never mutated afterwards.
type Assessment struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	CompanyName string            `json:"companyName"`
	Answers     map[string]string `json:"answers"`
	Score       int               `json:"score"`
	CompletedAt string            `json:"completedAt"`
}
