package types

import "github.com/go-playground/validator/v10"

// CandidateRole represents a role suggestion produced by the model
// collaborator. It is untrusted input: construct it only through the
// payload decoder and validate before scoring.
type CandidateRole struct {
	Title          string   `json:"title" validate:"required,min=1"`
	RequiredSkills []string `json:"required_skills" validate:"required,min=1"`
	Rationale      string   `json:"rationale,omitempty"`
}

// Validate validates the CandidateRole using the validator.
func (r *CandidateRole) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
