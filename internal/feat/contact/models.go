package contact

import "strings"

type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s Submission) trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

func (s Submission) hasMissingFields() bool {
	return s.Name == "" || s.Email == "" || s.Message == ""
}

type Config struct {
	From string
	To   []string
}
