package services

import (
	"strings"

	"github.com/techspire/talenthub"
	"github.com/techspire/talenthub/errors"
)

type ContactService struct {
	store talenthub.ContactStore
}

func NewContactService(store talenthub.ContactStore) *ContactService {
	return &ContactService{
		store: store,
	}
}

type ContactInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	StudentID string `json:"studentId"`

	Category     string `json:"category"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	Priority     string `json:"priority"`
	EmailUpdates bool   `json:"emailUpdates"`
}

func (s *ContactService) Submit(input ContactInput) (talenthub.ContactMessage, error) {
	if input.Email == "" || input.Subject == "" || input.Message == "" {
		return talenthub.ContactMessage{}, errors.New("please fill in all required fields", errors.BadRequest())
	}
	if !strings.HasSuffix(input.Email, emailDomain) {
		return talenthub.ContactMessage{}, errors.New("please use a valid cps.edu.np email address", errors.BadRequest())
	}

	msg := talenthub.ContactMessage{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		StudentID:    input.StudentID,
		Category:     input.Category,
		Subject:      input.Subject,
		Message:      input.Message,
		Priority:     input.Priority,
		EmailUpdates: input.EmailUpdates,
		Status:       "pending",
	}

	if err := s.store.Insert(&msg); err != nil {
		return talenthub.ContactMessage{}, err
	}

	return msg, nil
}

func (s *ContactService) List() ([]talenthub.ContactMessage, error) {
	return s.store.List()
}
