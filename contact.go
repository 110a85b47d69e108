package talenthub

import (
	"time"
)

// ContactMessage is one entry of the contact form inbox.
type ContactMessage struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	StudentID string `json:"studentId"`

	Category     string `json:"category"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	Priority     string `json:"priority"`
	EmailUpdates bool   `json:"emailUpdates"`

	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

type ContactStore interface {
	Insert(*ContactMessage) error
	List() ([]ContactMessage, error)
}
