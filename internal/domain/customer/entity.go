package customer

import (
	"regexp"
	"strings"

	"room-booking/internal/pkg/errs"
)

var (
	ErrEmptyFirstName = errs.Validation("First Name is required")
	ErrEmptyLastName  = errs.Validation("Last Name is required")
	ErrEmptyEmail     = errs.Validation("Email is required")
	ErrInvalidEmail   = errs.Validation("Email is not a valid address")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Params struct {
	FirstName string
	LastName  string
	Email     string
	IsMinor   bool
	IsBanned  bool
	Notes     *string
}

type Customer struct {
	id        int64
	firstName string
	lastName  string
	email     string
	isMinor   bool
	isBanned  bool
	notes     *string
}

func NewCustomer(p Params) (*Customer, error) {
	c := &Customer{}
	if err := c.apply(p); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCustomer(id int64, p Params) *Customer {
	return &Customer{
		id:        id,
		firstName: p.FirstName,
		lastName:  p.LastName,
		email:     p.Email,
		isMinor:   p.IsMinor,
		isBanned:  p.IsBanned,
		notes:     p.Notes,
	}
}

func (c *Customer) Update(p Params) error {
	next := *c
	if err := next.apply(p); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Customer) apply(p Params) error {
	first := strings.TrimSpace(p.FirstName)
	if first == "" {
		return ErrEmptyFirstName
	}
	last := strings.TrimSpace(p.LastName)
	if last == "" {
		return ErrEmptyLastName
	}
	email, err := NormalizeEmail(p.Email)
	if err != nil {
		return err
	}
	var notes *string
	if p.Notes != nil && strings.TrimSpace(*p.Notes) != "" {
		n := strings.TrimSpace(*p.Notes)
		notes = &n
	}
	c.firstName = first
	c.lastName = last
	c.email = email
	c.isMinor = p.IsMinor
	c.isBanned = p.IsBanned
	c.notes = notes
	return nil
}

// NormalizeEmail trims and lowercases an address so lookups match regardless of case.
func NormalizeEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyEmail
	}
	if !emailRegex.MatchString(s) {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(s), nil
}

func (c *Customer) ID() int64         { return c.id }
func (c *Customer) FirstName() string { return c.firstName }
func (c *Customer) LastName() string  { return c.lastName }
func (c *Customer) Email() string     { return c.email }
func (c *Customer) IsMinor() bool     { return c.isMinor }
func (c *Customer) IsBanned() bool    { return c.isBanned }
func (c *Customer) Notes() *string    { return c.notes }
