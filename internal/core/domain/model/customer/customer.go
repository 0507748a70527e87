// Package customer holds the Customer entity resolved by document number when
// an order is placed.
package customer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"store/internal/pkg/errs"
)

// DocumentLength is the length of the national identifier customers are registered with.
const DocumentLength = 11

// Customer is the buyer an order is placed for. Orders borrow it read-only.
type Customer struct {
	document string
	name     string
	email    string
}

// NewCustomer builds a Customer. The document must be exactly DocumentLength
// characters and the name must not be empty; e-mail is optional.
func NewCustomer(document, name, email string) (*Customer, error) {
	c := &Customer{email: email}

	if err := errors.Join(
		c.setDocument(document),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Document() string {
	return c.document
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) setDocument(document string) error {
	if document == "" {
		return errs.NewValueIsRequiredError("document")
	}
	if n := utf8.RuneCountInString(document); n != DocumentLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"document",
			fmt.Errorf("%d characters, want %d", n, DocumentLength),
		)
	}
	c.document = document
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
