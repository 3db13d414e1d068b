package core

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Address is a plain value record; one client owns each copy.
type Address struct {
	Street       string `validate:"required"`
	Number       int    `validate:"gte=0"`
	Neighborhood string `validate:"required"`
	City         string `validate:"required"`
	State        string `validate:"required"`
	PostalCode   string `validate:"required"`
}

// Client holds personal data and the accounts it is titular of. The
// account list is shared with the bank registry: both hold references to
// the same account values.
type Client struct {
	Name      string    `validate:"required"`
	TaxID     string    `validate:"required,len=11,numeric"`
	Addresses []Address `validate:"dive"`

	accounts []Account
}

// NewClient validates the personal data and returns a client with no
// accounts. The tax id is a bare 11-digit CPF.
func NewClient(name, taxID string, addresses ...Address) (*Client, error) {
	c := &Client{
		Name:      name,
		TaxID:     taxID,
		Addresses: addresses,
	}

	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}

	return c, nil
}

// AddAccount appends to the owned list. No deduplication is performed.
func (c *Client) AddAccount(a Account) {
	c.accounts = append(c.accounts, a)
}

// RemoveAccount drops the first owned account with the given number and
// reports whether one was found. The account stays in the bank registry.
func (c *Client) RemoveAccount(number string) bool {
	for i, a := range c.accounts {
		if a.Number() == number {
			c.accounts = append(c.accounts[:i], c.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// Accounts returns the owned list itself, not a copy.
func (c *Client) Accounts() []Account {
	return c.accounts
}
