package reference

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const cnpjLength = 14

// Client is a customer organization, unique by the digits of its CNPJ.
type Client struct {
	ID         string
	Name       string
	CNPJ       string
	CNPJDigits string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ClientChanges is a partial update; nil fields are left alone.
type ClientChanges struct {
	Name   *string
	CNPJ   *string
	Active *bool
}

// CNPJDigits strips the punctuation of a formatted CNPJ such as 11.222.333/0001-81.
func CNPJDigits(cnpj string) string {
	var b strings.Builder
	for _, r := range cnpj {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func NewClient(name, cnpj string, now time.Time) (*Client, error) {
	c := &Client{Active: true, CreatedAt: now, UpdatedAt: now}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	if err := c.setCNPJ(cnpj); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply is all-or-nothing: a failing field leaves the client untouched.
func (c *Client) Apply(ch ClientChanges, now time.Time) error {
	next := *c
	if ch.Name != nil {
		if err := next.setName(*ch.Name); err != nil {
			return err
		}
	}
	if ch.CNPJ != nil {
		if err := next.setCNPJ(*ch.CNPJ); err != nil {
			return err
		}
	}
	if ch.Active != nil {
		next.Active = *ch.Active
	}
	next.UpdatedAt = now
	*c = next
	return nil
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 {
		return NewDomainError("client name must have at least 2 characters")
	}
	c.Name = name
	return nil
}

func (c *Client) setCNPJ(cnpj string) error {
	digits := CNPJDigits(cnpj)
	if len(digits) != cnpjLength {
		return NewDomainError("CNPJ must have 14 digits")
	}
	c.CNPJ = strings.TrimSpace(cnpj)
	c.CNPJDigits = digits
	return nil
}

func (c *Client) RecordID() string      { return c.ID }
func (c *Client) SetRecordID(id string) { c.ID = id }
func (c *Client) UniqueKey() string     { return c.CNPJDigits }
func (c *Client) IsActive() bool        { return c.Active }
