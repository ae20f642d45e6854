// Package dialog defines the contract between the API and whatever
// front end renders modal dialogs. The server never renders anything;
// it only hands out descriptors.
package dialog

import (
	"errors"

	"gamestore/models"
)

type Kind string

const (
	KindError   Kind = "error"
	KindConfirm Kind = "confirm"
	KindInfo    Kind = "info"
)

// Descriptor describes one dialog to open. OnConfirm is only meaningful
// for confirm dialogs and is never serialized.
type Descriptor struct {
	Title     string `json:"title,omitempty"`
	Body      string `json:"body"`
	Kind      Kind   `json:"kind"`
	OnConfirm func() `json:"-"`
}

// Dialog is implemented by the rendering side.
type Dialog interface {
	Open(d Descriptor)
	Close()
}

// FromError maps a store failure to the error dialog shown to the user.
func FromError(err error) Descriptor {
	body := "Something went wrong. Please try again."
	switch {
	case errors.Is(err, models.ErrOutOfStock):
		body = "This product is out of stock."
	case errors.Is(err, models.ErrInsufficientFunds):
		body = "Insufficient funds to complete the transaction."
	case errors.Is(err, models.ErrInvalidAmount):
		body = "The amount must be a positive number."
	case errors.Is(err, models.ErrAccountBanned):
		body = "This account has been banned."
	case errors.Is(err, models.ErrProductNotFound):
		body = "Could not find this product."
	}
	return Descriptor{Title: "Error", Body: body, Kind: KindError}
}

// Info builds an informational dialog, e.g. the post-purchase receipt.
func Info(title, body string) Descriptor {
	return Descriptor{Title: title, Body: body, Kind: KindInfo}
}

// Confirm builds a confirmation dialog around an action.
func Confirm(body string, onConfirm func()) Descriptor {
	return Descriptor{Title: "Confirm Action", Body: body, Kind: KindConfirm, OnConfirm: onConfirm}
}
