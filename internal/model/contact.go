package model

import (
	"net/url"
	"strings"
)

// ContactKind says how the board reaches an item's owner.
type ContactKind string

// Contact kinds.
const (
	ContactMail ContactKind = "mail"
	ContactShow ContactKind = "show"
)

// ContactAction is the outcome of pressing "Contact Owner" on a card.
type ContactAction struct {
	Kind    ContactKind `json:"action"`
	MailURL string      `json:"mail_url,omitempty"`
	Message string      `json:"message,omitempty"`
}

// NewContactAction decides how to contact an owner. Contacts containing "@"
// are treated as email addresses and get a pre-filled mail draft; anything
// else is shown to the user as-is.
func NewContactAction(contact, title string) ContactAction {
	if !strings.Contains(contact, "@") {
		return ContactAction{Kind: ContactShow, Message: "Contact: " + contact}
	}
	return ContactAction{Kind: ContactMail, MailURL: MailURL(contact, title)}
}

// MailURL builds the mailto link for an interest message about an item.
func MailURL(address, title string) string {
	subject := "Interest in: " + title
	body := "Hi! I'm interested in the " + title +
		" you posted on EcoShare. When would be a good time to arrange pickup?"
	return "mailto:" + address + "?subject=" + mailEscape(subject) + "&body=" + mailEscape(body)
}

// mailEscape percent-encodes a mailto header value. Spaces must be %20.
func mailEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
