package mail

import (
	"fmt"
	"html"
)

// PasswordReset builds the message carrying a newly generated password.
func PasswordReset(to, name, newPassword string) Message {
	return Message{
		To:      to,
		Subject: "Your Youth Cup password has been reset",
		HTML: fmt.Sprintf(
			"<p>Hello %s,</p><p>Your new password is <strong>%s</strong>.</p><p>Please change it after signing in.</p>",
			html.EscapeString(name), html.EscapeString(newPassword)),
		Text: fmt.Sprintf("Hello %s, your new password is %s. Please change it after signing in.", name, newPassword),
	}
}

// OrderConfirmation builds the purchase receipt.
func OrderConfirmation(to, name, productName string, price float64, orderID uint) Message {
	return Message{
		To:      to,
		Subject: fmt.Sprintf("Order #%d confirmed", orderID),
		HTML: fmt.Sprintf(
			"<p>Hello %s,</p><p>Thanks for buying <strong>%s</strong> for $%.2f.</p><p>Order number: %d</p>",
			html.EscapeString(name), html.EscapeString(productName), price, orderID),
		Text: fmt.Sprintf("Hello %s, thanks for buying %s for $%.2f. Order number: %d", name, productName, price, orderID),
	}
}
