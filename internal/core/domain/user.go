package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrCartLineNotFound = errors.New("product not found in cart")

// CartLine is one entry in a user's embedded cart. At most one line exists
// per product, and a stored line always has quantity >= 1.
type CartLine struct {
	ProductID string `json:"product_id" bson:"product"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// User models a shopper or administrator. The cart lives inline on the user
// document; cart mutations rewrite the whole slice (last-writer-wins).
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Cart         []CartLine `json:"cart_items"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AddCartLine increments the line for productID by one, appending a new line
// with quantity 1 when none exists yet.
func (u *User) AddCartLine(productID string) {
	for i := range u.Cart {
		if u.Cart[i].ProductID == productID {
			u.Cart[i].Quantity++
			return
		}
	}
	u.Cart = append(u.Cart, CartLine{ProductID: productID, Quantity: 1})
}

// SetCartQuantity sets the quantity of an existing line. Quantity 0 removes
// the line. Returns ErrCartLineNotFound when no line matches productID.
func (u *User) SetCartQuantity(productID string, quantity int) error {
	for i := range u.Cart {
		if u.Cart[i].ProductID != productID {
			continue
		}
		if quantity == 0 {
			u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
		} else {
			u.Cart[i].Quantity = quantity
		}
		return nil
	}
	return ErrCartLineNotFound
}

// RemoveCartLine drops the line for productID. Removing an absent line is a
// no-op, mirroring the idempotent DELETE contract.
func (u *User) RemoveCartLine(productID string) {
	for i := range u.Cart {
		if u.Cart[i].ProductID == productID {
			u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
			return
		}
	}
}

// ClearCart empties the cart.
func (u *User) ClearCart() {
	u.Cart = nil
}
