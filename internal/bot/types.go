package bot

import "catering-service/internal/model"

// EventKind distinguishes plain chat messages from inline-button callbacks.
type EventKind string

const (
	EventMessage  EventKind = "message"
	EventCallback EventKind = "callback"
)

// Event is one inbound chat interaction, as forwarded by the chat gateway.
type Event struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	Kind      EventKind `json:"kind"`
	// Text is the message body for EventMessage ("/start", a phone number).
	Text string `json:"text,omitempty"`
	// Data is the callback payload for EventCallback ("category_3", "inc_7").
	Data string `json:"data,omitempty"`
}

// Button is one inline keyboard button.
type Button struct {
	Text string `json:"text"`
	Data string `json:"data"`
}

// Reply is a rendered message for the user: text, an optional inline
// keyboard, and an optional short popup acknowledgement for callbacks.
type Reply struct {
	Text     string     `json:"text,omitempty"`
	Keyboard [][]Button `json:"keyboard,omitempty"`
	Alert    string     `json:"alert,omitempty"`
}

// Outbound is a notification for a chat other than the requesting user's,
// e.g. the operator chats informed about a new order. Delivery is the
// gateway's job; a delivery failure never affects the order.
type Outbound struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// Result is everything the gateway must deliver for one inbound event.
type Result struct {
	Replies       []Reply    `json:"replies,omitempty"`
	Notifications []Outbound `json:"notifications,omitempty"`
}

// Catalog is the read-only menu the dispatcher browses.
type Catalog interface {
	Categories() ([]model.Category, error)
	Category(id uint) (*model.Category, error)
	ProductsByCategory(categoryID uint) ([]model.Product, error)
	Product(id uint) (*model.Product, error)
}

// Carts mutates and reads the per-user shopping cart.
type Carts interface {
	ChangeQuantity(userID int64, productID uint, delta int) error
	AddToCart(userID int64, productID uint, quantity int) error
	RemoveFromCart(userID int64, productID uint) error
	Items(userID int64) ([]model.CartLine, error)
	Quantity(userID int64, productID uint) (int, error)
	Total(userID int64) (int, error)
}

// Orders finalizes carts into order records.
type Orders interface {
	CreateOrder(userID int64) (uint, error)
}

// Users maintains customer profiles keyed by chat identity.
type Users interface {
	GetOrCreate(id int64, username, firstName string) error
	Phone(id int64) (string, error)
	SetPhone(id int64, phone string) error
}
