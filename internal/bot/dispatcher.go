// Package bot implements the conversation layer of the ordering assistant:
// it routes inbound chat events to the catalog, cart, order and user stores
// and renders replies, keyboards and operator notifications. It is transport
// agnostic; a chat gateway delivers what it returns.
package bot

import (
	"strconv"
	"strings"

	"catering-service/internal/model"
	"catering-service/internal/session"
	"catering-service/prometheus"

	"go.uber.org/zap"
)

// Dispatcher routes chat events. All per-user transient state lives in the
// session manager; everything durable lives behind the store interfaces.
type Dispatcher struct {
	catalog     Catalog
	carts       Carts
	orders      Orders
	users       Users
	sessions    *session.Manager
	operators   []int64
	minPhoneLen int
	log         *zap.Logger
}

func NewDispatcher(catalog Catalog, carts Carts, orders Orders, users Users, sessions *session.Manager, operators []int64, minPhoneLen int, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		catalog:     catalog,
		carts:       carts,
		orders:      orders,
		users:       users,
		sessions:    sessions,
		operators:   operators,
		minPhoneLen: minPhoneLen,
		log:         log,
	}
}

func singleReply(reply Reply) Result {
	return Result{Replies: []Reply{reply}}
}

// Handle processes one inbound event and returns everything the gateway must
// deliver. A returned error means a storage operation failed before anything
// committed; the gateway shows a generic failure and the user may retry.
func (d *Dispatcher) Handle(ev Event) (Result, error) {
	// Every interaction refreshes the user profile (last seen wins).
	if err := d.users.GetOrCreate(ev.UserID, ev.Username, ev.FirstName); err != nil {
		return Result{}, err
	}

	if ev.Kind == EventMessage {
		return d.handleMessage(ev)
	}
	return d.handleCallback(ev)
}

func (d *Dispatcher) handleMessage(ev Event) (Result, error) {
	if strings.HasPrefix(ev.Text, "/start") {
		return singleReply(Reply{Text: welcomeText, Keyboard: mainMenuKeyboard()}), nil
	}

	// Free-text messages only matter while a phone number is awaited.
	if d.sessions.State(ev.UserID) != session.AwaitingPhone {
		return Result{}, nil
	}
	return d.handlePhoneInput(ev)
}

func (d *Dispatcher) handlePhoneInput(ev Event) (Result, error) {
	phone := strings.TrimSpace(ev.Text)
	if len([]rune(phone)) < d.minPhoneLen {
		return singleReply(Reply{Text: "Номер слишком короткий, отправьте корректный номер."}), nil
	}

	if err := d.users.SetPhone(ev.UserID, phone); err != nil {
		return Result{}, err
	}
	d.sessions.Resume(ev.UserID)

	// The phone was the last missing piece: finalize right away.
	return d.finalizeOrder(ev)
}

func (d *Dispatcher) handleCallback(ev Event) (Result, error) {
	data := ev.Data
	switch data {
	case "noop":
		return Result{}, nil
	case "main_menu":
		return d.showMainMenu(ev)
	case "about":
		return singleReply(Reply{Text: aboutText, Keyboard: [][]Button{{{Text: "◀️ Назад", Data: "main_menu"}}}}), nil
	case "menu":
		return d.showCategories(ev)
	case "show_cart":
		return d.showCart(ev)
	case "checkout":
		return d.checkout(ev)
	case "back_to_category":
		return d.backToCategory(ev)
	}

	if id, ok := callbackID(data, "category_"); ok {
		return d.showCategory(ev, id)
	}
	if id, ok := callbackID(data, "product_"); ok {
		return d.showProduct(ev, id)
	}
	if id, ok := callbackID(data, "inc_"); ok {
		return d.changeQuantity(ev, id, 1, "Добавили 1 шт.")
	}
	if id, ok := callbackID(data, "dec_"); ok {
		return d.changeQuantity(ev, id, -1, "Убрали 1 шт.")
	}
	if id, ok := callbackID(data, "add_"); ok {
		return d.addToCart(ev, id)
	}
	if id, ok := callbackID(data, "remove_"); ok {
		return d.removeFromCart(ev, id)
	}

	d.log.Warn("Unknown callback data", zap.String("data", data), zap.Int64("user_id", ev.UserID))
	return Result{}, nil
}

func callbackID(data, prefix string) (uint, bool) {
	if !strings.HasPrefix(data, prefix) {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(data, prefix), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (d *Dispatcher) showMainMenu(ev Event) (Result, error) {
	// Leaving the flow exits any pending phone entry.
	d.sessions.Resume(ev.UserID)

	result := singleReply(Reply{Text: welcomeText, Keyboard: mainMenuKeyboard()})

	// A non-empty cart gets a reminder on the way out.
	lines, err := d.carts.Items(ev.UserID)
	if err != nil {
		return Result{}, err
	}
	if len(lines) > 0 {
		total, err := d.carts.Total(ev.UserID)
		if err != nil {
			return Result{}, err
		}
		result.Replies = append(result.Replies, Reply{
			Text:     cartText(lines, total) + "\n\nОформить заказ?",
			Keyboard: cartKeyboard(),
		})
	}
	return result, nil
}

func (d *Dispatcher) showCategories(ev Event) (Result, error) {
	categories, err := d.catalog.Categories()
	if err != nil {
		return Result{}, err
	}
	return singleReply(Reply{Text: "Выберите категорию:", Keyboard: categoriesKeyboard(categories)}), nil
}

// categoryListing renders the product list of one category with the cart
// quantities baked into the button labels.
func (d *Dispatcher) categoryListing(ev Event, categoryID uint) (Reply, bool, error) {
	products, err := d.catalog.ProductsByCategory(categoryID)
	if err != nil {
		return Reply{}, false, err
	}
	if len(products) == 0 {
		return Reply{}, false, nil
	}

	category, err := d.catalog.Category(categoryID)
	if err != nil {
		return Reply{}, false, err
	}
	name := "Категория"
	if category != nil {
		name = category.Name
	}

	cartQty, err := d.cartQuantities(ev.UserID)
	if err != nil {
		return Reply{}, false, err
	}
	return Reply{
		Text:     "📋 " + name + "\n\nВыберите товар:",
		Keyboard: productsKeyboard(products, cartQty),
	}, true, nil
}

func (d *Dispatcher) showCategory(ev Event, categoryID uint) (Result, error) {
	reply, ok, err := d.categoryListing(ev, categoryID)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return singleReply(Reply{Alert: "В этой категории пока нет товаров"}), nil
	}
	return singleReply(reply), nil
}

func (d *Dispatcher) cartQuantities(userID int64) (map[uint]int, error) {
	lines, err := d.carts.Items(userID)
	if err != nil {
		return nil, err
	}
	quantities := make(map[uint]int, len(lines))
	for _, line := range lines {
		quantities[line.ProductID] = line.Quantity
	}
	return quantities, nil
}

func (d *Dispatcher) showProduct(ev Event, productID uint) (Result, error) {
	product, err := d.catalog.Product(productID)
	if err != nil {
		return Result{}, err
	}
	if product == nil {
		return singleReply(Reply{Alert: "Товар не найден"}), nil
	}

	// Remembered for the "back" button on the product view.
	d.sessions.SetLastCategory(ev.UserID, product.CategoryID)

	return d.renderProduct(ev, product, "")
}

func (d *Dispatcher) renderProduct(ev Event, product *model.Product, alert string) (Result, error) {
	qty, err := d.carts.Quantity(ev.UserID, product.ID)
	if err != nil {
		return Result{}, err
	}
	return singleReply(Reply{
		Text:     productViewText(product, qty),
		Keyboard: productKeyboard(product.ID, qty),
		Alert:    alert,
	}), nil
}

func (d *Dispatcher) changeQuantity(ev Event, productID uint, delta int, alert string) (Result, error) {
	product, err := d.catalog.Product(productID)
	if err != nil {
		return Result{}, err
	}
	if product == nil {
		return singleReply(Reply{Alert: "Товар не найден"}), nil
	}

	if err := d.carts.ChangeQuantity(ev.UserID, productID, delta); err != nil {
		return Result{}, err
	}
	if delta > 0 {
		prometheus.RecordCartOperation("increment")
	} else {
		prometheus.RecordCartOperation("decrement")
	}
	return d.renderProduct(ev, product, alert)
}

func (d *Dispatcher) addToCart(ev Event, productID uint) (Result, error) {
	product, err := d.catalog.Product(productID)
	if err != nil {
		return Result{}, err
	}
	if product == nil {
		return singleReply(Reply{Alert: "Товар не найден"}), nil
	}

	if err := d.carts.AddToCart(ev.UserID, productID, 1); err != nil {
		return Result{}, err
	}
	prometheus.RecordCartOperation("add")

	reply, ok, err := d.categoryListing(ev, product.CategoryID)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return singleReply(Reply{Alert: "✅ Товар добавлен в корзину"}), nil
	}
	reply.Alert = "✅ Товар добавлен в корзину"
	return singleReply(reply), nil
}

func (d *Dispatcher) removeFromCart(ev Event, productID uint) (Result, error) {
	product, err := d.catalog.Product(productID)
	if err != nil {
		return Result{}, err
	}
	if product == nil {
		return singleReply(Reply{Alert: "Товар не найден"}), nil
	}

	if err := d.carts.RemoveFromCart(ev.UserID, productID); err != nil {
		return Result{}, err
	}
	prometheus.RecordCartOperation("remove")

	reply, ok, err := d.categoryListing(ev, product.CategoryID)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return singleReply(Reply{Alert: "❌ Товар удален из корзины"}), nil
	}
	reply.Alert = "❌ Товар удален из корзины"
	return singleReply(reply), nil
}

func (d *Dispatcher) backToCategory(ev Event) (Result, error) {
	categoryID, ok := d.sessions.LastCategory(ev.UserID)
	if !ok {
		return d.showCategories(ev)
	}

	reply, found, err := d.categoryListing(ev, categoryID)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return singleReply(Reply{Alert: "В этой категории пока нет товаров"}), nil
	}
	return singleReply(reply), nil
}

func (d *Dispatcher) showCart(ev Event) (Result, error) {
	lines, err := d.carts.Items(ev.UserID)
	if err != nil {
		return Result{}, err
	}
	total, err := d.carts.Total(ev.UserID)
	if err != nil {
		return Result{}, err
	}

	keyboard := cartKeyboard()
	if len(lines) == 0 {
		keyboard = [][]Button{
			{{Text: "Меню", Data: "menu"}},
			{{Text: "◀️ В главное меню", Data: "main_menu"}},
		}
	}
	return singleReply(Reply{Text: cartText(lines, total), Keyboard: keyboard}), nil
}

// checkout enforces the "cart not empty" precondition and collects a phone
// number before finalizing the order.
func (d *Dispatcher) checkout(ev Event) (Result, error) {
	lines, err := d.carts.Items(ev.UserID)
	if err != nil {
		return Result{}, err
	}
	if len(lines) == 0 {
		return singleReply(Reply{Alert: "Ваша корзина пуста"}), nil
	}

	phone, err := d.users.Phone(ev.UserID)
	if err != nil {
		return Result{}, err
	}
	if phone == "" {
		d.sessions.AwaitPhone(ev.UserID)
		return singleReply(Reply{
			Text:     "📞 Пожалуйста, отправьте номер телефона одним сообщением для оформления заказа.",
			Keyboard: backToMainKeyboard(),
		}), nil
	}

	return d.finalizeOrder(ev)
}

// finalizeOrder creates the order and renders the confirmation plus one
// notification per configured operator chat. The order stands no matter what
// happens to notification delivery downstream.
func (d *Dispatcher) finalizeOrder(ev Event) (Result, error) {
	lines, err := d.carts.Items(ev.UserID)
	if err != nil {
		return Result{}, err
	}
	if len(lines) == 0 {
		return singleReply(Reply{Text: "Ваша корзина пуста", Keyboard: backToMainKeyboard()}), nil
	}

	total, err := d.carts.Total(ev.UserID)
	if err != nil {
		return Result{}, err
	}

	orderID, err := d.orders.CreateOrder(ev.UserID)
	if err != nil {
		return Result{}, err
	}
	prometheus.RecordOrderCreated(total)

	phone, err := d.users.Phone(ev.UserID)
	if err != nil {
		// The order is already committed; a failed phone lookup only
		// degrades the operator notification.
		d.log.Warn("Failed to read phone for notification", zap.Error(err), zap.Int64("user_id", ev.UserID))
		phone = ""
	}

	d.log.Info("Order created",
		zap.Uint("order_id", orderID),
		zap.Int64("user_id", ev.UserID),
		zap.Int("total_price", total),
		zap.Int("positions", len(lines)))

	result := singleReply(Reply{
		Text:     orderConfirmationText(orderID, lines, total),
		Keyboard: backToMainKeyboard(),
	})
	for _, operatorID := range d.operators {
		result.Notifications = append(result.Notifications, Outbound{
			ChatID: operatorID,
			Text:   operatorNotificationText(orderID, ev, phone, lines, total),
		})
	}
	if len(d.operators) == 0 {
		d.log.Info("No operator chats configured, order notification skipped", zap.Uint("order_id", orderID))
	}
	return result, nil
}
