package bot

import (
	"fmt"

	"catering-service/internal/model"
)

const welcomeText = `Мы готовим с любовью! Ждём ваши заказы.

Все пожелания мы можем обсудить лично или по телефону: +7(985)998-91-22, +7(925)876-30-60
Заказы принимаем по 29.12.2025 включительно!
При заказе от 20 000 руб. доставка в радиусе 15 км бесплатно`

const aboutText = welcomeText + `

Ем&ем
Городская ул., 20, Троицк
https://yandex.ru/maps/org/yemem/42994344316?si=8qbne2jmc0nkgmphyryxvbnpq4`

func mainMenuKeyboard() [][]Button {
	return [][]Button{
		{{Text: "Меню", Data: "menu"}},
		{{Text: "О нас", Data: "about"}},
	}
}

func backToMainKeyboard() [][]Button {
	return [][]Button{
		{{Text: "◀️ В главное меню", Data: "main_menu"}},
	}
}

func categoriesKeyboard(categories []model.Category) [][]Button {
	keyboard := make([][]Button, 0, len(categories)+2)
	for _, cat := range categories {
		keyboard = append(keyboard, []Button{
			{Text: cat.Name, Data: fmt.Sprintf("category_%d", cat.ID)},
		})
	}
	keyboard = append(keyboard, []Button{{Text: "🛒 В корзину", Data: "show_cart"}})
	keyboard = append(keyboard, []Button{{Text: "◀️ Назад", Data: "main_menu"}})
	return keyboard
}

// productsKeyboard renders one button per product, marking products already
// in the cart and appending their quantity.
func productsKeyboard(products []model.Product, cartQty map[uint]int) [][]Button {
	keyboard := make([][]Button, 0, len(products)+2)
	for _, product := range products {
		qty := cartQty[product.ID]
		checkmark := ""
		suffix := ""
		if qty > 0 {
			checkmark = "✅ "
			suffix = fmt.Sprintf(" x%d", qty)
		}
		keyboard = append(keyboard, []Button{{
			Text: fmt.Sprintf("%s%s%s - %d₽", checkmark, truncateName(product.Name), suffix, product.Price),
			Data: fmt.Sprintf("product_%d", product.ID),
		}})
	}
	keyboard = append(keyboard, []Button{{Text: "🛒 В корзину", Data: "show_cart"}})
	keyboard = append(keyboard, []Button{{Text: "◀️ Назад к категориям", Data: "menu"}})
	return keyboard
}

// truncateName shortens long product names so they fit on a button.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= 25 {
		return name
	}
	return string(runes[:22]) + "..."
}

func productKeyboard(productID uint, qty int) [][]Button {
	return [][]Button{
		{
			{Text: "➖", Data: fmt.Sprintf("dec_%d", productID)},
			{Text: fmt.Sprintf("%d шт.", qty), Data: "noop"},
			{Text: "➕", Data: fmt.Sprintf("inc_%d", productID)},
		},
		{{Text: "🛒 В корзину", Data: "show_cart"}},
		{{Text: "◀️ Назад", Data: "back_to_category"}},
	}
}

func cartKeyboard() [][]Button {
	return [][]Button{
		{{Text: "✅ Оформить заказ", Data: "checkout"}},
		{{Text: "Меню", Data: "menu"}},
	}
}

func productViewText(product *model.Product, qty int) string {
	text := ""
	if qty > 0 {
		text += "✅ В корзине\n\n"
	}
	text += fmt.Sprintf("🍽 %s\n", product.Name)
	if product.Weight != "" {
		text += fmt.Sprintf("К-во: %s\n", product.Weight)
	}
	text += fmt.Sprintf("Цена: %d₽\n", product.Price)
	text += fmt.Sprintf("В корзине: %d шт.", qty)
	return text
}

func cartText(lines []model.CartLine, total int) string {
	if len(lines) == 0 {
		return "🛒 Ваша корзина пуста."
	}
	text := "🛒 Ваша корзина:\n\n"
	for _, line := range lines {
		text += fmt.Sprintf("• %s x%d - %d₽\n", line.Name, line.Quantity, line.Price*line.Quantity)
	}
	text += fmt.Sprintf("\n💰 Итого: %d₽", total)
	return text
}

func orderConfirmationText(orderID uint, lines []model.CartLine, total int) string {
	text := "✅ Заказ оформлен!\n\n"
	text += fmt.Sprintf("Номер заказа: #%d\n\n", orderID)
	text += "Состав заказа:\n"
	for _, line := range lines {
		text += fmt.Sprintf("• %s x%d - %d₽\n", line.Name, line.Quantity, line.Price*line.Quantity)
	}
	text += fmt.Sprintf("\n💰 Итого: %d₽\n\n", total)
	text += "Спасибо за заказ! Мы свяжемся с вами для подтверждения."
	return text
}

func operatorNotificationText(orderID uint, ev Event, phone string, lines []model.CartLine, total int) string {
	name := ev.FirstName
	if name == "" {
		name = fmt.Sprintf("%d", ev.UserID)
	}
	userLine := "Пользователь: " + name
	if ev.Username != "" {
		userLine += fmt.Sprintf(" (@%s)", ev.Username)
	}
	if phone == "" {
		phone = "не указан"
	}
	userLine += "\nТелефон: " + phone

	return fmt.Sprintf("Новый заказ #%d\n%s\n\n%s", orderID, userLine, cartText(lines, total))
}
