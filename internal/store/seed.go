package store

import (
	"catering-service/internal/model"

	"gorm.io/gorm"
)

type seedProduct struct {
	name   string
	weight string
	price  int
}

type seedCategory struct {
	name     string
	products []seedProduct
}

// Seed inserts the fixed catalog in a fixed order when the categories table
// is empty, and is a no-op otherwise. It does not reconcile a partial or
// modified catalog. Run explicitly after migration, not as a connection
// side effect.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for idx, cat := range seedCatalog {
			category := model.Category{Name: cat.name, OrderIndex: idx}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			for prodIdx, p := range cat.products {
				product := model.Product{
					CategoryID: category.ID,
					Name:       p.name,
					Weight:     p.weight,
					Price:      p.price,
					OrderIndex: prodIdx,
				}
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

var seedCatalog = []seedCategory{
	{"Закуски", []seedProduct{
		{"Сырный сет: мешочки с начинкой из творожного сыра и орехов-4шт сырные шарики с оливой в кунжуте-4шт ,мандаринки из микса сыров в морковной корочке-4шт", "500гр.", 1190},
		{"Рулеты из говяжьего языка, фаршированные твердым сыром, яйцом и чесноком 10шт", "400гр", 1400},
		{"Рулеты из баклажанов, фаршированные сырным кремом с чесноком , орешками и зеленью-10шт.", "350 гр.", 770},
		{"Рулеты из ветчины , фаршированные творожным сыром и пряным огурчиком-8шт", "400гр.", 1050},
		{"Рулет волшебный куриное филе, морковь, сыр", "100гр", 160},
		{"Рулет куриный с беконом куриное филе, перец болгарский, зелень", "100 гр.", 185},
		{"Сливочный печеночный тортик с грибами", "650 гр.", 1150},
		{"Брускетты с уткой /10 шт.", "10шт", 1250},
		{"Брускетта с слабосоленой форелью /10 шт.", "10шт.", 1680},
		{"Канапе из печеной свеклы моцареллы и корнишона", "10шт", 890},
		{"Канапе Цезарь-10шт", "250гр.", 970},
		{"Холодец три мяса /400 гр.", "1шт", 620},
		{"Язык отварной", "100 гр.", 525},
		{"Фаршмак с семгой и перепелиным яйцом /200 гр.", "1 шт.", 396},
		{"Тигровые креветки в слоеном тесте /1 шт.", "1 шт.", 240},
		{"Шпинатный рулет с копченой рыбой", "100 гр.", 143},
		{"Жульен особый: свиная шея, куриная грудка, белые грибы, шампиньоны орешки и сыр тертый 50гр", "500 гр.", 890},
		{"Шампиньоны, фаршированные мясом и сыром", "100 гр.", 185},
	}},
	{"Основное мясное", []seedProduct{
		{"Свиная рулька запеченная", "1кг", 1450},
		{"Ребра свиные в соусе барбекю", "100гр", 230},
		{"Утка новогодняя, фаршированная капустой или яблоками с сухофруктами /2 кг.", "1 шт.", 2900},
		{"Утиная грудка, запечённая в апельсиновой карамели", "100гр.", 310},
		{"Утиная ножка ,запеченная в вишнево-клюквенном соусе", "100гр.", 270},
		{"Мясо по-французски", "100 гр.", 210},
		{"Щеки говяжьи, тушеные в красном соусе", "100 гр.", 345},
	}},
	{"Мясное ассорти на мангале", []seedProduct{
		{"Люля-кебаб из курицы 1шт-100гр", "1шт.", 150},
		{"Люля-кебаб из телятины1шт-100гр", "1шт", 260},
		{"Люля-кебаб из баранины1шт-100гр", "1шт.", 271},
		{"Шашлычок куриный на шпажке 1шт-80гр", "1шт", 158},
		{"Куриные крылышки в соусе «Барбекю»", "100 гр.", 145},
	}},
	{"Рыбное основное", []seedProduct{
		{"Карп фаршированный", "100 гр.", 230},
		{"Стейк из форели", "100 гр.", 398},
		{"Форель в слоенном тесте со шпинатом сливочном соусе кедровыми орешками", "100 гр.", 290},
		{"Кальмары по гречески", "100гр.", 199},
	}},
	{"Гарниры", []seedProduct{
		{"Картофельное пюре", "100 гр.", 81},
		{"Картофель из печи", "100 гр.", 86},
		{"Рататуй: перец, томаты, баклажан ,цукини 350гр", "1шт", 560},
		{"Плов со свининой", "100 гр.", 110},
		{"Солянка мясная с свининой и копченостями", "100 гр.", 110},
		{"Перец фаршированный или голубцы", "100 гр.", 115},
		{"Овощное соцветие: шампиньоны ,перец, капусты-брокколи, цветная, брюссельская  250гр", "1шт.", 360},
	}},
	{"Салаты", []seedProduct{
		{"Столичный с говядиной", "100 гр.", 135},
		{"Оливье с курицей", "100 гр.", 120},
		{"Оливье по- московски с колбасой и консервированным горошком", "100гр", 130},
		{"Орландо( язык, шампиньоны, огурец маринованный, томаты ,яйцо)- тортик 650 гр", "1шт.", 960},
		{"Цезарь с курицей 350гр", "1шт.", 550},
		{"Гнездо тортик /600 гр. курица, грибы, яйцо, огурец, картофель пай", "1 шт.", 900},
		{"Жареные баклажаны с помидорами и кинзой", "100 гр.", 156},
		{"Сельдь под шубой - тортик /650 гр.", "1 шт.", 950},
		{"С копченой курицей и ананасом - тортик /650 гр.", "1 шт.", 950},
		{"Мимоза- тортик /650 гр. форель, сыр, яйцо, морковь, картофель", "1 шт.", 1100},
		{"Кок -тортик /650 гр. Ассорти из подкопчённой белой и красной рыбы, сыр, крабовые палочки, рис, яйцо, креветка", "1 шт.", 970},
		{"Листовой с креветкой  300гр айсберг, креветка, черри, йогурт", "1шт.", 550},
		{"Кальмаровый-  тортик 600гр", "1шт", 1050},
		{"Фермерский- тортик 650гр", "1шт", 1075},
		{"Мимоза по-азиатски(скумбрия г\\к,сыр, картофель, пек капуста, огурец) тортик 650гр", "1шт", 890},
	}},
	{"Полуфабрикаты", []seedProduct{
		{"Манты говядина", "500гр", 650},
		{"Манты курица", "500гр", 385},
		{"Манты тыква", "500гр", 340},
		{"Пельмени три мяса( свинина , говядина, курица) Шоколадный,морковный,к", "500гр", 575},
		{"Пельмени с лосятиной", "500гр", 630},
		{"Пельмени с форелью", "500гр", 700},
		{"Голубцы(три мяса),перец фаршированный(три мяса)", "500гр", 540},
		{"Котлеты из щуки", "5шт", 1000},
		{"Котлета пожарские", "5шт", 840},
		{"Блины с мясом", "5шт", 465},
	}},
}
