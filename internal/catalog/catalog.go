// Package catalog holds the static directory of Moscow car dealers. The
// list is seed data: lookups preserve the declaration order and nothing in
// the running service mutates it.
package catalog

import (
	"strings"

	"carscope/internal/model"
)

var moscowDealers = []model.Dealer{
	{
		ID:           "bmw-1",
		Name:         "BMW Авилон",
		Brand:        "BMW",
		Address:      "Волгоградский пр-т, 43, корп. 1",
		Phone:        "+7 (495) 730-77-77",
		Website:      "https://avilon-bmw.ru",
		Latitude:     55.7158,
		Longitude:    37.6615,
		WorkingHours: "Пн-Вс: 09:00-21:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти", "Trade-in"},
	},
	{
		ID:           "bmw-2",
		Name:         "BMW Major",
		Brand:        "BMW",
		Address:      "Ленинградское ш., 25, корп. 2",
		Phone:        "+7 (495) 777-99-66",
		Website:      "https://major-bmw.ru",
		Latitude:     55.8019,
		Longitude:    37.5186,
		WorkingHours: "Пн-Вс: 09:00-20:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти"},
	},
	{
		ID:           "bmw-3",
		Name:         "BMW Рольф",
		Brand:        "BMW",
		Address:      "Варшавское ш., 132",
		Phone:        "+7 (495) 730-11-11",
		Website:      "https://rolf-bmw.ru",
		Latitude:     55.6234,
		Longitude:    37.6089,
		WorkingHours: "Пн-Вс: 08:30-21:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти", "Страхование"},
	},
	{
		ID:           "mercedes-1",
		Name:         "Mercedes-Benz Авилон",
		Brand:        "Mercedes-Benz",
		Address:      "Волгоградский пр-т, 43, корп. 3",
		Phone:        "+7 (495) 730-88-88",
		Website:      "https://avilon-mercedes.ru",
		Latitude:     55.7165,
		Longitude:    37.6625,
		WorkingHours: "Пн-Вс: 09:00-21:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти", "Trade-in"},
	},
	{
		ID:           "mercedes-2",
		Name:         "Mercedes-Benz ГК АЦ",
		Brand:        "Mercedes-Benz",
		Address:      "Ленинградское ш., 39, стр. 2",
		Phone:        "+7 (495) 788-44-44",
		Website:      "https://ac-mercedes.ru",
		Latitude:     55.8156,
		Longitude:    37.5089,
		WorkingHours: "Пн-Вс: 09:00-20:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти"},
	},
	{
		ID:           "mercedes-3",
		Name:         "Mercedes-Benz Инком",
		Brand:        "Mercedes-Benz",
		Address:      "МКАД, 47-й км, внешняя сторона",
		Phone:        "+7 (495) 737-77-77",
		Website:      "https://incom-mercedes.ru",
		Latitude:     55.6789,
		Longitude:    37.8456,
		WorkingHours: "Пн-Вс: 09:00-21:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти", "Лизинг"},
	},
	{
		ID:           "toyota-1",
		Name:         "Toyota Центр Кунцево",
		Brand:        "Toyota",
		Address:      "Рябиновая ул., 28, корп. 3",
		Phone:        "+7 (495) 781-81-81",
		Website:      "https://toyota-kuntsevo.ru",
		Latitude:     55.7234,
		Longitude:    37.4123,
		WorkingHours: "Пн-Вс: 09:00-21:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти", "Trade-in"},
	},
	{
		ID:           "toyota-2",
		Name:         "Toyota Центр Варшавка",
		Brand:        "Toyota",
		Address:      "Варшавское ш., 170Г",
		Phone:        "+7 (495) 745-45-45",
		Website:      "https://toyota-varshavka.ru",
		Latitude:     55.5987,
		Longitude:    37.6234,
		WorkingHours: "Пн-Вс: 09:00-20:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти"},
	},
	{
		ID:           "toyota-3",
		Name:         "Toyota Центр Медведково",
		Brand:        "Toyota",
		Address:      "Заревый пр-д, 12",
		Phone:        "+7 (495) 788-99-99",
		Website:      "https://toyota-medvedkovo.ru",
		Latitude:     55.8756,
		Longitude:    37.6543,
		WorkingHours: "Пн-Вс: 08:30-21:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти", "Страхование"},
	},
	{
		ID:           "audi-1",
		Name:         "Audi Центр Варшавка",
		Brand:        "Audi",
		Address:      "Варшавское ш., 125, стр. 1",
		Phone:        "+7 (495) 730-55-55",
		Website:      "https://audi-varshavka.ru",
		Latitude:     55.6345,
		Longitude:    37.6123,
		WorkingHours: "Пн-Вс: 09:00-21:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти", "Trade-in"},
	},
	{
		ID:           "audi-2",
		Name:         "Audi Центр Север",
		Brand:        "Audi",
		Address:      "Дмитровское ш., 163А",
		Phone:        "+7 (495) 777-33-33",
		Website:      "https://audi-sever.ru",
		Latitude:     55.8567,
		Longitude:    37.5789,
		WorkingHours: "Пн-Вс: 09:00-20:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти"},
	},
	{
		ID:           "vw-1",
		Name:         "Volkswagen Центр Юг",
		Brand:        "Volkswagen",
		Address:      "Каширское ш., 61, корп. 2",
		Phone:        "+7 (495) 745-77-77",
		Website:      "https://vw-yug.ru",
		Latitude:     55.6123,
		Longitude:    37.6789,
		WorkingHours: "Пн-Вс: 09:00-21:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти", "Trade-in"},
	},
	{
		ID:           "hyundai-1",
		Name:         "Hyundai Центр Восток",
		Brand:        "Hyundai",
		Address:      "Рязанский пр-т, 2, стр. 2А",
		Phone:        "+7 (495) 788-66-66",
		Website:      "https://hyundai-vostok.ru",
		Latitude:     55.7456,
		Longitude:    37.7234,
		WorkingHours: "Пн-Вс: 09:00-20:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти"},
	},
	{
		ID:           "kia-1",
		Name:         "Kia Центр Запад",
		Brand:        "Kia",
		Address:      "Можайское ш., 165, стр. 1",
		Phone:        "+7 (495) 777-88-88",
		Website:      "https://kia-zapad.ru",
		Latitude:     55.7123,
		Longitude:    37.3456,
		WorkingHours: "Пн-Вс: 09:00-21:00",
		Services:     []string{"Продажа новых авто", "Сервис", "Запчасти", "Trade-in"},
	},
}

// Dealers returns the full catalog in declaration order.
func Dealers() []model.Dealer {
	ds := make([]model.Dealer, len(moscowDealers))
	copy(ds, moscowDealers)
	return ds
}

// DealersByBrand returns the dealers whose brand matches case-insensitively,
// in catalog order. An unknown brand yields an empty slice, never an error.
func DealersByBrand(brand string) []model.Dealer {
	var ds []model.Dealer
	for _, d := range moscowDealers {
		if strings.EqualFold(d.Brand, brand) {
			ds = append(ds, d)
		}
	}
	return ds
}

// DealerNames returns the names of every dealer in the catalog.
func DealerNames() []string {
	names := make([]string, 0, len(moscowDealers))
	for _, d := range moscowDealers {
		names = append(names, d.Name)
	}
	return names
}
