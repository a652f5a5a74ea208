package compute_quote

import "github.com/m04kA/LV-BookingService/internal/domain"

// Request модель запроса на расчет стоимости
type Request struct {
	ServiceIDs []int64            // Выбранные услуги
	Type       domain.BookingType // Тип записи: мастерская или выезд
}

// Response модель ответа с разбивкой стоимости
type Response struct {
	Total     int64 // Итоговая стоимость (base + surcharge)
	Base      int64 // Сумма базовых цен активных выбранных услуг
	Surcharge int64 // Наценка за выезд (0 для записи в мастерскую)
}
