package paymentprovider

// Product — ответ провайдера на создание продукта.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Price — ответ провайдера на создание цены.
type Price struct {
	ID         string `json:"id"`
	Currency   string `json:"currency"`
	UnitAmount int64  `json:"unit_amount"`
}

// Session — ответ провайдера на создание checkout-сессии.
// URL — ссылка на страницу оплаты, по которой перенаправляется покупатель.
type Session struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// apiError — формат тела ошибки провайдера.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
