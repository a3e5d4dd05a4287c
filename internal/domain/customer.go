package domain

// Customer - клиент мастерской, владелец автомобилей
type Customer struct {
	ID        int    `json:"id"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	Phone     string `json:"phone"`   // ie. (###)###-####
	Address   string `json:"address"` // ie. street city
}

// Mechanic - механик, закрывающий заявки
type Mechanic struct {
	ID         int    `json:"id"`
	FirstName  string `json:"fname"`
	LastName   string `json:"lname"`
	Experience int    `json:"experience"` // Стаж в годах
}
