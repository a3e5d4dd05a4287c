package domain

import "time"

// DateLayout - формат дат, который вводит пользователь (yyyy-mm-dd)
const DateLayout = "2006-01-02"

// ServiceRequest - заявка на обслуживание автомобиля
// Закрытой считается заявка, для которой есть запись ClosedRequest
type ServiceRequest struct {
	ID         int       `json:"rid"`
	CustomerID int       `json:"customer_id"`
	CarVIN     string    `json:"car_vin"`
	Date       time.Time `json:"date"`
	Odometer   int       `json:"odometer"`
	Complaint  string    `json:"complain"`
}

// ClosedRequest - закрытие заявки механиком с выставлением счета.
// WID всегда совпадает с RID закрываемой заявки.
type ClosedRequest struct {
	WID        int       `json:"wid"`
	RID        int       `json:"rid"`
	MechanicID int       `json:"mechanic_id"`
	Date       time.Time `json:"date"`
	Comment    string    `json:"comment"`
	Bill       int       `json:"bill"`
}
