package models

import (
	"github.com/m04kA/HRS-ReservationService/internal/domain"
)

// Request модели

// BookRoomRequest запрос на бронирование комнаты.
// Category уже типизирована: разбор пользовательского ввода остается
// на границе (CLI), сервис некорректных категорий не видит.
type BookRoomRequest struct {
	CustomerName string              `json:"customerName"`
	Category     domain.RoomCategory `json:"category"`
}

// Response модели

// RoomResponse данные комнаты для отображения
type RoomResponse struct {
	Number    int    `json:"number"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// BookingResponse данные бронирования для отображения
type BookingResponse struct {
	ID           int     `json:"id"`
	CustomerName string  `json:"customerName"`
	RoomNumber   int     `json:"roomNumber"`
	RoomCategory string  `json:"roomCategory"`
	AmountPaid   float64 `json:"amountPaid"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель комнаты в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		Number:    r.Number,
		Category:  string(r.Category),
		Available: r.IsAvailable(),
	}
}

// FromDomainRoomList конвертирует список комнат в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}
	return resp
}

// FromDomainBooking конвертирует domain модель бронирования в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		RoomNumber:   b.Room.Number,
		RoomCategory: string(b.Room.Category),
		AmountPaid:   b.AmountPaid,
	}
}

// FromDomainBookingList конвертирует список бронирований в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	return resp
}
