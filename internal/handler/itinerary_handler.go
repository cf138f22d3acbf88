package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"travel-bookings/internal/domain"
	"travel-bookings/internal/errors"
	"travel-bookings/internal/service"
)

type ItineraryHandler struct {
	itineraryService *service.ItineraryService
}

func NewItineraryHandler(itineraryService *service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryService: itineraryService,
	}
}

type AttachTransportRequest struct {
	TransportID  int64  `json:"transport_id"`
	OrderInTrip  int    `json:"order_in_trip"`
	AssignedDate string `json:"assigned_date"`
}

type AttachHotelRequest struct {
	HotelID      int64  `json:"hotel_id"`
	OrderInTrip  int    `json:"order_in_trip"`
	AssignedDate string `json:"assigned_date"`
}

type AttachFlightRequest struct {
	FlightID     int64  `json:"flight_id"`
	OrderInTrip  int    `json:"order_in_trip"`
	AssignedDate string `json:"assigned_date"`
}

type SaleTransportResponse struct {
	SaleTransportID int64  `json:"sale_transport_id"`
	SaleID          int64  `json:"sale_id"`
	TransportID     int64  `json:"transport_id"`
	OrderInTrip     int    `json:"order_in_trip"`
	AssignedDate    string `json:"assigned_date"`
}

func saleTransportResponse(link *domain.SaleTransport) SaleTransportResponse {
	return SaleTransportResponse{
		SaleTransportID: link.ID,
		SaleID:          link.SaleID,
		TransportID:     link.TransportID,
		OrderInTrip:     link.OrderInTrip,
		AssignedDate:    link.AssignedDate.Format(dateLayout),
	}
}

func parseAssignedDate(value string) (time.Time, *errors.AppError) {
	assignedDate, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.InvalidInput, "invalid assigned_date format, expected YYYY-MM-DD")
	}
	return assignedDate, nil
}

func (h *ItineraryHandler) AttachTransport(w http.ResponseWriter, r *http.Request) {
	saleID, appErr := pathID(r, "sale_id")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	var req AttachTransportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	assignedDate, appErr := parseAssignedDate(req.AssignedDate)
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	link, err := h.itineraryService.AttachTransport(r.Context(), &service.AttachRequest{
		SaleID:       saleID,
		ItemID:       req.TransportID,
		OrderInTrip:  req.OrderInTrip,
		AssignedDate: assignedDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, saleTransportResponse(link))
}

func (h *ItineraryHandler) ListTransport(w http.ResponseWriter, r *http.Request) {
	saleID, appErr := pathID(r, "sale_id")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	links, err := h.itineraryService.ListTransport(r.Context(), saleID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]SaleTransportResponse, 0, len(links))
	for i := range links {
		response = append(response, saleTransportResponse(&links[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

type SaleHotelResponse struct {
	SaleHotelID  int64  `json:"sale_hotel_id"`
	SaleID       int64  `json:"sale_id"`
	HotelID      int64  `json:"hotel_id"`
	OrderInTrip  int    `json:"order_in_trip"`
	AssignedDate string `json:"assigned_date"`
}

func (h *ItineraryHandler) AttachHotel(w http.ResponseWriter, r *http.Request) {
	saleID, appErr := pathID(r, "sale_id")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	var req AttachHotelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	assignedDate, appErr := parseAssignedDate(req.AssignedDate)
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	link, err := h.itineraryService.AttachHotel(r.Context(), &service.AttachRequest{
		SaleID:       saleID,
		ItemID:       req.HotelID,
		OrderInTrip:  req.OrderInTrip,
		AssignedDate: assignedDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SaleHotelResponse{
		SaleHotelID:  link.ID,
		SaleID:       link.SaleID,
		HotelID:      link.HotelID,
		OrderInTrip:  link.OrderInTrip,
		AssignedDate: link.AssignedDate.Format(dateLayout),
	})
}

type SaleFlightResponse struct {
	SaleFlightID int64  `json:"sale_flight_id"`
	SaleID       int64  `json:"sale_id"`
	FlightID     int64  `json:"flight_id"`
	OrderInTrip  int    `json:"order_in_trip"`
	AssignedDate string `json:"assigned_date"`
}

func (h *ItineraryHandler) AttachFlight(w http.ResponseWriter, r *http.Request) {
	saleID, appErr := pathID(r, "sale_id")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	var req AttachFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	assignedDate, appErr := parseAssignedDate(req.AssignedDate)
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	link, err := h.itineraryService.AttachFlight(r.Context(), &service.AttachRequest{
		SaleID:       saleID,
		ItemID:       req.FlightID,
		OrderInTrip:  req.OrderInTrip,
		AssignedDate: assignedDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SaleFlightResponse{
		SaleFlightID: link.ID,
		SaleID:       link.SaleID,
		FlightID:     link.FlightID,
		OrderInTrip:  link.OrderInTrip,
		AssignedDate: link.AssignedDate.Format(dateLayout),
	})
}
