package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"travel-bookings/internal/domain"
	"travel-bookings/internal/errors"
	"travel-bookings/internal/service"
)

const dateLayout = "2006-01-02"

type SaleHandler struct {
	saleService *service.SaleService
}

func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

type CreateSaleRequest struct {
	CustomerID    int64  `json:"customer_id"`
	SellerID      int64  `json:"seller_id"`
	DestinationID int64  `json:"destination_id"`
	SaleDate      string `json:"sale_date"`
	TotalAmount   string `json:"total_amount"`
}

type SaleResponse struct {
	SaleID        int64  `json:"sale_id"`
	CustomerID    int64  `json:"customer_id"`
	SellerID      int64  `json:"seller_id"`
	DestinationID int64  `json:"destination_id"`
	SaleDate      string `json:"sale_date"`
	TotalAmount   string `json:"total_amount"`
}

func saleResponse(sale *domain.Sale) SaleResponse {
	return SaleResponse{
		SaleID:        sale.ID,
		CustomerID:    sale.CustomerID,
		SellerID:      sale.SellerID,
		DestinationID: sale.DestinationID,
		SaleDate:      sale.SaleDate.Format(dateLayout),
		TotalAmount:   sale.TotalAmount.StringFixed(2),
	}
}

func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	saleDate, err := time.Parse(dateLayout, req.SaleDate)
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid sale_date format, expected YYYY-MM-DD"))
		return
	}

	totalAmount, amountErr := parseAmount(req.TotalAmount, "total_amount")
	if amountErr != nil {
		writeError(w, amountErr)
		return
	}

	sale, err := h.saleService.CreateSale(r.Context(), &service.CreateSaleRequest{
		CustomerID:    req.CustomerID,
		SellerID:      req.SellerID,
		DestinationID: req.DestinationID,
		SaleDate:      saleDate,
		TotalAmount:   totalAmount,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, saleResponse(sale))
}

func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	saleID, appErr := pathID(r, "sale_id")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	sale, err := h.saleService.GetSale(r.Context(), saleID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saleResponse(sale))
}

type ChangePriceRequest struct {
	AmountDelta    string `json:"amount_delta"`
	ActingSellerID int64  `json:"acting_seller_id"`
}

func (h *SaleHandler) ChangePrice(w http.ResponseWriter, r *http.Request) {
	saleID, appErr := pathID(r, "sale_id")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	var req ChangePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	delta, amountErr := parseAmount(req.AmountDelta, "amount_delta")
	if amountErr != nil {
		writeError(w, amountErr)
		return
	}

	sale, err := h.saleService.ChangeSalePrice(r.Context(), saleID, delta, req.ActingSellerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saleResponse(sale))
}

type PriceHistoryResponse struct {
	HistoryID         int64  `json:"history_id"`
	SaleID            int64  `json:"sale_id"`
	OldAmount         string `json:"old_amount"`
	NewAmount         string `json:"new_amount"`
	ChangeDate        string `json:"change_date"`
	ChangedBySellerID int64  `json:"changed_by_seller_id"`
}

func (h *SaleHandler) ListPriceHistory(w http.ResponseWriter, r *http.Request) {
	saleID, appErr := pathID(r, "sale_id")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	records, err := h.saleService.ListPriceHistory(r.Context(), saleID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]PriceHistoryResponse, 0, len(records))
	for _, record := range records {
		response = append(response, PriceHistoryResponse{
			HistoryID:         record.ID,
			SaleID:            record.SaleID,
			OldAmount:         record.OldAmount.StringFixed(2),
			NewAmount:         record.NewAmount.StringFixed(2),
			ChangeDate:        record.ChangeDate.UTC().Format(time.RFC3339),
			ChangedBySellerID: record.ChangedBySellerID,
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *SaleHandler) ListSalesByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, appErr := pathID(r, "customer_id")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	sales, err := h.saleService.ListSalesByCustomer(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		response = append(response, saleResponse(&sales[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

type SellerSummaryResponse struct {
	SellerID     int64  `json:"seller_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	SalesCount   int64  `json:"sales_count"`
	TotalRevenue string `json:"total_revenue"`
}

func (h *SaleHandler) SellerSalesSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.saleService.SellerSalesSummary(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]SellerSummaryResponse, 0, len(summaries))
	for _, row := range summaries {
		response = append(response, SellerSummaryResponse{
			SellerID:     row.SellerID,
			FirstName:    row.FirstName,
			LastName:     row.LastName,
			SalesCount:   row.SalesCount,
			TotalRevenue: row.TotalRevenue.StringFixed(2),
		})
	}

	writeJSON(w, http.StatusOK, response)
}
