package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"warlon-catering-service/internal/api/dto"
	"warlon-catering-service/internal/services"
)

// OrderHandler exposes the read-only order and schedule accessors.
type OrderHandler struct {
	Svc *services.Service
	Log *zap.Logger
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Svc.ListOrders(r.Context(), sessionKey(r))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderSummaryResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderSummaryResponse{
			OrderID:     o.ID,
			PackageName: o.PackageName,
		})
	}
	writeJSON(w, r, h.Log, http.StatusOK, res)
}

func (h *OrderHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.Svc.OrderDetail(r.Context(), sessionKey(r), id)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.OrderDetailResponse{
		OrderID:            order.ID,
		PackageName:        order.PackageName,
		Description:        order.PackageDescription,
		TotalDays:          order.TotalDays,
		LunchDeliveries:    order.LunchAmount,
		DinnerDeliveries:   order.DinnerAmount,
		AvailableAddresses: len(order.Addresses),
	})
}

func (h *OrderHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}

	view, err := h.Svc.Schedule(r.Context(), sessionKey(r), id)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.ScheduleResponse{
		PackageName: view.PackageName,
		Description: view.Description,
		TotalDays:   view.TotalDays,
		LunchCount:  view.LunchCount,
		DinnerCount: view.DinnerCount,
		Schedule:    toEntryResponses(view.Entries),
	})
}

func (h *OrderHandler) Deliveries(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}

	q := r.URL.Query()
	view, err := h.Svc.DeliveriesInRange(r.Context(), sessionKey(r), id, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.DeliveriesResponse{
		StartDate:  fmtDate(view.Start),
		EndDate:    fmtDate(view.End),
		Count:      len(view.Entries),
		Deliveries: toEntryResponses(view.Entries),
	})
}

func (h *OrderHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}

	sum, err := h.Svc.DeliverySummary(r.Context(), sessionKey(r), id)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, dto.SummaryResponse{
		PackageName:     sum.PackageName,
		TotalDeliveries: sum.TotalDeliveries,
		Lunch: dto.MealTypeStatsResponse{
			Total:     sum.Lunch.Total,
			Remaining: sum.Lunch.Remaining,
			Completed: sum.Lunch.Completed,
		},
		Dinner: dto.MealTypeStatsResponse{
			Total:     sum.Dinner.Total,
			Remaining: sum.Dinner.Remaining,
			Completed: sum.Dinner.Completed,
		},
		EditableCount: sum.EditableCount,
		FirstDelivery: fmtDate(sum.FirstDelivery),
		LastDelivery:  fmtDate(sum.LastDelivery),
	})
}

func (h *OrderHandler) Addresses(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		writeError(w, r, h.Log, http.StatusBadRequest, "invalid order id")
		return
	}

	addrs, err := h.Svc.ListAddresses(r.Context(), sessionKey(r), id)
	if err != nil {
		writeServiceError(w, r, h.Log, err)
		return
	}

	res := dto.ListAddressesResponse{Addresses: make([]dto.AddressResponse, 0, len(addrs))}
	for _, a := range addrs {
		res.Addresses = append(res.Addresses, dto.AddressResponse{
			AddressID: a.ID,
			Label:     a.Label,
			Address:   a.Address,
		})
	}
	writeJSON(w, r, h.Log, http.StatusOK, res)
}
