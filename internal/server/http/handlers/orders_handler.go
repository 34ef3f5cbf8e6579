package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fourline/orderfront/internal/domain/model"
	"github.com/fourline/orderfront/internal/server/http/dto"
	"github.com/fourline/orderfront/internal/view"
)

// OrdersHandler serves the order listing and its accordion sections.
type OrdersHandler struct {
	facade OrderFacade
}

// NewOrdersHandler creates OrdersHandler instance.
func NewOrdersHandler(facade OrderFacade) *OrdersHandler {
	return &OrdersHandler{facade: facade}
}

// Listing handles GET /view/orders.
func (h *OrdersHandler) Listing(c *gin.Context) {
	snapshot, err := h.facade.Listing(c.Request.Context(), CurrentViewID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListingResponse(snapshot))
}

// Toggle handles POST /view/summaries/:productId/toggle.
func (h *OrdersHandler) Toggle(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}

	section, err := h.facade.ToggleDetail(c.Request.Context(), CurrentViewID(c), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSectionResponse(*section))
}

// Delete handles DELETE /view/summaries/:productId/orders/:orderId.
func (h *OrdersHandler) Delete(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}
	orderID, ok := paramID(c, "orderId")
	if !ok {
		return
	}

	snapshot, err := h.facade.DeleteOrder(c.Request.Context(), CurrentViewID(c), productID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListingResponse(snapshot))
}

func toListingResponse(snapshot *view.ListingSnapshot) dto.ListingResponse {
	summaries := make([]dto.SummaryResponse, 0, len(snapshot.Summaries))
	for _, s := range snapshot.Summaries {
		summaries = append(summaries, dto.SummaryResponse{
			ProductID:     int64(s.ProductID),
			ProductName:   s.ProductName,
			TotalQuantity: int64(s.TotalQuantity),
			TotalAmount:   s.TotalAmount,
		})
	}

	sections := make([]dto.DetailSectionResponse, 0, len(snapshot.Sections))
	for _, section := range snapshot.Sections {
		sections = append(sections, toSectionResponse(section))
	}

	return dto.ListingResponse{
		Email:     snapshot.Email,
		Summaries: summaries,
		Sections:  sections,
		Totals: dto.ListingTotalsResponse{
			ProductKinds:  snapshot.Totals.ProductKinds,
			TotalQuantity: snapshot.Totals.TotalQuantity,
			TotalAmount:   snapshot.Totals.TotalAmount,
		},
		Refreshed: snapshot.Refreshed,
	}
}

func toSectionResponse(section view.DetailSection) dto.DetailSectionResponse {
	rows := make([]dto.DetailRowResponse, 0, len(section.Rows))
	for _, row := range section.Rows {
		rows = append(rows, toDetailRowResponse(row))
	}
	return dto.DetailSectionResponse{
		ProductID: section.ProductID,
		Open:      section.Open,
		State:     string(section.State),
		Rows:      rows,
		Error:     section.Error,
	}
}

func toDetailRowResponse(row model.Detail) dto.DetailRowResponse {
	return dto.DetailRowResponse{
		OrderID:         int64(row.OrderID),
		OrderTime:       model.FormatOrderTime(row.OrderTime),
		OrderStatus:     string(row.OrderStatus),
		StatusLabel:     row.OrderStatus.Label(),
		ShippingAddress: row.ShippingAddress,
		ShippingCode:    row.ShippingCode,
		Quantity:        int64(row.Quantity),
		PricePerItem:    row.PricePerItem,
		SubTotal:        row.SubTotal,
	}
}
