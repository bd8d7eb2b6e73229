package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

type paymentReq struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Method string  `json:"method"`
	Notes  *string `json:"notes"`
}

func (h *Handler) createPayment(c *gin.Context) {
	var req paymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "amount must be positive"})
		return
	}
	if strings.TrimSpace(req.Date) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "date is required"})
		return
	}
	if strings.TrimSpace(req.Method) == "" {
		req.Method = "Bank Transfer"
	}

	id, err := h.payments.Create(c.Request.Context(), c.Param("id"), domain.PaymentRecord{
		Amount: req.Amount,
		Date:   req.Date,
		Method: req.Method,
		Notes:  req.Notes,
	})
	if err != nil {
		respondStoreError(c, err, "failed to create payment")
		return
	}
	// Paid and due figures changed under the cached report.
	h.refreshSiteReport(c, c.Param("id"))
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) deletePayment(c *gin.Context) {
	ok, err := h.payments.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "failed to delete payment")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "payment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
