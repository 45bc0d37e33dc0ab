package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Vini9-9/api-quanto-foi/internal/models"
	"github.com/Vini9-9/api-quanto-foi/internal/query"
	"github.com/Vini9-9/api-quanto-foi/internal/store"
	"github.com/Vini9-9/api-quanto-foi/internal/util"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the purchased-product endpoints.
type ProductHandler struct {
	Store  *store.Adapter
	Engine *query.Engine
}

func NewProductHandler(st *store.Adapter, engine *query.Engine) *ProductHandler {
	return &ProductHandler{
		Store:  st,
		Engine: engine,
	}
}

// ---------- request/response structs ----------

type createProductReq struct {
	Location     string  `json:"location" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	PurchaseDate string  `json:"purchaseDate"`
}

type batchProductItem struct {
	Description string  `json:"description" binding:"required"`
	SKU         string  `json:"sku" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
}

type batchCreateReq struct {
	Location     string             `json:"location" binding:"required"`
	PurchaseDate string             `json:"purchaseDate"`
	Products     []batchProductItem `json:"products" binding:"required,min=1,dive"`
}

type updateDescriptionReq struct {
	Description string `json:"description" binding:"required"`
}

// ---------- helpers ----------

// resolvePurchaseDate defaults to today when the caller sent no date.
func resolvePurchaseDate(dateStr string) (string, error) {
	if dateStr == "" {
		return time.Now().Format("2006-01-02"), nil
	}
	if err := util.ValidateDate(dateStr); err != nil {
		return "", err
	}
	return dateStr, nil
}

func validateFields(f models.ProductFields) error {
	if err := util.ValidatePrice(f.Price); err != nil {
		return err
	}
	if err := util.ValidateSKU(f.SKU); err != nil {
		return err
	}
	return nil
}

// storeError maps store failures onto HTTP responses.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "product not found")
	case errors.Is(err, store.ErrStoreUnavailable):
		util.Error(c, http.StatusInternalServerError, util.CodeUnavailable, "database unavailable")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}

// ---------- create ----------

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	date, err := resolvePurchaseDate(req.PurchaseDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "purchaseDate must be YYYY-MM-DD")
		return
	}

	fields := models.ProductFields{
		Description:  strings.TrimSpace(req.Description),
		SKU:          strings.TrimSpace(req.SKU),
		Location:     strings.TrimSpace(req.Location),
		Price:        req.Price,
		PurchaseDate: date,
	}
	if err := validateFields(fields); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	product, err := h.Store.Create(c.Request.Context(), fields)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateBatch creates several products sharing one location and date.
func (h *ProductHandler) CreateBatch(c *gin.Context) {
	var req batchCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	date, err := resolvePurchaseDate(req.PurchaseDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "purchaseDate must be YYYY-MM-DD")
		return
	}

	location := strings.TrimSpace(req.Location)

	// Validate every item before the first write, so a bad item cannot
	// leave a half-created batch behind.
	fields := make([]models.ProductFields, 0, len(req.Products))
	for _, item := range req.Products {
		f := models.ProductFields{
			Description:  strings.TrimSpace(item.Description),
			SKU:          strings.TrimSpace(item.SKU),
			Location:     location,
			Price:        item.Price,
			PurchaseDate: date,
		}
		if err := validateFields(f); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		fields = append(fields, f)
	}

	created := make([]models.Product, 0, len(fields))
	for _, f := range fields {
		product, err := h.Store.Create(c.Request.Context(), f)
		if err != nil {
			storeError(c, err)
			return
		}
		created = append(created, product)
	}

	c.JSON(http.StatusOK, created)
}

// ---------- list ----------

func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := query.Filter{
		Location:    c.Query("location"),
		Description: c.Query("description"),
		SKU:         c.Query("sku"),
		DateFrom:    c.Query("dateFrom"),
		DateTo:      c.Query("dateTo"),
	}

	for name, value := range map[string]string{"dateFrom": filter.DateFrom, "dateTo": filter.DateTo} {
		if value == "" {
			continue
		}
		if err := util.ValidateDate(value); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, name+" must be YYYY-MM-DD")
			return
		}
	}

	if s := c.Query("priceMin"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "priceMin must be a number")
			return
		}
		filter.PriceMin = &v
	}
	if s := c.Query("priceMax"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "priceMax must be a number")
			return
		}
		filter.PriceMax = &v
	}

	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 || v > query.MaxLimit {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "limit must be between 1 and 1000")
			return
		}
		filter.Limit = v
	}

	products, err := h.Engine.Run(c.Request.Context(), filter)
	if err != nil {
		storeError(c, err)
		return
	}

	filtersApplied := gin.H{}
	for name, value := range map[string]string{
		"location":    filter.Location,
		"description": filter.Description,
		"sku":         filter.SKU,
		"dateFrom":    filter.DateFrom,
		"dateTo":      filter.DateTo,
	} {
		if value != "" {
			filtersApplied[name] = value
		}
	}
	if filter.PriceMin != nil {
		filtersApplied["priceMin"] = *filter.PriceMin
	}
	if filter.PriceMax != nil {
		filtersApplied["priceMax"] = *filter.PriceMax
	}
	if filter.Limit > 0 {
		filtersApplied["limit"] = filter.Limit
	}

	c.JSON(http.StatusOK, gin.H{
		"products":       products,
		"total":          len(products),
		"filtersApplied": filtersApplied,
	})
}

// ---------- single record ----------

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.Store.FetchByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateDescription patches the description of the first record matching the
// sku. With duplicate skus "first" means index order.
func (h *ProductHandler) UpdateDescription(c *gin.Context) {
	var req updateDescriptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	sku := c.Param("sku")
	matches, err := h.Store.FetchByIndex(c.Request.Context(), store.IndexSKU, sku)
	if err != nil {
		storeError(c, err)
		return
	}
	if len(matches) == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "product not found")
		return
	}

	product, err := h.Store.UpdateDescription(c.Request.Context(), matches[0].ID, req.Description)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ---------- health ----------

func (h *ProductHandler) Health(c *gin.Context) {
	if err := h.Store.Info(c.Request.Context()); err != nil {
		util.Error(c, http.StatusServiceUnavailable, util.CodeUnavailable, "service unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  "connected",
	})
}
