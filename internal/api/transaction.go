package api

import (
	"net/http"                            // HTTP status codes
	"strconv"                             // Path parameter parsing
	"transaction_system/internal/domain"  // Model, filter, execution codes
	"transaction_system/internal/service" // Lifecycle service

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateTransactionHandler creates a new transaction in SUBMITTED status
func CreateTransactionHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input domain.TransactionInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, domain.NewBusinessError(domain.CodeInvalidParameter))
			return
		}
		created, err := svc.Create(c.Request.Context(), input, c.Query("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, created)
	}
}

// UpdateTransactionHandler rewrites the basic-info fields of a transaction
// and returns rows affected
func UpdateTransactionHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input domain.TransactionInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, domain.NewBusinessError(domain.CodeInvalidParameter))
			return
		}
		rows, err := svc.UpdateBasicInfo(c.Request.Context(), input, c.Query("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, rows)
	}
}

// HandleTransactionHandler applies a status-only transition: approve, reject
// or cancel, selected by the operation context
func HandleTransactionHandler(svc *service.TransactionService, opContext string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input domain.TransactionInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, domain.NewBusinessError(domain.CodeInvalidParameter))
			return
		}
		rows, err := svc.Handle(c.Request.Context(), input, opContext, c.Query("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, rows)
	}
}

// GetTransactionHandler returns a transaction by id
func GetTransactionHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse id from path
		if err != nil {
			respondError(c, domain.NewBusinessError(domain.CodeInvalidParameter))
			return
		}
		tx, err := svc.GetByID(c.Request.Context(), uint(id), c.Query("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, tx)
	}
}

// DeleteTransactionHandler deletes a transaction by id
func DeleteTransactionHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse id from path
		if err != nil {
			respondError(c, domain.NewBusinessError(domain.CodeInvalidParameter))
			return
		}
		deleted, err := svc.Delete(c.Request.Context(), uint(id), c.Query("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, deleted)
	}
}

// SearchTransactionHandler runs a filtered, paginated, sorted search and
// returns the page payload directly
func SearchTransactionHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := domain.DefaultSearchFilter() // Absent fields keep their defaults
		if err := c.ShouldBindJSON(&filter); err != nil {
			respondError(c, domain.NewBusinessError(domain.CodeInvalidParameter))
			return
		}
		// Clamp oversized page requests at the boundary; the core takes the
		// filter verbatim
		if filter.PageSize > domain.MaxPageSize {
			logrus.WithField("pageSize", filter.PageSize).Warn("Page size clamped to maximum")
			filter.PageSize = domain.MaxPageSize
		}
		result, err := svc.Search(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
