package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/dto"
	"bookshelf/internal/models"
	"bookshelf/internal/resource"
	"bookshelf/internal/service"
)

// BookHandler reuses the generic item endpoints and replaces the
// collection ones: listing supports the admin_id filter and creation
// binds a dedicated request shape.
type BookHandler struct {
	*Resource[models.Book]
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{
		Resource: NewResource[models.Book]("Book", svc, resource.BookFields(),
			func(b models.Book) any { return dto.FromBook(b) }),
		svc: svc,
	}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns all books, or only those submitted by the user named in
// the admin_id query parameter.
func (h *BookHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var (
		books []models.Book
		err   error
	)
	if adminParam := c.Query("admin_id"); adminParam != "" {
		adminID, perr := strconv.ParseInt(adminParam, 10, 64)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin_id"})
			return
		}
		books, err = h.svc.ListByCreator(ctx, adminID)
	} else {
		books, err = h.svc.List(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, dto.FromBook(b))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	book := req.ToModel()
	if err := h.svc.Create(ctx, &book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.FromBook(book))
}
