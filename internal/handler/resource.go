package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/repository"
	"bookshelf/internal/resource"
	"bookshelf/internal/service"
)

const requestTimeout = 5 * time.Second

// Resource serves the five CRUD endpoints of one entity type. It is
// parameterized by the entity's display name, its field spec and a
// serializer, so every catalog resource shares one implementation.
type Resource[T any] struct {
	name      string
	svc       service.Resource[T]
	fields    resource.Spec[T]
	serialize func(T) any
}

func NewResource[T any](name string, svc service.Resource[T], fields resource.Spec[T], serialize func(T) any) *Resource[T] {
	return &Resource[T]{name: name, svc: svc, fields: fields, serialize: serialize}
}

func (h *Resource[T]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *Resource[T]) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, err := h.svc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]any, 0, len(list))
	for _, item := range list {
		resp = append(resp, h.serialize(item))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Resource[T]) Create(c *gin.Context) {
	data := map[string]any{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item T
	if err := h.fields.Apply(&item, data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Create(ctx, &item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.serialize(item))
}

func (h *Resource[T]) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	item, err := h.svc.Get(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			h.notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.serialize(*item))
}

func (h *Resource[T]) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	item, err := h.svc.Get(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			h.notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data := map[string]any{}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.fields.Patch(item, data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Update(ctx, item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.serialize(*item))
}

func (h *Resource[T]) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		switch {
		case repository.IsNotFound(err):
			h.notFound(c)
		case repository.IsConstraintViolation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Resource[T]) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": h.name + " not found"})
}

func (h *Resource[T]) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
