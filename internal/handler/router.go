package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"bookshelf/internal/dto"
	"bookshelf/internal/middleware"
	"bookshelf/internal/models"
	"bookshelf/internal/resource"
	"bookshelf/internal/service"
)

// Deps bundles everything the router needs.
type Deps struct {
	Users       service.Resource[models.User]
	Authors     service.Resource[models.Author]
	Categories  service.Resource[models.Category]
	Reviews     service.Resource[models.Review]
	Collections service.Resource[models.UserBookCollection]
	Books       service.BookService
	Auth        service.AuthService

	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the gin engine with all middleware and routes bound.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	if deps.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(rate.Limit(deps.RateLimitRPS), deps.RateLimitBurst))
	}

	r.GET("/", home)

	NewResource("User", deps.Users, resource.UserFields(),
		func(u models.User) any { return dto.FromUser(u) }).
		RegisterRoutes(r.Group("/users"))
	NewResource("Author", deps.Authors, resource.AuthorFields(),
		func(a models.Author) any { return dto.FromAuthor(a) }).
		RegisterRoutes(r.Group("/authors"))
	NewResource("Category", deps.Categories, resource.CategoryFields(),
		func(c models.Category) any { return dto.FromCategory(c) }).
		RegisterRoutes(r.Group("/categories"))
	NewResource("Review", deps.Reviews, resource.ReviewFields(),
		func(rv models.Review) any { return dto.FromReview(rv) }).
		RegisterRoutes(r.Group("/reviews"))
	NewResource("Collection", deps.Collections, resource.CollectionFields(),
		func(cl models.UserBookCollection) any { return dto.FromCollection(cl) }).
		RegisterRoutes(r.Group("/collections"))

	NewBookHandler(deps.Books).RegisterRoutes(r.Group("/books"))
	r.POST("/login", NewAuthHandler(deps.Auth).Login)

	return r
}

func home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Bookshelf Backend API",
		"status":  "running",
		"endpoints": gin.H{
			"users":       "/users",
			"authors":     "/authors",
			"books":       "/books",
			"categories":  "/categories",
			"reviews":     "/reviews",
			"collections": "/collections",
			"login":       "/login",
		},
	})
}
