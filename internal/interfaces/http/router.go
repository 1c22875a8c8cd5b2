package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/analytics"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProfileUC    *usecase.ProfileUseCase
	CategoryUC   *usecase.CategoryUseCase
	SupplierUC   *usecase.SupplierUseCase
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	RegisterSale *sales.RegisterSaleUseCase
	SaleQuery    *sales.SaleQueryUseCase
	DashboardUC  *analytics.DashboardUseCase
	Gate         *Gate
	Notifier     *Notifier
	Cookie       CookieConfig
}

// Router registra las rutas. Todas pasan por AuthMiddleware (opcional);
// el acceso de cada ruta lo decide el Gate según la política.
func Router(app *fiber.App, deps RouterDeps) {
	gate := deps.Gate
	login := gate.RequireLogin()

	app.Use(AuthMiddleware(deps.AuthUC, deps.Cookie.Name))

	authHandler := NewAuthHandler(deps.AuthUC, deps.Notifier, deps.Cookie)
	app.Get(access.LoginPath, authHandler.LoginPage)
	app.Get(access.HomePath, login, NewDashboardHandler(deps.DashboardUC, deps.Notifier).Home)

	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", login, authHandler.Me)
	api.Get("/notifications", authHandler.Notifications)

	// Products: lectura con sesión, escritura gerente+, eliminación administrador
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", login, productHandler.List)
	products.Get("/:id", login, productHandler.GetByID)
	products.Post("/", gate.Require(access.OpProductCreate), productHandler.Create)
	products.Put("/:id", gate.Require(access.OpProductUpdate), productHandler.Update)
	products.Delete("/:id", gate.Require(access.OpProductDelete), productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", gate.Require(access.OpCategoryList), categoryHandler.List)
	categories.Get("/:id", gate.Require(access.OpCategoryList), categoryHandler.GetByID)
	categories.Post("/", gate.Require(access.OpCategoryCreate), categoryHandler.Create)
	categories.Put("/:id", gate.Require(access.OpCategoryUpdate), categoryHandler.Update)
	categories.Delete("/:id", gate.Require(access.OpCategoryDelete), categoryHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", gate.Require(access.OpSupplierList), supplierHandler.List)
	suppliers.Get("/:id", gate.Require(access.OpSupplierList), supplierHandler.GetByID)
	suppliers.Post("/", gate.Require(access.OpSupplierCreate), supplierHandler.Create)
	suppliers.Put("/:id", gate.Require(access.OpSupplierUpdate), supplierHandler.Update)
	suppliers.Delete("/:id", gate.Require(access.OpSupplierDelete), supplierHandler.Delete)

	// Customers: todos los roles registran clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", login, customerHandler.List)
	customers.Get("/:id", login, customerHandler.GetByID)
	customers.Post("/", login, customerHandler.Create)
	customers.Put("/:id", gate.Require(access.OpCustomerUpdate), customerHandler.Update)
	customers.Delete("/:id", gate.Require(access.OpCustomerDelete), customerHandler.Delete)

	// Sales: todos los roles venden
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.RegisterSale, deps.SaleQuery)
	salesGroup.Get("/", login, saleHandler.List)
	salesGroup.Post("/", login, saleHandler.Create)
	salesGroup.Get("/:id", login, saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", login, saleHandler.Receipt)
	salesGroup.Delete("/:id", gate.Require(access.OpSaleDelete), saleHandler.Delete)

	// Profiles / users (administrador)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profiles := api.Group("/profiles")
	profiles.Get("/", gate.Require(access.OpProfileList), profileHandler.List)
	profiles.Post("/", gate.Require(access.OpProfileCreate), profileHandler.Create)
	profiles.Patch("/:user_id", gate.Require(access.OpProfileUpdate), profileHandler.Update)
	api.Delete("/users/:user_id", gate.Require(access.OpUserDelete), profileHandler.DeleteUser)
}
