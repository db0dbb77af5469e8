package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sangeeth-21/velkani-admin/internal/auth"
	"github.com/sangeeth-21/velkani-admin/internal/cart"
	"github.com/sangeeth-21/velkani-admin/internal/catalog"
	"github.com/sangeeth-21/velkani-admin/internal/config"
	"github.com/sangeeth-21/velkani-admin/internal/csvimport"
	"github.com/sangeeth-21/velkani-admin/internal/db"
	"github.com/sangeeth-21/velkani-admin/internal/orders"
	"github.com/sangeeth-21/velkani-admin/internal/receipt"
	"github.com/sangeeth-21/velkani-admin/internal/upstream"
	"github.com/sangeeth-21/velkani-admin/internal/users"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	rdb, err := db.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal(err)
	}
	defer rdb.Close()

	api := upstream.New(cfg.UpstreamBaseURL, time.Duration(cfg.UpstreamTimeoutSec)*time.Second)

	jwtMgr := auth.NewJWTManager(auth.JWTConfig{
		Issuer:       cfg.JWTIssuer,
		AccessSecret: cfg.JWTAccessSecret,
		AccessTTLMin: cfg.AccessTokenTTLMin,
	})
	authHandler := auth.NewHandler(cfg, jwtMgr)

	cartStore := cart.NewStore(cart.NewRedisStorage(rdb, cfg.CartKey))
	if err := cartStore.Load(context.Background()); err != nil {
		// the admin can keep working with an empty cart
		log.Printf("cart: starting empty: %v", err)
	}
	cartHandler := cart.NewHandler(cartStore, api)

	catalogHandler := catalog.NewHandler(api, cartStore)
	usersHandler := users.NewHandler(api)

	formatter := receipt.NewFormatter(receipt.StoreInfo{
		Name:    cfg.StoreName,
		Address: cfg.StoreAddress,
		Phone:   cfg.StorePhone,
	})
	ordersHandler := orders.NewHandler(api, formatter)

	importHandler := csvimport.NewHandler(csvimport.NewImporter(api))

	r := gin.Default()

	apiGroup := r.Group("/api")
	apiGroup.POST("/auth/login", authHandler.Login)

	protected := apiGroup.Group("/")
	protected.Use(auth.AuthMiddleware(jwtMgr))
	protected.Use(auth.RequireRole("admin"))
	{
		protected.GET("/me", authHandler.Me)

		// catalog
		protected.GET("/categories", catalogHandler.ListCategories)
		protected.POST("/categories", catalogHandler.CreateCategory)
		protected.DELETE("/categories/:id", catalogHandler.DeleteCategory)

		protected.GET("/subcategories", catalogHandler.ListSubcategories)
		protected.POST("/subcategories", catalogHandler.CreateSubcategory)
		protected.DELETE("/subcategories/:id", catalogHandler.DeleteSubcategory)

		protected.GET("/products", catalogHandler.ListProducts)
		protected.POST("/products", catalogHandler.CreateProduct)
		protected.PUT("/products/:id", catalogHandler.UpdateProduct)
		protected.DELETE("/products/:id", catalogHandler.DeleteProduct)
		protected.PATCH("/products/:id/offer", catalogHandler.SetOffer)
		protected.GET("/price-point-types", catalogHandler.PricePointTypes)

		protected.POST("/uploads/image", catalogHandler.UploadImage)
		protected.POST("/uploads/images", catalogHandler.UploadImages)

		// cart
		protected.GET("/cart", cartHandler.GetCart)
		protected.POST("/cart/items", cartHandler.AddItem)
		protected.DELETE("/cart/items", cartHandler.RemoveItem)
		protected.DELETE("/cart/products/:id", cartHandler.RemoveProduct)
		protected.DELETE("/cart", cartHandler.Clear)

		// orders + receipts
		protected.GET("/orders", ordersHandler.List)
		protected.DELETE("/orders/:id", ordersHandler.Delete)
		protected.GET("/orders/:id/receipt", ordersHandler.Receipt)
		protected.GET("/orders/:id/receipt/download", ordersHandler.ReceiptDownload)

		// users
		protected.GET("/users", usersHandler.List)
		protected.POST("/users", usersHandler.Create)
		protected.PUT("/users/:uid", usersHandler.Update)
		protected.DELETE("/users/:uid", usersHandler.Delete)

		// bulk import
		protected.POST("/import/products", importHandler.ImportProducts)
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
