package service

import (
	"go-stockdocs/internal/model"
	"go-stockdocs/internal/ws"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory test database
func setupTestDB() *gorm.DB {
	db, _ := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	db.AutoMigrate(&model.User{}, &model.Supplier{}, &model.Product{}, &model.ProductEntry{}, &model.Document{})
	return db
}

// setupTestHub returns a running hub so broadcasts from services drain
func setupTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}
