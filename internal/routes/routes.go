package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sergiodev3/taller-autos-app/internal/audit"
	"github.com/sergiodev3/taller-autos-app/internal/config"
	"github.com/sergiodev3/taller-autos-app/internal/handlers"
	infraRepo "github.com/sergiodev3/taller-autos-app/internal/infra/repository"
	"github.com/sergiodev3/taller-autos-app/internal/storage"
	ucVehicle "github.com/sergiodev3/taller-autos-app/internal/usecase/vehicle"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, store storage.FileStore) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	tallerRepo := infraRepo.NewTallerGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — VEHICLES
	// ======================================================
	createVehicleUC := ucVehicle.NewCreateVehicle(
		tallerRepo,
		auditDispatcher,
	)

	listVehiclesUC := ucVehicle.NewListVehicles(
		tallerRepo,
	)

	vehicleDetailUC := ucVehicle.NewGetVehicleDetail(
		tallerRepo,
	)

	updateVehicleUC := ucVehicle.NewUpdateVehicle(
		tallerRepo,
		auditDispatcher,
	)

	deleteVehicleUC := ucVehicle.NewDeleteVehicle(
		tallerRepo,
		auditDispatcher,
	)

	generateReceiptUC := ucVehicle.NewGenerateReceipt(
		vehicleDetailUC,
		store,
		cfg.LogoPath,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	ownerHandler := handlers.NewOwnerHandler(db)
	defectHandler := handlers.NewDefectHandler(db, auditDispatcher)
	serviceHistoryHandler := handlers.NewServiceHistoryHandler(db, auditDispatcher)

	vehicleHandler := handlers.NewVehicleHandler(
		createVehicleUC,
		listVehiclesUC,
		vehicleDetailUC,
		updateVehicleUC,
		deleteVehicleUC,
	)

	uploadHandler := handlers.NewUploadHandler(store, auditDispatcher, cfg.ImageWebP)
	receiptHandler := handlers.NewReceiptHandler(generateReceiptUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌍 ARCHIVOS (imágenes y comprobantes)
	// ======================================================
	r.GET("/uploads/*filepath", uploadHandler.Serve)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// OWNERS
		// ------------------------------
		api.POST("/owners", ownerHandler.Create)
		api.GET("/owners", ownerHandler.List)
		api.GET("/owners/:id", ownerHandler.Get)

		// ------------------------------
		// VEHICLES
		// ------------------------------
		api.POST("/vehicles", vehicleHandler.Create)
		api.GET("/vehicles", vehicleHandler.List)
		api.GET("/vehicles/:id", vehicleHandler.Get)
		api.PUT("/vehicles/:id", vehicleHandler.Update)
		api.DELETE("/vehicles/:id", vehicleHandler.Delete)

		// ------------------------------
		// DEFECTS
		// ------------------------------
		api.POST("/defects", defectHandler.Create)
		api.GET("/defects/vehicle/:vehicle_id", defectHandler.ListByVehicle)

		// ------------------------------
		// SERVICE HISTORY
		// ------------------------------
		api.POST("/service-history", serviceHistoryHandler.Create)
		api.GET("/service-history/vehicle/:vehicle_id", serviceHistoryHandler.ListByVehicle)

		// ------------------------------
		// ARCHIVOS Y COMPROBANTES
		// ------------------------------
		api.POST("/upload-image", uploadHandler.UploadImage)
		api.POST("/generate-receipt/:vehicle_id", receiptHandler.Generate)

		// ------------------------------
		// AUDITORÍA
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
