package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"plantbuddy/config"
	"plantbuddy/database"
	"plantbuddy/router"

	// Auth + Health
	authCtrlImp "plantbuddy/pkg/auth/controllerImp"
	healthCtrlImp "plantbuddy/pkg/health/controllerImp"

	// Plant
	plantCtrlImp "plantbuddy/pkg/plant/controllerImp"
	plantRepoImp "plantbuddy/pkg/plant/repositoryImp"

	// Schedule
	schedCtrlImp "plantbuddy/pkg/schedule/controllerImp"
	schedRepoImp "plantbuddy/pkg/schedule/repositoryImp"

	// Care engine
	careCtrlImp "plantbuddy/pkg/care/controllerImp"
	careSvcImp "plantbuddy/pkg/care/serviceImp"

	// Care profile defaults
	"plantbuddy/pkg/careprofile"

	// Tips
	tipCtrlImp "plantbuddy/pkg/tips/controllerImp"
	tipRepoImp "plantbuddy/pkg/tips/repositoryImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("[tz] bad timezone %q, using local: %v", cfg.Timezone, err)
		loc = time.Local
	}

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Care profile book (CSV defaults + XLSX species overrides)
	book, err := careprofile.LoadFromFiles(cfg.CareProfileCSV, cfg.CareProfileXLSX)
	if err != nil {
		log.Fatalf("care profiles: %v", err)
	}

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) Repos/Services/Controllers
	pRepo := plantRepoImp.New(db)
	sRepo := schedRepoImp.New(db)
	tRepo := tipRepoImp.New(db)

	careSvc := careSvcImp.NewCareService(db, loc,
		time.Duration(cfg.UndoWindowSeconds)*time.Second, cfg.UpcomingLimit)

	pCtrl := plantCtrlImp.New(pRepo, sRepo, book, loc)
	scCtrl := schedCtrlImp.New(sRepo, pRepo)
	cCtrl := careCtrlImp.New(careSvc)
	tCtrl := tipCtrlImp.New(tRepo, cfg.TipsAllowedHosts, cfg.TipsMaxPageBytes)

	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(e, pCtrl, cCtrl, scCtrl, tCtrl, authCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
