package main

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"tripmate/internal/api/handlers/auth"
	"tripmate/internal/api/handlers/trips"
	mw "tripmate/internal/api/middlewares"
	"tripmate/internal/api/routers"
	"tripmate/internal/repositories/mysql"
	"tripmate/internal/repositories/sqlconnect"
	"tripmate/internal/services"
	"tripmate/pkg/cron"
	"tripmate/pkg/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		return
	}

	utils.InitLogger()

	err = sqlconnect.ConnectDb()
	if err != nil {
		utils.Logger.Fatal("DB connection failed: ", err)
	}

	dataStore := mysql.New(sqlconnect.DB)

	// INVITE_TOKEN_EXP_DURATION is a number of days.
	inviteTTL := 7 * 24 * time.Hour
	if days, err := strconv.Atoi(os.Getenv("INVITE_TOKEN_EXP_DURATION")); err == nil && days > 0 {
		inviteTTL = time.Duration(days) * 24 * time.Hour
	}

	inviteSvc := services.NewInviteService(dataStore, services.SMTPMailer{}, os.Getenv("APP_BASE_URL"), inviteTTL)
	membershipSvc := services.NewMembershipService(dataStore)
	statsSvc := services.NewStatsService(dataStore)

	auth.Setup(dataStore)
	trips.Setup(dataStore, inviteSvc, membershipSvc, statsSvc)

	sweeper := cron.StartCronJob(dataStore)
	defer sweeper.Stop()

	port := os.Getenv("SERVER_PORT")

	cert := os.Getenv("CERT_FILE")
	key := os.Getenv("KEY_FILE")

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	router := routers.MainRouter()
	jwtMiddleware := mw.MiddlewaresExcludePaths(mw.JWTMiddleware, "/users/signup", "/users/login")

	secureMux := jwtMiddleware(mw.SecurityHeaders(router))

	server := &http.Server{
		Addr:      port,
		Handler:   secureMux,
		TLSConfig: tlsConfig,
	}

	fmt.Println("Server is running on port", port)
	err = server.ListenAndServeTLS(cert, key)
	if err != nil {
		log.Fatalln("Error starting the server", err)
	}
}
