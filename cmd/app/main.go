package main

import (
	"fmt"
	"log/slog"
	"os"

	"tacoshare/cmd"
	adapterhttp "tacoshare/internal/adapters/in/http"
	"tacoshare/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateDeliverPendingGroupOrdersCommandHandler(), configs.DeliveryRetrySchedule, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		CatalogBaseURL:        goDotEnvVariable("CATALOG_BASE_URL"),
		FulfillmentBaseURL:    goDotEnvVariable("FULFILLMENT_BASE_URL"),
		DeliveryRetrySchedule: goDotEnvVariable("DELIVERY_RETRY_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := adapterhttp.NewServer(adapterhttp.Handlers{
		CreateGroupOrder:       app.CreateCreateGroupOrderCommandHandler(),
		SubmitParticipantOrder: app.CreateSubmitParticipantOrderCommandHandler(),
		DeleteParticipantOrder: app.CreateDeleteParticipantOrderCommandHandler(),
		LockGroupOrder:         app.CreateLockGroupOrderCommandHandler(),

		RequestToJoin:     app.CreateRequestToJoinCommandHandler(),
		AcceptJoinRequest: app.CreateAcceptJoinRequestCommandHandler(),
		RejectJoinRequest: app.CreateRejectJoinRequestCommandHandler(),
		UpdateMemberRole:  app.CreateUpdateMemberRoleCommandHandler(),
		RemoveMember:      app.CreateRemoveMemberCommandHandler(),
		DirectAddMember:   app.CreateDirectAddMemberCommandHandler(),
		RepairAdmin:       app.CreateRepairAdminCommandHandler(),

		GetGroupOrder:          app.CreateGetGroupOrderQueryHandler(),
		GetOrganizationMembers: app.CreateGetOrganizationMembersQueryHandler(),
		GetPendingJoinRequests: app.CreateGetPendingJoinRequestsQueryHandler(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
