package initializers

import (
	"context"

	"hr-office-backend/config"
	"hr-office-backend/fiberlog"
	masterdictprovider "hr-office-backend/lib/dicts/master"
	employeehandler "hr-office-backend/lib/employee"
	xlsexport "hr-office-backend/lib/export/xls"
	uploadhandler "hr-office-backend/lib/upload"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	masterdictprovider.NewHandler()
	xlsexport.NewHandler()
	employeehandler.NewHandler()
	uploadhandler.NewHandler()
}
