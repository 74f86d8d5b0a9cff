package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	s3client "hr-office-backend/s3"
)

func InitS3() {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения и бакета
	if err = client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("Ошибка проверки бакета S3")
	}

	s3client.Client = client
	log.Info("S3 клиент успешно инициализирован")
}
